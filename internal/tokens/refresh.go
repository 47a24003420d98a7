package tokens

// MintRefreshToken signs a long-lived refresh token for the given user.
// Signature validity alone does not make a refresh token trustworthy; the
// service additionally requires a live store record.
func (c *Codec) MintRefreshToken(userID string) (string, error) {
	return c.mint(userID, c.refreshSecret, c.refreshTTL)
}

// VerifyRefreshToken checks signature and expiry against the refresh secret
// and returns the embedded user id.
func (c *Codec) VerifyRefreshToken(tokenStr string) (string, error) {
	return c.verify(tokenStr, c.refreshSecret)
}
