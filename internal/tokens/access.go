package tokens

// MintAccessToken signs a short-lived access token for the given user.
func (c *Codec) MintAccessToken(userID string) (string, error) {
	return c.mint(userID, c.accessSecret, c.accessTTL)
}

// VerifyAccessToken checks signature and expiry against the access secret
// and returns the embedded user id.
func (c *Codec) VerifyAccessToken(tokenStr string) (string, error) {
	return c.verify(tokenStr, c.accessSecret)
}
