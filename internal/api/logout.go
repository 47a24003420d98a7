package api

import (
	"net/http"
)

type LogoutRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Logout revokes the presented refresh token and clears its cookie.
// It succeeds even when no token was presented at all.
func (a *API) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest
		if ok := decodeOptional(&req, w, r, a); !ok {
			return
		}

		token := refreshTokenFromRequest(r, req.RefreshToken)
		a.service.RevokeRefreshToken(token)

		a.clearRefreshCookie(w)

		a.respond(w, http.StatusOK, "Logged out successfully", nil)
	}
}
