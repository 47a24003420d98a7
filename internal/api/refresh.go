package api

import (
	"errors"
	"net/http"

	"git.sr.ht/~jakintosh/warrant/internal/service"
)

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

func (a *API) Refresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if ok := decodeOptional(&req, w, r, a); !ok {
			return
		}

		token := refreshTokenFromRequest(r, req.RefreshToken)

		accessToken, err := a.service.RotateAccessToken(token)
		if err != nil {
			if errors.Is(err, service.ErrTokenInvalid) {
				a.clearRefreshCookie(w)
			}
			a.writeError(w, r, err)
			return
		}

		a.respond(w, http.StatusOK, "Token refreshed successfully", RefreshResponse{
			AccessToken: accessToken,
		})
	}
}
