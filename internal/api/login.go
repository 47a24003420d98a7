package api

import (
	"net/http"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if ok := decodeRequest(&req, w, r, a); !ok {
			return
		}

		if req.Email == "" || req.Password == "" {
			a.respondError(w, http.StatusBadRequest, "Email and password are required", nil)
			return
		}

		user, pair, err := a.service.Login(req.Email, req.Password)
		if err != nil {
			a.writeError(w, r, err)
			return
		}

		a.setRefreshCookie(w, pair.RefreshToken)

		a.respond(w, http.StatusOK, "Login successful", AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         formatUser(user),
		})
	}
}
