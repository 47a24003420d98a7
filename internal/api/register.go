package api

import (
	"net/http"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user"`
}

func (a *API) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if ok := decodeRequest(&req, w, r, a); !ok {
			return
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			a.respondError(w, http.StatusBadRequest, "Name, email and password are required", nil)
			return
		}

		user, pair, err := a.service.Register(req.Name, req.Email, req.Password)
		if err != nil {
			a.writeError(w, r, err)
			return
		}

		// cookie only after the refresh token is persisted
		a.setRefreshCookie(w, pair.RefreshToken)

		a.respond(w, http.StatusCreated, "Registration successful", AuthResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			User:         formatUser(user),
		})
	}
}
