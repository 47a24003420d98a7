package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"git.sr.ht/~jakintosh/warrant/internal/service"
)

type contextKey int

const userIDKey contextKey = 0

// UserID returns the authenticated user id attached by Authenticate.
func UserID(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(userIDKey).(string)
	return id, ok
}

// Authenticate gates a handler on a valid bearer access token and attaches
// the verified user id to the request context.
func (a *API) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			a.respondError(w, http.StatusBadRequest, "Access token required", nil)
			return
		}

		userID, err := a.service.AuthenticateAccessToken(token)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrUserNotFound):
				a.respondError(w, http.StatusNotFound, "User not found or inactive", nil)
			case errors.Is(err, service.ErrTokenInvalid):
				a.respondError(w, http.StatusUnauthorized, "Invalid or expired access token", nil)
			default:
				// fail closed on anything unexpected
				a.logErr(r, err.Error())
				a.respondError(w, http.StatusUnauthorized, "Invalid or expired access token", nil)
			}
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
