package api

import (
	"net/http"
)

// Profile returns the authenticated user's record, password hash stripped.
func (a *API) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserID(r)
		if !ok {
			a.respondError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}

		user, err := a.service.GetUser(userID)
		if err != nil {
			a.writeError(w, r, err)
			return
		}

		a.respond(w, http.StatusOK, "Profile retrieved successfully", formatUser(user))
	}
}
