package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func (a *API) Router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", a.Health()).Methods(http.MethodGet)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", a.Register()).Methods(http.MethodPost)
	auth.HandleFunc("/login", a.Login()).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", a.Refresh()).Methods(http.MethodPost)
	auth.HandleFunc("/logout", a.Logout()).Methods(http.MethodPost)
	auth.HandleFunc("/google", a.GoogleRedirect()).Methods(http.MethodGet)
	auth.HandleFunc("/google/callback", a.GoogleCallback()).Methods(http.MethodGet)
	auth.Handle("/profile", a.Authenticate(a.Profile())).Methods(http.MethodGet)

	return r
}
