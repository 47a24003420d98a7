// Package api exposes the HTTP surface of the warrant server: registration,
// login, external-identity login, token refresh, logout, and profile.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/oauth"
	"git.sr.ht/~jakintosh/warrant/internal/service"
	"github.com/sirupsen/logrus"
)

// Config carries the transport-level settings the handlers need.
type Config struct {
	FrontendURL   string
	CookieTTL     time.Duration
	SecureCookies bool
	ShowDetail    bool // include diagnostic detail in 500 responses (non-production)
}

type API struct {
	service  *service.Service
	provider oauth.Provider
	cfg      Config
	log      logrus.FieldLogger
}

func New(
	svc *service.Service,
	provider oauth.Provider,
	cfg Config,
	log logrus.FieldLogger,
) *API {
	return &API{
		service:  svc,
		provider: provider,
		cfg:      cfg,
		log:      log,
	}
}

type response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
	Timestamp string `json:"timestamp"`
}

func decodeRequest[T any](req *T, w http.ResponseWriter, r *http.Request, a *API) bool {
	err := json.NewDecoder(r.Body).Decode(req)
	if err != nil {
		a.logErr(r, "bad json request")
		a.respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// decodeOptional tolerates an empty body; handlers with a cookie fallback
// (refresh, logout) accept requests that carry no JSON at all.
func decodeOptional[T any](req *T, w http.ResponseWriter, r *http.Request, a *API) bool {
	err := json.NewDecoder(r.Body).Decode(req)
	if err != nil && !errors.Is(err, io.EOF) {
		a.logErr(r, "bad json request")
		a.respondError(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

func (a *API) respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (a *API) respondError(w http.ResponseWriter, status int, message string, fieldErrors any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{
		Success:   false,
		Message:   message,
		Errors:    fieldErrors,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// writeError maps service sentinels onto HTTP statuses. Anything that is not
// an operational error collapses to a generic 500 so internal detail never
// reaches a production client.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		a.respondError(w, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, service.ErrEmailExists):
		a.respondError(w, http.StatusConflict, "Email already registered", nil)
	case errors.Is(err, service.ErrUserNotFound):
		a.respondError(w, http.StatusNotFound, "User not found", nil)
	case errors.Is(err, service.ErrTokenMissing):
		a.respondError(w, http.StatusUnauthorized, "No refresh token provided", nil)
	case errors.Is(err, service.ErrTokenInvalid):
		a.respondError(w, http.StatusUnauthorized, "Invalid or expired refresh token", nil)
	default:
		a.logErr(r, err.Error())
		var detail any
		if a.cfg.ShowDetail {
			detail = err.Error()
		}
		a.respondError(w, http.StatusInternalServerError, "Internal server error", detail)
	}
}

func (a *API) logErr(r *http.Request, msg string) {
	a.log.WithFields(logrus.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
	}).Error(msg)
}

// Health reports server liveness.
func (a *API) Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a.respond(w, http.StatusOK, "ok", nil)
	}
}
