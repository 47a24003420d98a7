package api

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/url"

	"git.sr.ht/~jakintosh/warrant/internal/service"
)

const stateCookieName = "oauth_state"

// GoogleRedirect sends the browser to the provider's consent page.
func (a *API) GoogleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.provider == nil {
			a.respondError(w, http.StatusServiceUnavailable, "Google authentication is not configured", nil)
			return
		}

		state, err := generateState()
		if err != nil {
			a.logErr(r, "failed to generate oauth state")
			a.respondError(w, http.StatusInternalServerError, "Internal server error", nil)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     stateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   300,
			HttpOnly: true,
			Secure:   a.cfg.SecureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, a.provider.AuthCodeURL(state), http.StatusFound)
	}
}

// GoogleCallback completes the handshake and hands tokens to the frontend.
//
// Success redirects to FRONTEND_URL/auth/callback with token, refresh, and a
// url-encoded JSON user object as query parameters — bearer tokens in a URL,
// kept for compatibility with the existing frontend contract. Failures
// redirect with an error parameter instead.
func (a *API) GoogleCallback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if a.provider == nil {
			a.redirectWithError(w, r, "Google authentication is not configured")
			return
		}

		query := r.URL.Query()
		if errMsg := query.Get("error"); errMsg != "" {
			a.redirectWithError(w, r, "Google authentication failed")
			return
		}

		stateCookie, err := r.Cookie(stateCookieName)
		if err != nil || stateCookie.Value == "" || stateCookie.Value != query.Get("state") {
			a.redirectWithError(w, r, "Invalid authentication state")
			return
		}

		profile, err := a.provider.ExchangeCode(r.Context(), query.Get("code"))
		if err != nil {
			a.logErr(r, "code exchange failed: "+err.Error())
			a.redirectWithError(w, r, "Google authentication failed")
			return
		}

		user, pair, err := a.service.LoginWithExternalIdentity(service.ExternalIdentity{
			ID:     profile.ID,
			Email:  profile.Email,
			Name:   profile.Name,
			Avatar: profile.Avatar,
		})
		if err != nil {
			a.logErr(r, "external login failed: "+err.Error())
			a.redirectWithError(w, r, "Google authentication failed")
			return
		}

		a.setRefreshCookie(w, pair.RefreshToken)

		userJSON, err := json.Marshal(map[string]string{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
		})
		if err != nil {
			a.redirectWithError(w, r, "Google authentication failed")
			return
		}

		redirect := a.cfg.FrontendURL + "/auth/callback" +
			"?token=" + url.QueryEscape(pair.AccessToken) +
			"&refresh=" + url.QueryEscape(pair.RefreshToken) +
			"&user=" + url.QueryEscape(string(userJSON))
		http.Redirect(w, r, redirect, http.StatusFound)
	}
}

func (a *API) redirectWithError(w http.ResponseWriter, r *http.Request, msg string) {
	http.Redirect(w, r,
		a.cfg.FrontendURL+"/auth/callback?error="+url.QueryEscape(msg),
		http.StatusFound,
	)
}

func generateState() (string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(randomBytes), nil
}
