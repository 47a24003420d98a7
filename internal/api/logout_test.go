package api_test

import (
	"fmt"
	"net/http"
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/testutil"
)

func TestLogout_RevokesToken(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	_, pair := env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	body := fmt.Sprintf(`{"refreshToken": %q}`, pair.RefreshToken)
	result := testutil.PostJSON(env.Router, "/api/auth/logout", body, nil)
	testutil.ExpectStatus(t, http.StatusOK, result)

	// the token can no longer be used to refresh
	refreshBody := fmt.Sprintf(`{"refreshToken": %q}`, pair.RefreshToken)
	result = testutil.PostJSON(env.Router, "/api/auth/refresh", refreshBody, nil)
	testutil.ExpectStatus(t, http.StatusUnauthorized, result)
}

func TestLogout_FromCookie(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	_, pair := env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	result := testutil.Post(env.Router, "/api/auth/logout", "", nil,
		testutil.RefreshCookie(pair.RefreshToken))
	testutil.ExpectStatus(t, http.StatusOK, result)

	refreshBody := fmt.Sprintf(`{"refreshToken": %q}`, pair.RefreshToken)
	result = testutil.PostJSON(env.Router, "/api/auth/refresh", refreshBody, nil)
	testutil.ExpectStatus(t, http.StatusUnauthorized, result)
}

func TestLogout_NoToken(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	// logout succeeds even with nothing to revoke
	var resp envelope
	result := testutil.Post(env.Router, "/api/auth/logout", "", &resp)
	testutil.ExpectStatus(t, http.StatusOK, result)
	if !resp.Success {
		t.Error("expected success envelope")
	}
}

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	result := testutil.Post(env.Router, "/api/auth/logout", "", nil)
	testutil.ExpectStatus(t, http.StatusOK, result)

	cookie := testutil.ResponseCookie(result, "refresh_token")
	if cookie == nil {
		t.Fatal("expected cookie-clearing Set-Cookie header")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Error("expected cleared refresh cookie")
	}
}

func TestLogout_Twice(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	_, pair := env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	body := fmt.Sprintf(`{"refreshToken": %q}`, pair.RefreshToken)
	result := testutil.PostJSON(env.Router, "/api/auth/logout", body, nil)
	testutil.ExpectStatus(t, http.StatusOK, result)

	// second logout with the same, now-absent token still succeeds
	result = testutil.PostJSON(env.Router, "/api/auth/logout", body, nil)
	testutil.ExpectStatus(t, http.StatusOK, result)
}
