package api_test

import (
	"net/http"
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/testutil"
)

func TestLogin_Success(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	body := `{"email": "alice@example.com", "password": "password123"}`
	var resp envelope
	result := testutil.PostJSON(env.Router, "/api/auth/login", body, &resp)
	testutil.ExpectStatus(t, http.StatusOK, result)

	payload := decodeAuthPayload(t, resp)
	if payload.AccessToken == "" || payload.RefreshToken == "" {
		t.Error("expected non-empty tokens")
	}
	if payload.User["email"] != "alice@example.com" {
		t.Errorf("user email = %v", payload.User["email"])
	}
	if testutil.ResponseCookie(result, "refresh_token") == nil {
		t.Error("expected refresh_token cookie")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	body := `{"email": "alice@example.com", "password": "wrongpassword"}`
	var resp envelope
	result := testutil.PostJSON(env.Router, "/api/auth/login", body, &resp)
	testutil.ExpectStatus(t, http.StatusUnauthorized, result)
	if resp.Message != "Invalid credentials" {
		t.Errorf("message = %q, want uniform Invalid credentials", resp.Message)
	}
}

func TestLogin_UnknownEmail_UniformMessage(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	env.RegisterTestUser(t, "Alice", "alice@example.com", "password123")

	// the unknown-email response is byte-for-byte the same message as the
	// wrong-password response
	body := `{"email": "nobody@example.com", "password": "password123"}`
	var resp envelope
	result := testutil.PostJSON(env.Router, "/api/auth/login", body, &resp)
	testutil.ExpectStatus(t, http.StatusUnauthorized, result)
	if resp.Message != "Invalid credentials" {
		t.Errorf("message = %q, want uniform Invalid credentials", resp.Message)
	}
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	result := testutil.PostJSON(env.Router, "/api/auth/login", `{"email": "a@x.com"}`, nil)
	testutil.ExpectStatus(t, http.StatusBadRequest, result)
}

func TestLogin_InvalidJSON(t *testing.T) {
	t.Parallel()
	env := testutil.SetupTestEnvWithRouter(t)

	result := testutil.PostJSON(env.Router, "/api/auth/login", "not-json", nil)
	testutil.ExpectStatus(t, http.StatusBadRequest, result)
}
