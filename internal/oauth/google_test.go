package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

// fakeGoogle stands in for the provider's token and userinfo endpoints.
func fakeGoogle(t *testing.T, userInfoStatus int, userInfoBody string) *GoogleProvider {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"provider-token","token_type":"Bearer"}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		_, _ = w.Write([]byte(userInfoBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     "client-id",
			ClientSecret: "client-secret",
			RedirectURL:  "http://localhost:8080/api/auth/google/callback",
			Scopes:       []string{"profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  server.URL + "/auth",
				TokenURL: server.URL + "/token",
			},
		},
		userInfoURL: server.URL + "/userinfo",
	}
}

func TestAuthCodeURL(t *testing.T) {
	t.Parallel()
	p := NewGoogleProvider("client-id", "secret", "http://localhost:8080/api/auth/google/callback")

	url := p.AuthCodeURL("state-123")
	for _, want := range []string{"client_id=client-id", "state=state-123", "scope=profile+email"} {
		if !strings.Contains(url, want) {
			t.Errorf("auth URL missing %q: %s", want, url)
		}
	}
}

func TestExchangeCode_Success(t *testing.T) {
	t.Parallel()
	p := fakeGoogle(t, http.StatusOK, `{
		"sub": "google-1",
		"email": "alice@example.com",
		"name": "Alice",
		"picture": "https://example.com/a.png"
	}`)

	profile, err := p.ExchangeCode(context.Background(), "auth-code")
	if err != nil {
		t.Fatalf("ExchangeCode failed: %v", err)
	}
	if profile.ID != "google-1" {
		t.Errorf("id = %s, want google-1", profile.ID)
	}
	if profile.Email != "alice@example.com" {
		t.Errorf("email = %s", profile.Email)
	}
	if profile.Name != "Alice" {
		t.Errorf("name = %s", profile.Name)
	}
	if profile.Avatar != "https://example.com/a.png" {
		t.Errorf("avatar = %s", profile.Avatar)
	}
}

func TestExchangeCode_MissingCode(t *testing.T) {
	t.Parallel()
	p := NewGoogleProvider("client-id", "secret", "http://localhost:8080/callback")

	if _, err := p.ExchangeCode(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty code")
	}
}

func TestExchangeCode_MissingEmail(t *testing.T) {
	t.Parallel()
	p := fakeGoogle(t, http.StatusOK, `{"sub": "google-1", "name": "No Email"}`)

	if _, err := p.ExchangeCode(context.Background(), "auth-code"); err == nil {
		t.Fatal("expected error for profile without email")
	}
}

func TestExchangeCode_UserInfoFailure(t *testing.T) {
	t.Parallel()
	p := fakeGoogle(t, http.StatusInternalServerError, `{"error": "boom"}`)

	if _, err := p.ExchangeCode(context.Background(), "auth-code"); err == nil {
		t.Fatal("expected error for failing userinfo endpoint")
	}
}
