// Package oauth adapts the third-party identity provider handshake to a
// fixed two-call interface: build the consent redirect, then exchange the
// callback code for a verified profile.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

const (
	googleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL    = "https://oauth2.googleapis.com/token"
	googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

// Profile is the provider-verified identity returned by a successful
// code exchange.
type Profile struct {
	ID     string
	Email  string
	Name   string
	Avatar string
}

// Provider performs the external-identity handshake.
type Provider interface {
	AuthCodeURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*Profile, error)
}

// GoogleProvider implements Provider against Google's OAuth2 endpoints.
type GoogleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(
	clientID string,
	clientSecret string,
	redirectURL string,
) *GoogleProvider {
	return &GoogleProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"profile", "email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  googleAuthURL,
				TokenURL: googleTokenURL,
			},
		},
		userInfoURL: googleUserInfoURL,
	}
}

// AuthCodeURL returns the provider consent page URL for a login attempt.
func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ExchangeCode trades the callback authorization code for an access token
// and fetches the user's profile.
func (p *GoogleProvider) ExchangeCode(
	ctx context.Context,
	code string,
) (
	*Profile,
	error,
) {
	if code == "" {
		return nil, fmt.Errorf("missing authorization code")
	}

	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	client := p.config.Client(ctx, token)
	resp, err := client.Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var info struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if info.Sub == "" {
		return nil, fmt.Errorf("missing user id in provider response")
	}
	if info.Email == "" {
		return nil, fmt.Errorf("missing email in provider response")
	}

	return &Profile{
		ID:     info.Sub,
		Email:  info.Email,
		Name:   info.Name,
		Avatar: info.Picture,
	}, nil
}
