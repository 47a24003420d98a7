// Package testutil provides test environment setup and utilities for internal package tests.
package testutil

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/api"
	"git.sr.ht/~jakintosh/warrant/internal/database"
	"git.sr.ht/~jakintosh/warrant/internal/oauth"
	"git.sr.ht/~jakintosh/warrant/internal/service"
	"git.sr.ht/~jakintosh/warrant/internal/tokens"
	"github.com/sirupsen/logrus"
)

const (
	TestAccessSecret  = "test-access-secret"
	TestRefreshSecret = "test-refresh-secret"
	TestAccessTTL     = time.Hour
	TestRefreshTTL    = 720 * time.Hour
	TestFrontendURL   = "http://frontend.test"
)

// TestEnv provides all dependencies needed for testing
type TestEnv struct {
	Store    *database.SQLiteStore
	Service  *service.Service
	Codec    *tokens.Codec
	Provider *FakeProvider
	Router   http.Handler
}

// FakeProvider is an in-memory stand-in for the external identity provider.
type FakeProvider struct {
	Profile *oauth.Profile
	Err     error
}

func (f *FakeProvider) AuthCodeURL(state string) string {
	return "https://provider.test/auth?state=" + state
}

func (f *FakeProvider) ExchangeCode(_ context.Context, code string) (*oauth.Profile, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Profile, nil
}

// SetupTestEnv creates an isolated test environment with in-memory SQLite
func SetupTestEnv(
	t *testing.T,
) *TestEnv {
	t.Helper()

	store, err := database.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	codec, err := tokens.NewCodec(TestAccessSecret, TestRefreshSecret, TestAccessTTL, TestRefreshTTL)
	if err != nil {
		t.Fatalf("failed to create codec: %v", err)
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	svc := service.New(store, store, codec, service.PasswordModeTesting, logger)

	return &TestEnv{
		Store:   store,
		Service: svc,
		Codec:   codec,
	}
}

// SetupTestEnvWithRouter creates TestEnv and configures the API router
func SetupTestEnvWithRouter(
	t *testing.T,
) *TestEnv {
	t.Helper()
	env := SetupTestEnv(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	env.Provider = &FakeProvider{}
	a := api.New(env.Service, env.Provider, api.Config{
		FrontendURL: TestFrontendURL,
		CookieTTL:   TestRefreshTTL,
	}, logger)
	env.Router = a.Router()
	return env
}

// RegisterTestUser creates a password-credentialed user
func (env *TestEnv) RegisterTestUser(
	t *testing.T,
	name string,
	email string,
	password string,
) (*database.User, *service.TokenPair) {
	t.Helper()
	user, pair, err := env.Service.Register(name, email, password)
	if err != nil {
		t.Fatalf("failed to register test user: %v", err)
	}
	return user, pair
}

// IssueTestTokens mints and stores a token pair for an existing user
func (env *TestEnv) IssueTestTokens(
	t *testing.T,
	userID string,
) *service.TokenPair {
	t.Helper()
	pair, err := env.Service.IssueTokens(userID)
	if err != nil {
		t.Fatalf("failed to issue test tokens: %v", err)
	}
	return pair
}
