package config_test

import (
	"strings"
	"testing"
	"time"

	"git.sr.ht/~jakintosh/warrant/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %s, want :8080", cfg.ListenAddr)
	}
	if cfg.AccessTTL != 60*time.Minute {
		t.Errorf("AccessTTL = %v, want 60m", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 720*time.Hour {
		t.Errorf("RefreshTTL = %v, want 720h", cfg.RefreshTTL)
	}
	if cfg.IsProduction() {
		t.Error("default environment should not be production")
	}
}

func TestLoad_MissingAccessSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing access secret")
	}
}

func TestLoad_MissingRefreshSecret(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error for missing refresh secret")
	}
}

func TestLoad_SharedSecretRejected(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "same-secret")
	t.Setenv("JWT_REFRESH_SECRET", "same-secret")

	_, err := config.Load()
	if err == nil {
		t.Fatal("expected error for identical secrets")
	}
	if !strings.Contains(err.Error(), "distinct") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_RefreshTTLMustExceedAccessTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("ACCESS_TOKEN_TTL", "2h")
	t.Setenv("REFRESH_TOKEN_TTL", "1h")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when refresh TTL <= access TTL")
	}
}

func TestLoad_ProductionMode(t *testing.T) {
	setRequired(t)
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
