package database_test

import (
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/database"
)

func setupStore(t *testing.T) *database.SQLiteStore {
	t.Helper()
	store, err := database.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestNewSQLiteStore_InMemory(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	// in-memory store is created successfully
	if store == nil {
		t.Fatal("expected non-nil store")
	}
}

func TestNewSQLiteStore_CreatesSchema(t *testing.T) {
	t.Parallel()
	store := setupStore(t)

	// schema is created - insert and retrieve works
	user := &database.User{
		ID:           "user-1",
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: []byte("secret-hash"),
	}
	if err := store.InsertUser(user); err != nil {
		t.Fatalf("schema not created - InsertUser failed: %v", err)
	}

	got, err := store.GetUserByEmail("test@example.com")
	if err != nil {
		t.Fatalf("schema not created - GetUserByEmail failed: %v", err)
	}
	if string(got.PasswordHash) != "secret-hash" {
		t.Errorf("unexpected password hash: %s", string(got.PasswordHash))
	}
}

func TestSQLiteStore_Close(t *testing.T) {
	t.Parallel()
	store, err := database.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// closing store succeeds without error
	if err := store.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}
