package service_test

import (
	"testing"

	"git.sr.ht/~jakintosh/warrant/internal/service"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordMode_TestingCost(t *testing.T) {
	t.Parallel()

	// testing mode runs at minimum cost so the suite stays fast
	if got := service.PasswordModeTesting.Cost(); got != bcrypt.MinCost {
		t.Errorf("testing cost = %d, want %d", got, bcrypt.MinCost)
	}
}

func TestPasswordMode_ProductionCost(t *testing.T) {
	t.Parallel()

	if got := service.PasswordModeProduction.Cost(); got != 12 {
		t.Errorf("production cost = %d, want 12", got)
	}
}
