package app

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestCreateApp(t *testing.T) {
	// Set required environment variables for test
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("STRIPE_API_KEY", "sk_test_123")
	defer func() {
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("STRIPE_API_KEY")
	}()

	// Validate fx dependency graph
	require.NoError(t, fx.ValidateApp(CreateApp()))
}
