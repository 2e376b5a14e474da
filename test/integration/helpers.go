//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/fivetwenty-io/clickup-client/pkg/cuclient"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	APIEndpoint string
	Token       string
	Strict      bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIEndpoint: os.Getenv(constants.EnvAPI),
		Token:       os.Getenv(constants.EnvToken),
		Strict:      os.Getenv("CLICKUP_STRICT") == "true",
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skipf("%s not set, skipping integration test", constants.EnvToken)
	}
}

// NewClient builds a live client and a context bounded by ShortHTTPTimeout.
func (config *TestConfig) NewClient(t *testing.T) (clickup.Client, context.Context) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShortHTTPTimeout)
	t.Cleanup(cancel)

	client, err := cuclient.New(ctx, &clickup.Config{
		APIEndpoint:      config.APIEndpoint,
		Token:            config.Token,
		StrictValidation: config.Strict,
	})
	require.NoError(t, err)

	return client, ctx
}
