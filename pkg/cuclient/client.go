// Package cuclient provides the main entry point for creating ClickUp API clients
package cuclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/clickup-client/internal/client"
	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

// New creates a new ClickUp API client. A missing token is reported as
// clickup.ErrMissingCredential before any transport is built.
func New(ctx context.Context, config *clickup.Config) (clickup.Client, error) {
	if config == nil {
		return nil, clickup.ErrConfigRequired
	}

	if config.Token == "" {
		return nil, clickup.ErrMissingCredential
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	client, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return client, nil
}

// NewWithToken creates a client for the public ClickUp API using token.
func NewWithToken(ctx context.Context, token string) (clickup.Client, error) {
	return New(ctx, &clickup.Config{Token: token})
}

// NewWithEndpoint creates a client for endpoint using token.
func NewWithEndpoint(ctx context.Context, endpoint, token string) (clickup.Client, error) {
	return New(ctx, &clickup.Config{APIEndpoint: endpoint, Token: token})
}

// normalizeEndpoint defaults an empty endpoint, trims a trailing slash and
// adds https:// when no scheme is given.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
