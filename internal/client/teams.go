package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type teamsEnvelope struct {
	Teams []clickup.Team `json:"teams"`
}

// TeamsClient implements clickup.TeamsClient.
type TeamsClient struct {
	resource
}

// NewTeamsClient creates a new teams client.
func NewTeamsClient(httpClient *http.Client, strict bool) *TeamsClient {
	return &TeamsClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetTeams implements clickup.TeamsClient.GetTeams.
func (c *TeamsClient) GetTeams(ctx context.Context) ([]clickup.Team, error) {
	body, err := c.fetchCollection(ctx, apiPath("team"), "teams", clickup.TeamShape)
	if err != nil {
		return nil, fmt.Errorf("getting teams: %w", err)
	}

	var envelope teamsEnvelope

	err = decode(body, "teams", &envelope)
	if err != nil {
		return nil, fmt.Errorf("getting teams: %w", err)
	}

	return envelope.Teams, nil
}
