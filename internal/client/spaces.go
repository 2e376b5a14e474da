package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type spacesEnvelope struct {
	Spaces []clickup.Space `json:"spaces"`
}

// SpacesClient implements clickup.SpacesClient.
type SpacesClient struct {
	resource
}

// NewSpacesClient creates a new spaces client.
func NewSpacesClient(httpClient *http.Client, strict bool) *SpacesClient {
	return &SpacesClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetSpaces implements clickup.SpacesClient.GetSpaces.
func (c *SpacesClient) GetSpaces(ctx context.Context, teamID string) ([]clickup.Space, error) {
	err := requireID("teamId", teamID)
	if err != nil {
		return nil, fmt.Errorf("getting spaces: %w", err)
	}

	body, err := c.fetchCollection(ctx, apiPath("team", teamID, "space"), "spaces", clickup.SpaceShape)
	if err != nil {
		return nil, fmt.Errorf("getting spaces: %w", err)
	}

	var envelope spacesEnvelope

	err = decode(body, "spaces", &envelope)
	if err != nil {
		return nil, fmt.Errorf("getting spaces: %w", err)
	}

	return envelope.Spaces, nil
}

// GetSpace implements clickup.SpacesClient.GetSpace.
func (c *SpacesClient) GetSpace(ctx context.Context, spaceID string) (*clickup.Space, error) {
	err := requireID("spaceId", spaceID)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	body, err := c.fetchRecord(ctx, apiPath("space", spaceID), clickup.SpaceShape)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	var space clickup.Space

	err = decode(body, "space", &space)
	if err != nil {
		return nil, fmt.Errorf("getting space: %w", err)
	}

	return &space, nil
}
