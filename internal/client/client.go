package client

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

// Static errors for err113 compliance.
var (
	ErrAPIEndpointRequired = errors.New("API endpoint is required")
)

// Client implements the clickup.Client interface.
type Client struct {
	httpClient *http.Client

	// Resource clients
	teams   *TeamsClient
	spaces  *SpacesClient
	folders *FoldersClient
	lists   *ListsClient
	tasks   *TasksClient
	views   *ViewsClient
}

// New creates a new ClickUp API client. The credential must already be
// present in config.
func New(_ context.Context, config *clickup.Config) (*Client, error) {
	if config == nil {
		return nil, clickup.ErrConfigRequired
	}

	if config.APIEndpoint == "" {
		return nil, ErrAPIEndpointRequired
	}

	if config.Token == "" {
		return nil, clickup.ErrMissingCredential
	}

	httpClient := http.NewClient(config.APIEndpoint, config.Token, createHTTPClientOptions(config)...)

	client := &Client{httpClient: httpClient}

	client.initializeResourceClients(config.StrictValidation)

	return client, nil
}

// createHTTPClientOptions creates HTTP client options from config.
func createHTTPClientOptions(config *clickup.Config) []http.Option {
	httpOpts := []http.Option{}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

func (c *Client) initializeResourceClients(strict bool) {
	c.teams = NewTeamsClient(c.httpClient, strict)
	c.spaces = NewSpacesClient(c.httpClient, strict)
	c.folders = NewFoldersClient(c.httpClient, strict)
	c.lists = NewListsClient(c.httpClient, strict)
	c.tasks = NewTasksClient(c.httpClient, strict)
	c.views = NewViewsClient(c.httpClient, strict)
}

// Teams implements clickup.Client.Teams.
func (c *Client) Teams() clickup.TeamsClient {
	return c.teams
}

// Spaces implements clickup.Client.Spaces.
func (c *Client) Spaces() clickup.SpacesClient {
	return c.spaces
}

// Folders implements clickup.Client.Folders.
func (c *Client) Folders() clickup.FoldersClient {
	return c.folders
}

// Lists implements clickup.Client.Lists.
func (c *Client) Lists() clickup.ListsClient {
	return c.lists
}

// Tasks implements clickup.Client.Tasks.
func (c *Client) Tasks() clickup.TasksClient {
	return c.tasks
}

// Views implements clickup.Client.Views.
func (c *Client) Views() clickup.ViewsClient {
	return c.views
}

var _ clickup.Client = (*Client)(nil)
