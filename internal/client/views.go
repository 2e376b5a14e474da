package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type viewsEnvelope struct {
	Views []clickup.View `json:"views"`
}

// ViewsClient implements clickup.ViewsClient.
type ViewsClient struct {
	resource
}

// NewViewsClient creates a new views client.
func NewViewsClient(httpClient *http.Client, strict bool) *ViewsClient {
	return &ViewsClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetSpaceViews implements clickup.ViewsClient.GetSpaceViews.
func (c *ViewsClient) GetSpaceViews(ctx context.Context, spaceID string) ([]clickup.View, error) {
	return c.getViews(ctx, "space", "spaceId", spaceID)
}

// GetFolderViews implements clickup.ViewsClient.GetFolderViews.
func (c *ViewsClient) GetFolderViews(ctx context.Context, folderID string) ([]clickup.View, error) {
	return c.getViews(ctx, "folder", "folderId", folderID)
}

// GetListViews implements clickup.ViewsClient.GetListViews.
func (c *ViewsClient) GetListViews(ctx context.Context, listID string) ([]clickup.View, error) {
	return c.getViews(ctx, "list", "listId", listID)
}

func (c *ViewsClient) getViews(ctx context.Context, parent, param, id string) ([]clickup.View, error) {
	err := requireID(param, id)
	if err != nil {
		return nil, fmt.Errorf("getting %s views: %w", parent, err)
	}

	body, err := c.fetchCollection(ctx, apiPath(parent, id, "view"), "views", clickup.ViewShape)
	if err != nil {
		return nil, fmt.Errorf("getting %s views: %w", parent, err)
	}

	var envelope viewsEnvelope

	err = decode(body, "views", &envelope)
	if err != nil {
		return nil, fmt.Errorf("getting %s views: %w", parent, err)
	}

	return envelope.Views, nil
}

// GetViewTasks implements clickup.ViewsClient.GetViewTasks.
func (c *ViewsClient) GetViewTasks(ctx context.Context, viewID string) ([]clickup.Task, error) {
	err := requireID("viewId", viewID)
	if err != nil {
		return nil, fmt.Errorf("getting view tasks: %w", err)
	}

	tasks, err := c.getTasks(ctx, apiPath("view", viewID, "task"))
	if err != nil {
		return nil, fmt.Errorf("getting view tasks: %w", err)
	}

	return tasks, nil
}

// GetView implements clickup.ViewsClient.GetView.
func (c *ViewsClient) GetView(ctx context.Context, viewID string) (*clickup.View, error) {
	err := requireID("viewId", viewID)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	body, err := c.fetchRecord(ctx, apiPath("view", viewID), clickup.ViewShape)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	var view clickup.View

	err = decode(body, "view", &view)
	if err != nil {
		return nil, fmt.Errorf("getting view: %w", err)
	}

	return &view, nil
}
