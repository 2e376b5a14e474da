package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type listsEnvelope struct {
	Lists []clickup.List `json:"lists"`
}

// ListsClient implements clickup.ListsClient.
type ListsClient struct {
	resource
}

// NewListsClient creates a new lists client.
func NewListsClient(httpClient *http.Client, strict bool) *ListsClient {
	return &ListsClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetLists implements clickup.ListsClient.GetLists. The lists of a folder
// are read from the folder resource itself.
func (c *ListsClient) GetLists(ctx context.Context, folderID string) ([]clickup.List, error) {
	err := requireID("folderId", folderID)
	if err != nil {
		return nil, fmt.Errorf("getting lists: %w", err)
	}

	lists, err := c.getLists(ctx, apiPath("folder", folderID))
	if err != nil {
		return nil, fmt.Errorf("getting lists: %w", err)
	}

	return lists, nil
}

// GetFolderlessLists implements clickup.ListsClient.GetFolderlessLists.
func (c *ListsClient) GetFolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error) {
	err := requireID("spaceId", spaceID)
	if err != nil {
		return nil, fmt.Errorf("getting folderless lists: %w", err)
	}

	lists, err := c.getLists(ctx, apiPath("space", spaceID, "list"))
	if err != nil {
		return nil, fmt.Errorf("getting folderless lists: %w", err)
	}

	return lists, nil
}

func (c *ListsClient) getLists(ctx context.Context, path string) ([]clickup.List, error) {
	body, err := c.fetchCollection(ctx, path, "lists", clickup.ListShape)
	if err != nil {
		return nil, err
	}

	var envelope listsEnvelope

	err = decode(body, "lists", &envelope)
	if err != nil {
		return nil, err
	}

	return envelope.Lists, nil
}

// GetList implements clickup.ListsClient.GetList.
func (c *ListsClient) GetList(ctx context.Context, listID string) (*clickup.List, error) {
	err := requireID("listId", listID)
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	body, err := c.fetchRecord(ctx, apiPath("list", listID), clickup.ListShape)
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	var list clickup.List

	err = decode(body, "list", &list)
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	return &list, nil
}
