package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type foldersEnvelope struct {
	Folders []clickup.Folder `json:"folders"`
}

// FoldersClient implements clickup.FoldersClient.
type FoldersClient struct {
	resource
}

// NewFoldersClient creates a new folders client.
func NewFoldersClient(httpClient *http.Client, strict bool) *FoldersClient {
	return &FoldersClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetFolders implements clickup.FoldersClient.GetFolders.
func (c *FoldersClient) GetFolders(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
	err := requireID("spaceId", spaceID)
	if err != nil {
		return nil, fmt.Errorf("getting folders: %w", err)
	}

	body, err := c.fetchCollection(ctx, apiPath("space", spaceID, "folder"), "folders", clickup.FolderShape)
	if err != nil {
		return nil, fmt.Errorf("getting folders: %w", err)
	}

	var envelope foldersEnvelope

	err = decode(body, "folders", &envelope)
	if err != nil {
		return nil, fmt.Errorf("getting folders: %w", err)
	}

	return envelope.Folders, nil
}

// GetFolder implements clickup.FoldersClient.GetFolder. The returned folder
// carries the lists it contains.
func (c *FoldersClient) GetFolder(ctx context.Context, folderID string) (*clickup.Folder, error) {
	err := requireID("folderId", folderID)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	body, err := c.fetchRecord(ctx, apiPath("folder", folderID), clickup.FolderShape)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	var folder clickup.Folder

	err = decode(body, "folder", &folder)
	if err != nil {
		return nil, fmt.Errorf("getting folder: %w", err)
	}

	return &folder, nil
}
