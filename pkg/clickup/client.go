package clickup

import (
	"context"
	"net/http"
)

// Client is the main interface for the ClickUp API client.
type Client interface {
	Teams() TeamsClient
	Spaces() SpacesClient
	Folders() FoldersClient
	Lists() ListsClient
	Tasks() TasksClient
	Views() ViewsClient
}

// TeamsClient defines operations for teams (workspaces).
type TeamsClient interface {
	GetTeams(ctx context.Context) ([]Team, error)
}

// SpacesClient defines operations for spaces.
type SpacesClient interface {
	GetSpaces(ctx context.Context, teamID string) ([]Space, error)
	GetSpace(ctx context.Context, spaceID string) (*Space, error)
}

// FoldersClient defines operations for folders.
type FoldersClient interface {
	GetFolders(ctx context.Context, spaceID string) ([]Folder, error)
	GetFolder(ctx context.Context, folderID string) (*Folder, error)
}

// ListsClient defines operations for lists.
type ListsClient interface {
	GetLists(ctx context.Context, folderID string) ([]List, error)
	GetFolderlessLists(ctx context.Context, spaceID string) ([]List, error)
	GetList(ctx context.Context, listID string) (*List, error)
}

// TasksClient defines operations for tasks.
type TasksClient interface {
	GetTasks(ctx context.Context, listID string) ([]Task, error)
}

// ViewsClient defines operations for views and the tasks they show.
type ViewsClient interface {
	GetSpaceViews(ctx context.Context, spaceID string) ([]View, error)
	GetFolderViews(ctx context.Context, folderID string) ([]View, error)
	GetListViews(ctx context.Context, listID string) ([]View, error)
	GetViewTasks(ctx context.Context, viewID string) ([]Task, error)
	GetView(ctx context.Context, viewID string) (*View, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a clickup.Client.
//
// Requests carry Token verbatim in the Authorization header. Per-request
// timeouts are controlled via the context passed to client methods; no
// request is ever retried.
type Config struct {
	// APIEndpoint: base URL of the ClickUp API. Defaults to
	// "https://api.clickup.com". cuclient.New trims a trailing slash and adds
	// "https://" if no scheme is present.
	APIEndpoint string
	// Token: personal API token. Required.
	Token string

	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Debug: enables HTTP request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// StrictValidation: validate every response body against the record
	// shapes before decoding it.
	StrictValidation bool
	// HTTPClient: optional underlying client, mainly for tests.
	HTTPClient *http.Client
}
