package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

type tasksEnvelope struct {
	Tasks []clickup.Task `json:"tasks"`
}

// TasksClient implements clickup.TasksClient.
type TasksClient struct {
	resource
}

// NewTasksClient creates a new tasks client.
func NewTasksClient(httpClient *http.Client, strict bool) *TasksClient {
	return &TasksClient{
		resource: resource{httpClient: httpClient, strict: strict},
	}
}

// GetTasks implements clickup.TasksClient.GetTasks. Only the first page the
// API returns is read.
func (c *TasksClient) GetTasks(ctx context.Context, listID string) ([]clickup.Task, error) {
	err := requireID("listId", listID)
	if err != nil {
		return nil, fmt.Errorf("getting tasks: %w", err)
	}

	tasks, err := c.getTasks(ctx, apiPath("list", listID, "task"))
	if err != nil {
		return nil, fmt.Errorf("getting tasks: %w", err)
	}

	return tasks, nil
}

// getTasks is shared with the views client, whose view tasks use the same
// envelope.
func (r resource) getTasks(ctx context.Context, path string) ([]clickup.Task, error) {
	body, err := r.fetchCollection(ctx, path, "tasks", clickup.TaskShape)
	if err != nil {
		return nil, err
	}

	var envelope tasksEnvelope

	err = decode(body, "tasks", &envelope)
	if err != nil {
		return nil, err
	}

	return envelope.Tasks, nil
}
