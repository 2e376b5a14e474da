package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func asRecords[T clickup.Record](items []T) []clickup.Record {
	out := make([]clickup.Record, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}

	return out
}

func one[T clickup.Record](item *T, err error) ([]clickup.Record, error) {
	if err != nil {
		return nil, err
	}

	return []clickup.Record{*item}, nil
}

func many[T clickup.Record](items []T, err error) ([]clickup.Record, error) {
	if err != nil {
		return nil, err
	}

	return asRecords(items), nil
}

type operation struct {
	name       string
	path       string
	key        string
	collection bool
	call       func(ctx context.Context, c *Client, id string) ([]clickup.Record, error)
}

func operations() []operation {
	return []operation{
		{
			name: "GetTeams", path: "/api/v2/team", key: "teams", collection: true,
			call: func(ctx context.Context, c *Client, _ string) ([]clickup.Record, error) {
				return many(c.Teams().GetTeams(ctx))
			},
		},
		{
			name: "GetSpaces", path: "/api/v2/team/abc/space", key: "spaces", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Spaces().GetSpaces(ctx, id))
			},
		},
		{
			name: "GetSpace", path: "/api/v2/space/abc",
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return one(c.Spaces().GetSpace(ctx, id))
			},
		},
		{
			name: "GetFolders", path: "/api/v2/space/abc/folder", key: "folders", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Folders().GetFolders(ctx, id))
			},
		},
		{
			name: "GetFolder", path: "/api/v2/folder/abc",
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return one(c.Folders().GetFolder(ctx, id))
			},
		},
		{
			name: "GetLists", path: "/api/v2/folder/abc", key: "lists", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Lists().GetLists(ctx, id))
			},
		},
		{
			name: "GetFolderlessLists", path: "/api/v2/space/abc/list", key: "lists", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Lists().GetFolderlessLists(ctx, id))
			},
		},
		{
			name: "GetList", path: "/api/v2/list/abc",
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return one(c.Lists().GetList(ctx, id))
			},
		},
		{
			name: "GetTasks", path: "/api/v2/list/abc/task", key: "tasks", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Tasks().GetTasks(ctx, id))
			},
		},
		{
			name: "GetSpaceViews", path: "/api/v2/space/abc/view", key: "views", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Views().GetSpaceViews(ctx, id))
			},
		},
		{
			name: "GetFolderViews", path: "/api/v2/folder/abc/view", key: "views", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Views().GetFolderViews(ctx, id))
			},
		},
		{
			name: "GetListViews", path: "/api/v2/list/abc/view", key: "views", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Views().GetListViews(ctx, id))
			},
		},
		{
			name: "GetViewTasks", path: "/api/v2/view/abc/task", key: "tasks", collection: true,
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return many(c.Views().GetViewTasks(ctx, id))
			},
		},
		{
			name: "GetView", path: "/api/v2/view/abc",
			call: func(ctx context.Context, c *Client, id string) ([]clickup.Record, error) {
				return one(c.Views().GetView(ctx, id))
			},
		},
	}
}

func TestOperations_PathsAndDecoding(t *testing.T) {
	t.Parallel()

	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			body := `{"id":"1","name":"First","beta_field":true}`
			if op.collection {
				body = `{"` + op.key + `":[{"id":"1","name":"First"},{"id":"2","name":"Second"}]}`
			}

			server := newTestServer(t, http.StatusOK, body)
			client := NewTestClient(server.URL, false)

			records, err := op.call(context.Background(), client, "abc")
			require.NoError(t, err)
			assert.Equal(t, op.path, <-server.paths)

			if op.collection {
				require.Len(t, records, 2)
				assert.Equal(t, "1", records[0].RecordID())
				assert.Equal(t, "Second", records[1].RecordName())

				return
			}

			require.Len(t, records, 1)
			assert.Equal(t, "1", records[0].RecordID())
			assert.Equal(t, "First", records[0].RecordName())
		})
	}
}

func TestOperations_NotFound(t *testing.T) {
	t.Parallel()

	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusNotFound, `{"err":"Not found","ECODE":"ITEM_013"}`)
			client := NewTestClient(server.URL, false)

			_, err := op.call(context.Background(), client, "abc")
			require.Error(t, err)
			assert.True(t, clickup.IsNotFound(err))
			assert.Equal(t, http.StatusNotFound, clickup.StatusCode(err))
			assert.Contains(t, err.Error(), "getting")
		})
	}
}

func TestOperations_MalformedJSON(t *testing.T) {
	t.Parallel()

	for _, op := range operations() {
		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusOK, `{"id":`)
			client := NewTestClient(server.URL, false)

			_, err := op.call(context.Background(), client, "abc")

			var parseErr *clickup.ParseError
			require.ErrorAs(t, err, &parseErr)
		})
	}
}

func TestOperations_EmptyIDMakesNoRequest(t *testing.T) {
	t.Parallel()

	for _, op := range operations() {
		if op.name == "GetTeams" {
			continue
		}

		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusOK, `{}`)
			client := NewTestClient(server.URL, false)

			_, err := op.call(context.Background(), client, "")
			require.ErrorIs(t, err, clickup.ErrIDRequired)
			assert.Equal(t, int32(0), server.hits.Load())
		})
	}
}

func TestCollections_MissingKeyIsEmpty(t *testing.T) {
	t.Parallel()

	for _, op := range operations() {
		if !op.collection {
			continue
		}

		t.Run(op.name, func(t *testing.T) {
			t.Parallel()

			server := newTestServer(t, http.StatusOK, `{"other":[]}`)
			client := NewTestClient(server.URL, false)

			records, err := op.call(context.Background(), client, "abc")
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestCollections_StrictRequiresKey(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, `{}`)
	client := NewTestClient(server.URL, true)

	_, err := client.Teams().GetTeams(context.Background())

	var validationErr *clickup.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "teams", validationErr.Key)
	assert.Equal(t, "undefined", validationErr.Actual)
}

func TestTeams_EmptyCollection(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, `{"teams":[]}`)

	for _, strict := range []bool{false, true} {
		teams, err := NewTestClient(server.URL, strict).Teams().GetTeams(context.Background())
		require.NoError(t, err)
		assert.Empty(t, teams)
	}
}

func TestSpaces_WrongKindField(t *testing.T) {
	t.Parallel()

	body := `{"id":"790","name":"Eng","private":"yes","statuses":[],"multiple_assignees":false,` +
		`"features":{"due_dates":{"enabled":true,"start_date":false,"remap_due_dates":false,"remap_closed_due_date":false},` +
		`"time_tracking":{"enabled":false},"tags":{"enabled":false},"time_estimates":{"enabled":false},` +
		`"checklists":{"enabled":false},"custom_fields":{"enabled":false},"remap_dependencies":{"enabled":false},` +
		`"dependency_warning":{"enabled":false},"portfolios":{"enabled":false}}}`

	server := newTestServer(t, http.StatusOK, body)

	t.Run("lenient keeps the value", func(t *testing.T) {
		space, err := NewTestClient(server.URL, false).Spaces().GetSpace(context.Background(), "790")
		require.NoError(t, err)
		assert.False(t, space.Private)
		assert.JSONEq(t, `"yes"`, string(space.Extra["private"]))
	})

	t.Run("strict rejects it", func(t *testing.T) {
		_, err := NewTestClient(server.URL, true).Spaces().GetSpace(context.Background(), "790")

		var validationErr *clickup.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "private", validationErr.Key)
		assert.Equal(t, "$.private", validationErr.Path)
		assert.Equal(t, "boolean", validationErr.Expected)
		assert.Contains(t, err.Error(), "getting space")
	})
}

func TestFolders_GetFolderCarriesLists(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK,
		`{"id":"457","name":"Roadmap","hidden":false,"space":{"id":"789"},"task_count":"3",`+
			`"lists":[{"id":"l1","name":"Now","orderindex":0},{"id":"l2","name":"Later","orderindex":1}]}`)

	client := NewTestClient(server.URL, true)

	folder, err := client.Folders().GetFolder(context.Background(), "457")
	require.NoError(t, err)
	assert.Equal(t, "Roadmap", folder.Name)
	require.Len(t, folder.Lists, 2)
	assert.Equal(t, "Later", folder.Lists[1].Name)

	lists, err := client.Lists().GetLists(context.Background(), "457")
	require.NoError(t, err)
	assert.Equal(t, folder.Lists, lists)
}

func TestPaths_EscapeIDs(t *testing.T) {
	t.Parallel()

	server := newTestServer(t, http.StatusOK, `{"lists":[]}`)
	client := NewTestClient(server.URL, false)

	_, err := client.Lists().GetFolderlessLists(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/api/v2/space/a%2Fb%20c/list", <-server.paths)
}
