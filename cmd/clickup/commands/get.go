package commands

import (
	"context"

	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command group
func NewGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Fetch ClickUp resources",
		Long:  "Fetch teams, spaces, folders, lists, tasks and views from the ClickUp API",
	}

	cmd.AddCommand(
		newGetCollectionCommand("teams", "List the teams (workspaces) you belong to", "", "teams",
			func(ctx context.Context, c clickup.Client, _ string) ([]clickup.Team, error) {
				return c.Teams().GetTeams(ctx)
			}),
		newGetCollectionCommand("spaces", "List the spaces of a team", "teamId", "spaces",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.Space, error) {
				return c.Spaces().GetSpaces(ctx, id)
			}),
		newGetRecordCommand("space", "Show a space", "spaceId", "space",
			func(ctx context.Context, c clickup.Client, id string) (*clickup.Space, error) {
				return c.Spaces().GetSpace(ctx, id)
			}),
		newGetCollectionCommand("folders", "List the folders of a space", "spaceId", "folders",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.Folder, error) {
				return c.Folders().GetFolders(ctx, id)
			}),
		newGetRecordCommand("folder", "Show a folder and its lists", "folderId", "folder",
			func(ctx context.Context, c clickup.Client, id string) (*clickup.Folder, error) {
				return c.Folders().GetFolder(ctx, id)
			}),
		newGetCollectionCommand("lists", "List the lists of a folder", "folderId", "lists",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.List, error) {
				return c.Lists().GetLists(ctx, id)
			}),
		newGetCollectionCommand("folderlessLists", "List the lists of a space that are not in a folder", "spaceId", "lists",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.List, error) {
				return c.Lists().GetFolderlessLists(ctx, id)
			}),
		newGetRecordCommand("list", "Show a list", "listId", "list",
			func(ctx context.Context, c clickup.Client, id string) (*clickup.List, error) {
				return c.Lists().GetList(ctx, id)
			}),
		newGetCollectionCommand("tasks", "List the tasks of a list", "listId", "tasks",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.Task, error) {
				return c.Tasks().GetTasks(ctx, id)
			}),
		newGetCollectionCommand("spaceViews", "List the views of a space", "spaceId", "views",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.View, error) {
				return c.Views().GetSpaceViews(ctx, id)
			}),
		newGetCollectionCommand("folderViews", "List the views of a folder", "folderId", "views",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.View, error) {
				return c.Views().GetFolderViews(ctx, id)
			}),
		newGetCollectionCommand("listViews", "List the views of a list", "listId", "views",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.View, error) {
				return c.Views().GetListViews(ctx, id)
			}),
		newGetCollectionCommand("listViewTasks", "List the tasks shown by a view", "viewId", "tasks",
			func(ctx context.Context, c clickup.Client, id string) ([]clickup.Task, error) {
				return c.Views().GetViewTasks(ctx, id)
			}),
		newGetRecordCommand("view", "Show a view", "viewId", "view",
			func(ctx context.Context, c clickup.Client, id string) (*clickup.View, error) {
				return c.Views().GetView(ctx, id)
			}),
	)

	return cmd
}

func newGetCollectionCommand[T clickup.Record](use, short, idFlag, resourceName string, fetch func(context.Context, clickup.Client, string) ([]T, error)) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx, cmd)
			if err != nil {
				return err
			}

			records, err := fetch(ctx, client, id)
			if err != nil {
				return err
			}

			return renderRecords(cmd.OutOrStdout(), resourceName, records)
		},
	}

	addIDFlag(cmd, idFlag, &id)

	return cmd
}

func newGetRecordCommand[T clickup.Record](use, short, idFlag, resourceName string, fetch func(context.Context, clickup.Client, string) (*T, error)) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx, cmd)
			if err != nil {
				return err
			}

			record, err := fetch(ctx, client, id)
			if err != nil {
				return err
			}

			return renderRecord(cmd.OutOrStdout(), resourceName, record)
		},
	}

	addIDFlag(cmd, idFlag, &id)

	return cmd
}

func addIDFlag(cmd *cobra.Command, name string, target *string) {
	if name == "" {
		return
	}

	cmd.Flags().StringVar(target, name, "", name+" of the parent resource")
	_ = cmd.MarkFlagRequired(name)
}
