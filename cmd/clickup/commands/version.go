package commands

import (
	"fmt"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the ClickUp CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			type VersionInfo struct {
				Version string `json:"version" yaml:"version"`
				Client  string `json:"client"  yaml:"client"`
				Commit  string `json:"commit"  yaml:"commit"`
				Built   string `json:"built"   yaml:"built"`
			}

			versionInfo := VersionInfo{
				Version: version,
				Client:  constants.Version,
				Commit:  commit,
				Built:   date,
			}

			w := cmd.OutOrStdout()

			switch configString("output") {
			case constants.OutputJSON:
				return StandardJSONRenderer(w, versionInfo)
			case constants.OutputYAML:
				return StandardYAMLRenderer(w, versionInfo)
			default:
				table := tablewriter.NewWriter(w)
				table.Header("Property", "Value")
				_ = table.Append("Version", version)
				_ = table.Append("Client", constants.Version)
				_ = table.Append("Commit", commit)
				_ = table.Append("Built", date)

				err := table.Render()
				if err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
