package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fivetwenty-io/clickup-client/cmd/clickup/commands"
	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clickup",
		Short: "ClickUp API v2 CLI",
		Long: `A read-only command-line interface for the ClickUp API v2.

Walks the hierarchy of teams, spaces, folders, lists and tasks, plus views.
The API token is read from --token, CLICKUP_TOKEN or a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("output", "o", constants.OutputText, "output format (text, json, yaml, table)")
	rootCmd.PersistentFlags().String("api", "", "API endpoint URL (default "+constants.DefaultAPIEndpoint+")")
	rootCmd.PersistentFlags().StringP("token", "t", "", "ClickUp API token")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log HTTP requests to stderr")
	rootCmd.PersistentFlags().Bool("strict", false, "validate API responses against the record shapes")

	// Bind flags to viper
	for _, name := range []string{"output", "api", "token", "verbose", "strict"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewGetCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())

	return rootCmd
}

// initConfig reads CLICKUP_* environment variables and, when present, a
// .env file in the working directory.
func initConfig() error {
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.AutomaticEnv()

	viper.SetConfigFile(constants.DotEnvFile)
	viper.SetConfigType("env")

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", constants.DotEnvFile, err)
	}

	return nil
}

func main() {
	err := initConfig()
	if err == nil {
		err = newRootCommand().Execute()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
