package commands

import (
	"context"

	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/fivetwenty-io/clickup-client/pkg/cuclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configString reads key from flags or CLICKUP_* environment, falling back
// to the CLICKUP_-prefixed key a .env file provides.
func configString(key string) string {
	value := viper.GetString(key)
	if value != "" {
		return value
	}

	return viper.GetString("clickup_" + key)
}

func configBool(key string) bool {
	return viper.GetBool(key) || viper.GetBool("clickup_"+key)
}

// CreateClient builds a ClickUp client from the resolved configuration. A
// missing token fails before any transport is created.
func CreateClient(ctx context.Context, cmd *cobra.Command) (clickup.Client, error) {
	token := configString("token")
	if token == "" {
		return nil, clickup.ErrMissingCredential
	}

	verbose := configBool("verbose")

	config := &clickup.Config{
		APIEndpoint:      configString("api"),
		Token:            token,
		Debug:            verbose,
		StrictValidation: configBool("strict"),
		Logger:           NewLogger(LoggerConfig{Verbose: verbose, Output: cmd.ErrOrStderr()}),
	}

	return cuclient.New(ctx, config)
}
