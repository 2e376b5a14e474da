package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCommand(t *testing.T) {
	t.Cleanup(viper.Reset)

	cmd := newRootCommand()
	assert.Equal(t, "clickup", cmd.Use)
	assert.True(t, cmd.SilenceUsage)

	names := make([]string, 0, len(cmd.Commands()))
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}

	assert.ElementsMatch(t, []string{"version", "get", "validate"}, names)

	output := cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
	assert.Equal(t, "text", output.DefValue)

	for _, name := range []string{"api", "token", "verbose", "strict"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInitConfig_DotEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CLICKUP_TOKEN=pk_dotenv\nCLICKUP_API=http://localhost:9999\n"), 0o600))
	t.Chdir(dir)

	require.NoError(t, initConfig())
	assert.Equal(t, "pk_dotenv", viper.GetString("clickup_token"))
	assert.Equal(t, "http://localhost:9999", viper.GetString("clickup_api"))
}

func TestInitConfig_MissingDotEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())

	require.NoError(t, initConfig())
}

func TestInitConfig_Environment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("CLICKUP_TOKEN", "pk_env")

	require.NoError(t, initConfig())
	assert.Equal(t, "pk_env", viper.GetString("token"))
}

func TestRootCommand_FlagOverridesEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(t.TempDir())
	t.Setenv("CLICKUP_OUTPUT", "yaml")

	require.NoError(t, initConfig())

	cmd := newRootCommand()
	require.NoError(t, cmd.PersistentFlags().Set("output", "json"))
	assert.Equal(t, "json", viper.GetString("output"))
}
