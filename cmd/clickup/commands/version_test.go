package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.Equal(t, "Display version information", cmd.Short)
	assert.NotNil(t, cmd.RunE)
}

func TestVersionCommand_Table(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	var buf bytes.Buffer

	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
	assert.Contains(t, buf.String(), "abc123")
	assert.Contains(t, buf.String(), constants.Version)
}

func TestVersionCommand_JSON(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("output", constants.OutputJSON)

	var buf bytes.Buffer

	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var info map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &info))
	assert.Equal(t, "1.2.3", info["version"])
	assert.Equal(t, constants.Version, info["client"])
	assert.Equal(t, "2026-01-01", info["built"])
}
