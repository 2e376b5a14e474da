package constants

import "time"

// Version is the client version reported in the default User-Agent and by
// the version command.
const Version = "0.1.0"

// API endpoint and paths.
const (
	// DefaultAPIEndpoint is the public ClickUp API host.
	DefaultAPIEndpoint = "https://api.clickup.com"

	// APIPathPrefix is prepended to every resource path.
	APIPathPrefix = "/api/v2"

	// DefaultUserAgent is sent when no User-Agent is configured.
	DefaultUserAgent = "clickup-client/" + Version
)

// Environment and configuration keys.
const (
	// EnvPrefix is the prefix viper uses for environment variables.
	EnvPrefix = "CLICKUP"

	// EnvToken holds the personal API token.
	EnvToken = "CLICKUP_TOKEN"

	// EnvAPI overrides the API endpoint.
	EnvAPI = "CLICKUP_API"

	// DotEnvFile is read from the working directory when present.
	DotEnvFile = ".env"
)

// HTTP timeouts.
const (
	// ShortHTTPTimeout bounds the live API calls made by the integration tests.
	ShortHTTPTimeout = 10 * time.Second
)

// Output formats.
const (
	OutputText  = "text"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
)

// JSON formatting.
const (
	// JSONIndent is used for pretty-printed JSON output.
	JSONIndent = "  "
)
