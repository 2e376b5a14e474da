package constants

import "errors"

// CLI errors.
var (
	ErrNoInput = errors.New("no input document provided")
)
