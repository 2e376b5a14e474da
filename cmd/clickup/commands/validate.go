package commands

import (
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/spf13/cobra"
)

type normalizeFunc func(data []byte) ([]byte, error)

func strictRoundTrip[T any](parse func([]byte) (*T, error), serialize func(*T) ([]byte, error)) normalizeFunc {
	return func(data []byte) ([]byte, error) {
		record, err := parse(data)
		if err != nil {
			return nil, err
		}

		return serialize(record)
	}
}

var recordKinds = map[string]normalizeFunc{
	"team":   strictRoundTrip(clickup.ParseTeam, clickup.SerializeTeam),
	"space":  strictRoundTrip(clickup.ParseSpace, clickup.SerializeSpace),
	"folder": strictRoundTrip(clickup.ParseFolder, clickup.SerializeFolder),
	"list":   strictRoundTrip(clickup.ParseList, clickup.SerializeList),
	"task":   strictRoundTrip(clickup.ParseTask, clickup.SerializeTask),
	"view":   strictRoundTrip(clickup.ParseView, clickup.SerializeView),
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	kinds := slices.Sorted(maps.Keys(recordKinds))

	return &cobra.Command{
		Use:       "validate <" + strings.Join(kinds, "|") + "> <file|->",
		Short:     "Strictly validate a ClickUp JSON document",
		Long:      "Parse a JSON document against the record's shape and print its normalized form",
		Args:      cobra.ExactArgs(2),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			normalize, ok := recordKinds[args[0]]
			if !ok {
				return fmt.Errorf("%w: %s", clickup.ErrUnknownRecordKind, args[0])
			}

			data, err := readDocument(cmd.InOrStdin(), args[1])
			if err != nil {
				return err
			}

			out, err := normalize(data)
			if err != nil {
				return fmt.Errorf("validating %s: %w", args[0], err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return err
		},
	}
}

// readDocument reads path, or stdin when path is "-".
func readDocument(stdin io.Reader, path string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path) // #nosec G304 -- path is supplied by the user on purpose
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, constants.ErrNoInput
	}

	return data, nil
}
