package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const defaultYAMLIndent = 2

// renderRecords writes records in the configured output format. JSON and
// YAML print the whole collection as one document.
func renderRecords[T clickup.Record](w io.Writer, resourceName string, records []T) error {
	if records == nil {
		records = []T{}
	}

	switch configString("output") {
	case constants.OutputJSON:
		return StandardJSONRenderer(w, records)
	case constants.OutputYAML:
		return StandardYAMLRenderer(w, records)
	case constants.OutputTable:
		return renderTable(w, resourceName, records)
	default:
		for _, record := range records {
			_, err := fmt.Fprintf(w, "%s %s\n", record.RecordID(), record.RecordName())
			if err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}

		return nil
	}
}

// renderRecord writes a single record in the configured output format.
func renderRecord[T clickup.Record](w io.Writer, resourceName string, record *T) error {
	switch configString("output") {
	case constants.OutputJSON:
		return StandardJSONRenderer(w, record)
	case constants.OutputYAML:
		return StandardYAMLRenderer(w, record)
	default:
		return renderRecords(w, resourceName, []T{*record})
	}
}

func renderTable[T clickup.Record](w io.Writer, resourceName string, records []T) error {
	if len(records) == 0 {
		_, err := fmt.Fprintf(w, "No %s found\n", resourceName)

		return err
	}

	upper := cases.Upper(language.English)

	table := tablewriter.NewWriter(w)
	table.Header(upper.String("id"), upper.String("name"))

	for _, record := range records {
		_ = table.Append(record.RecordID(), record.RecordName())
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", constants.JSONIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML. Data goes through its JSON
// encoding first so that member names and pass-through fields match -o json.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	plain, err := toPlain(data)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(defaultYAMLIndent)

	err = encoder.Encode(plain)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

// toPlain converts data to maps, slices and scalars via its JSON encoding.
func toPlain(data any) (any, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encoding data to JSON: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(encoded))
	decoder.UseNumber()

	var plain any

	err = decoder.Decode(&plain)
	if err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	return normalizeNumbers(plain), nil
}

func normalizeNumbers(value any) any {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case map[string]any:
		for key, item := range v {
			v[key] = normalizeNumbers(item)
		}

		return v
	case []any:
		for i, item := range v {
			v[i] = normalizeNumbers(item)
		}

		return v
	default:
		return v
	}
}
