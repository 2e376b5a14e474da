package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/clickup-client/internal/constants"
	"github.com/fivetwenty-io/clickup-client/internal/http"
	"github.com/fivetwenty-io/clickup-client/pkg/clickup"
)

// resource carries what every resource client shares: the transport and
// whether response bodies are validated before decoding.
type resource struct {
	httpClient *http.Client
	strict     bool
}

// apiPath joins escaped path segments under the API prefix.
func apiPath(segments ...string) string {
	path := constants.APIPathPrefix
	for _, segment := range segments {
		path += "/" + url.PathEscape(segment)
	}

	return path
}

// requireID rejects an empty identifier before any request is made.
func requireID(param, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", param, clickup.ErrIDRequired)
	}

	return nil
}

// fetchCollection fetches path and, in strict mode, checks that member key
// is an array of shape before returning the body.
func (r resource) fetchCollection(ctx context.Context, path, key string, shape *clickup.Shape) ([]byte, error) {
	body, err := r.httpClient.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	if r.strict {
		err = clickup.ValidateEnvelope(body, key, shape)
		if err != nil {
			return nil, err
		}
	}

	return body, nil
}

// fetchRecord fetches path and, in strict mode, checks the whole body
// against shape.
func (r resource) fetchRecord(ctx context.Context, path string, shape *clickup.Shape) ([]byte, error) {
	body, err := r.httpClient.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	if r.strict {
		err = clickup.ValidateJSON(body, shape)
		if err != nil {
			return nil, err
		}
	}

	return body, nil
}

// decode unmarshals body into v, reporting failures as *clickup.ParseError.
func decode(body []byte, resourceName string, v any) error {
	err := json.Unmarshal(body, v)
	if err != nil {
		return &clickup.ParseError{Resource: resourceName, Err: err}
	}

	return nil
}
