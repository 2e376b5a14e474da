package client

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	internalhttp "github.com/fivetwenty-io/clickup-client/internal/http"
)

// testServer records the paths it was asked for and answers every request
// with status and body.
type testServer struct {
	*httptest.Server
	hits  atomic.Int32
	paths chan string
}

func newTestServer(t *testing.T, status int, body string) *testServer {
	t.Helper()

	ts := &testServer{paths: make(chan string, 16)}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.hits.Add(1)
		ts.paths <- r.URL.EscapedPath()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)

	return ts
}

// NewTestClient creates a new test client with the given base URL.
func NewTestClient(baseURL string, strict bool) *Client {
	client := &Client{httpClient: internalhttp.NewClient(baseURL, "test-token")}
	client.initializeResourceClients(strict)

	return client
}
