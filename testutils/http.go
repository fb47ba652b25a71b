package testutils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Roshick/go-autumn-extract/header"
)

type TestResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   any         `json:"body,omitempty"`
}

// MustParseResponse reads and closes the response body. JSON bodies are decoded into generic
// maps and slices, everything else is returned as a string.
func MustParseResponse(t *testing.T, res *http.Response) *TestResponse {
	t.Helper()

	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %s", err)
	}

	var parsedBody any
	switch {
	case strings.HasPrefix(res.Header.Get(header.ContentType), "application/json"):
		if innerErr := json.Unmarshal(body, &parsedBody); innerErr != nil {
			t.Fatalf("failed to parse response: %s", innerErr)
		}
	default:
		parsedBody = string(body)
	}

	return &TestResponse{
		Status: res.StatusCode,
		Header: res.Header,
		Body:   parsedBody,
	}
}
