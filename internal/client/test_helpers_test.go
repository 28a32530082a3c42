package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/portalcx/portalcx-go/internal/auth"
	internalhttp "github.com/portalcx/portalcx-go/internal/http"
	"github.com/portalcx/portalcx-go/pkg/portalcx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTemplateID = "3fa85f64-5717-4562-b3fc-2c963f66afa6"

// recordedRequest captures what a test server received.
type recordedRequest struct {
	Method        string
	Path          string
	Query         map[string][]string
	Authorization string
	ContentType   string
	JSON          map[string]interface{}
	Form          map[string][]string
}

// newRecordingServer answers every request with status and body and records
// the decoded request.
func newRecordingServer(t *testing.T, status int, body string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	requests := &[]recordedRequest{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		recorded := recordedRequest{
			Method:        request.Method,
			Path:          request.URL.Path,
			Query:         request.URL.Query(),
			Authorization: request.Header.Get("Authorization"),
			ContentType:   request.Header.Get("Content-Type"),
		}

		if err := request.ParseMultipartForm(1 << 20); err == nil {
			recorded.Form = request.MultipartForm.Value
		} else if raw, err := io.ReadAll(request.Body); err == nil && len(raw) > 0 {
			_ = json.Unmarshal(raw, &recorded.JSON)
		}

		*requests = append(*requests, recorded)

		writer.WriteHeader(status)
		_, _ = io.WriteString(writer, body)
	}))
	t.Cleanup(server.Close)

	return server, requests
}

// newTestHTTPClient creates an internal HTTP client bound to session.
func newTestHTTPClient(baseURL string, session auth.CredentialSource) *internalhttp.Client {
	return internalhttp.NewClient(baseURL, session)
}

// newTestClient creates a facade against baseURL with a silent logger.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := NewWithSession(&portalcx.Config{
		BaseURL: baseURL,
		Logger:  portalcx.NopLogger{},
	}, auth.NewSession(""))
	require.NoError(t, err)

	return client
}

func assertSingleRequest(t *testing.T, requests *[]recordedRequest, method, path string) recordedRequest {
	t.Helper()

	require.Len(t, *requests, 1)

	recorded := (*requests)[0]
	assert.Equal(t, method, recorded.Method)
	assert.Equal(t, path, recorded.Path)

	return recorded
}
