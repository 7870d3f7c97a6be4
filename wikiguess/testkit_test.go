package wikiguess

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (fn roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return fn(req) }

func readFixture(t *testing.T, parts ...string) []byte {
	t.Helper()

	path := filepath.Join(append([]string{"..", "testdata"}, parts...)...)
	b, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read fixture: %s", path)

	return b
}

// apiBody wraps page markup the way the MediaWiki parse API does.
func apiBody(t *testing.T, title string, html []byte) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"parse": map[string]any{
			"title": title,
			"text":  map[string]string{"*": string(html)},
		},
	})
	require.NoError(t, err)

	return body
}

// newWikiClient serves pages by title; unknown titles get the API error payload.
func newWikiClient(t *testing.T, pages map[string][]byte) *http.Client {
	t.Helper()

	return &http.Client{
		Transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			title := req.URL.Query().Get("page")

			html, ok := pages[title]
			if !ok {
				return responseWithBody(http.StatusOK, []byte(`{"error":{"code":"missingtitle","info":"The page you specified doesn't exist."}}`)), nil
			}

			return responseWithBody(http.StatusOK, apiBody(t, title, html)), nil
		}),
	}
}

func newStatusClient(status int) *http.Client {
	return &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return responseWithBody(status, []byte("upstream says no")), nil
		}),
	}
}

func responseWithBody(status int, body []byte) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func testOptions(client *http.Client) Options {
	return Options{
		Endpoint:   "https://en.wikipedia.org/w/api.php",
		Timeout:    time.Second,
		UserAgent:  "test-agent",
		HTTPClient: client,
	}
}
