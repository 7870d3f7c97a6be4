package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"wikiguess/internal/logging"
	"wikiguess/internal/urlutil"
	"wikiguess/internal/wikierr"
)

var errInvalidRequest = errors.New("invalid request")

// parseResponse is the subset of the MediaWiki action=parse payload we read.
type parseResponse struct {
	Parse *struct {
		Title string `json:"title"`
		Text  *struct {
			HTML *string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Fetcher resolves page references to rendered HTML through the MediaWiki API.
// Every call performs exactly one request; nothing is retried.
type Fetcher struct {
	client    *http.Client
	endpoint  string
	timeout   time.Duration
	userAgent string
	logger    *zap.Logger
}

// New creates a Fetcher with the provided configuration.
func New(
	client *http.Client,
	endpoint string,
	timeout time.Duration,
	userAgent string,
	logger *zap.Logger,
) *Fetcher {
	return &Fetcher{
		client:    client,
		endpoint:  endpoint,
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logging.OrNop(logger),
	}
}

// FetchPage returns the rendered HTML of page.
// A 404 or an API-level error yields wikierr.ErrNotFound, a 500 yields
// wikierr.ErrRemoteServer and any other non-200 status wikierr.ErrUnhandledFetch.
func (f *Fetcher) FetchPage(ctx context.Context, page string) (string, error) {
	if strings.TrimSpace(page) == "" {
		return "", fmt.Errorf("%w: empty page reference", wikierr.ErrNotFound)
	}

	apiURL, err := urlutil.ParseURL(f.endpoint, page)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	statusCode, body, err := f.doRequest(ctx, apiURL)
	if err != nil {
		return "", err
	}

	f.logger.Debug("api response",
		zap.String("url", apiURL),
		zap.Int("status", statusCode),
		zap.Int("bytes", len(body)),
	)

	if err := errorForStatus(statusCode, apiURL); err != nil {
		return "", err
	}

	return decodePage(body, page)
}

func (f *Fetcher) doRequest(ctx context.Context, apiURL string) (int, []byte, error) {
	requestCtx := ctx
	var cancel context.CancelFunc
	if f.timeout > 0 {
		requestCtx, cancel = context.WithTimeout(ctx, f.timeout)
	}
	if cancel != nil {
		defer cancel()
	}

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, apiURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", errInvalidRequest, err)
	}

	request.Header.Set("Accept", "application/json")
	if f.userAgent != "" {
		request.Header.Set("User-Agent", f.userAgent)
	}

	response, err := f.client.Do(request)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		_ = response.Body.Close()
	}()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, nil, fmt.Errorf("read body: %w", err)
	}

	return response.StatusCode, body, nil
}

func errorForStatus(statusCode int, apiURL string) error {
	switch {
	case statusCode == http.StatusOK:
		return nil
	case statusCode == http.StatusNotFound:
		return fmt.Errorf("%w: api endpoint %s", wikierr.ErrNotFound, apiURL)
	case statusCode == http.StatusInternalServerError:
		return fmt.Errorf("%w: api endpoint %s", wikierr.ErrRemoteServer, apiURL)
	default:
		return fmt.Errorf("%w: api endpoint %s answered %s", wikierr.ErrUnhandledFetch, apiURL, statusText(statusCode))
	}
}

func decodePage(body []byte, page string) (string, error) {
	var payload parseResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: decode api response for %q: %v", wikierr.ErrMalformedPage, page, err)
	}

	if payload.Error != nil {
		return "", fmt.Errorf("%w: page %q (%s)", wikierr.ErrNotFound, page, payload.Error.Code)
	}

	if payload.Parse == nil || payload.Parse.Text == nil || payload.Parse.Text.HTML == nil {
		return "", fmt.Errorf("%w: api response for %q has no page text", wikierr.ErrMalformedPage, page)
	}

	return *payload.Parse.Text.HTML, nil
}

func statusText(statusCode int) string {
	text := http.StatusText(statusCode)
	if text == "" {
		return fmt.Sprintf("http status %d", statusCode)
	}

	return fmt.Sprintf("%d %s", statusCode, text)
}
