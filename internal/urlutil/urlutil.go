package urlutil

import (
	"errors"
	"net/url"
	"strings"
)

const articlePrefix = "/wiki/"

var errEmptyEndpoint = errors.New("empty api endpoint")

// PageFromHref converts an article href into a page reference by stripping
// everything up to and including the /wiki/ prefix.
func PageFromHref(href string) string {
	trimmed := strings.TrimSpace(href)

	idx := strings.Index(trimmed, articlePrefix)
	if idx < 0 {
		return trimmed
	}

	return trimmed[idx+len(articlePrefix):]
}

// NormalizePage returns the page title a reference points to. Percent-escapes
// are decoded once and any fragment is dropped.
func NormalizePage(page string) string {
	trimmed := strings.TrimSpace(page)
	if head, _, found := strings.Cut(trimmed, "#"); found {
		trimmed = head
	}

	unescaped, err := url.PathUnescape(trimmed)
	if err != nil {
		return trimmed
	}

	return unescaped
}

// ParseURL builds the MediaWiki parse API URL for page on endpoint.
func ParseURL(endpoint string, page string) (string, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		return "", errEmptyEndpoint
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", err
	}

	if !isSupportedScheme(parsed.Scheme) || parsed.Host == "" {
		return "", errors.New("api endpoint must be an absolute http(s) url")
	}

	query := url.Values{}
	query.Set("action", "parse")
	query.Set("prop", "text")
	query.Set("format", "json")
	query.Set("redirects", "true")
	query.Set("page", NormalizePage(page))

	parsed.RawQuery = query.Encode()
	parsed.Fragment = ""

	return parsed.String(), nil
}

func isSupportedScheme(scheme string) bool {
	return scheme == "http" || scheme == "https"
}
