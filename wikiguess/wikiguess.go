// Package wikiguess extracts structured data from encyclopedia articles: the
// UN member-state listing and the grouped infobox of a country page.
package wikiguess

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"wikiguess/internal/config"
	"wikiguess/internal/fetcher"
	"wikiguess/internal/infobox"
	"wikiguess/internal/logging"
	"wikiguess/internal/parser"
	"wikiguess/internal/reshape"
)

// MemberStatesPage is the page listing the UN member states.
const MemberStatesPage = "Member_states_of_the_United_Nations"

// NoGroup labels infobox rows that no section header covers.
const NoGroup = infobox.NoGroup

// ListCountries fetches the member-state listing.
func ListCountries(ctx context.Context, opts Options) ([]Country, error) {
	content, err := fetchPage(ctx, opts, MemberStatesPage)
	if err != nil {
		return nil, err
	}

	return parser.ParseCountries([]byte(content))
}

// GetCountryInfo fetches page and returns its grouped infobox.
func GetCountryInfo(ctx context.Context, opts Options, page string) (InfoDocument, error) {
	content, err := fetchPage(ctx, opts, page)
	if err != nil {
		return InfoDocument{}, err
	}

	return NormalizeInfobox(content)
}

// NormalizeInfobox groups the infobox found in page markup. It performs no I/O.
func NormalizeInfobox(content string) (InfoDocument, error) {
	table, err := infobox.Normalize(content)
	if err != nil {
		return InfoDocument{}, err
	}

	return reshape.Reshape(table)
}

// Countries returns the member-state listing as JSON.
// The output always ends with a newline.
func Countries(ctx context.Context, opts Options) ([]byte, error) {
	countries, err := ListCountries(ctx, opts)
	if err != nil {
		return nil, err
	}

	return marshal(countries, opts.IndentJSON)
}

// CountryInfo returns the grouped infobox of page as JSON.
// The output always ends with a newline.
func CountryInfo(ctx context.Context, opts Options, page string) ([]byte, error) {
	doc, err := GetCountryInfo(ctx, opts, page)
	if err != nil {
		return nil, err
	}

	return marshal(doc, opts.IndentJSON)
}

func fetchPage(ctx context.Context, opts Options, page string) (string, error) {
	if opts.HTTPClient == nil {
		return "", errors.New("http client is required")
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = config.DefaultEndpoint
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = config.DefaultUserAgent
	}

	logger := logging.OrNop(opts.Logger)
	logger.Debug("retrieving page", zap.String("page", page))

	fetch := fetcher.New(opts.HTTPClient, endpoint, opts.Timeout, userAgent, logger)

	return fetch.FetchPage(ctx, page)
}

func marshal(value any, indent bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if indent {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}

	if err != nil {
		return nil, err
	}

	return ensureNewline(data), nil
}

func ensureNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] != '\n' {
		return append(data, '\n')
	}

	return data
}
