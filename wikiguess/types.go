package wikiguess

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"wikiguess/internal/parser"
	"wikiguess/internal/reshape"
	"wikiguess/internal/wikierr"
)

// Error classes returned by the package. Test with errors.Is.
var (
	ErrNotFound       = wikierr.ErrNotFound
	ErrRemoteServer   = wikierr.ErrRemoteServer
	ErrUnhandledFetch = wikierr.ErrUnhandledFetch
	ErrMalformedPage  = wikierr.ErrMalformedPage
)

// Options configures page retrieval.
// Endpoint is the MediaWiki api.php URL; empty means English Wikipedia.
// Timeout bounds each request. IndentJSON affects formatting only.
// Logger may be nil.
type Options struct {
	Endpoint   string
	Timeout    time.Duration
	UserAgent  string
	IndentJSON bool
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// Country is one UN member state and the page reference of its article.
type Country = parser.Country

// InfoDocument is the grouped infobox of a page. It marshals to a JSON
// object mapping group names to lists of {"Property", "Value"} records.
type InfoDocument = reshape.Document

// InfoGroup is one group of an InfoDocument.
type InfoGroup = reshape.Group

// InfoRecord is one property of an InfoGroup.
type InfoRecord = reshape.Record
