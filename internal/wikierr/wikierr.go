// Package wikierr defines the error classes shared by the fetch and parse layers.
package wikierr

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound reports that the requested page or table does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRemoteServer reports an upstream server failure (HTTP 500).
	ErrRemoteServer = errors.New("remote server error")
	// ErrUnhandledFetch reports any other unexpected upstream status.
	ErrUnhandledFetch = errors.New("unhandled fetch error")
	// ErrMalformedPage reports that an expected table, caption or row structure is absent.
	ErrMalformedPage = errors.New("malformed page")
)

// StatusCode maps an error to the HTTP status a boundary layer should answer with.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrRemoteServer),
		errors.Is(err, ErrUnhandledFetch),
		errors.Is(err, ErrMalformedPage):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
