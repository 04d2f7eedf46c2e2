package tmdb

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingAPIKey is returned before any request when no key is configured
	ErrMissingAPIKey = errors.New("tmdb: api key is not configured")
	// ErrInvalidPage is returned for page numbers below 1
	ErrInvalidPage = errors.New("tmdb: page must be at least 1")
	// ErrUnknownSection is returned for a section kind without an endpoint
	ErrUnknownSection = errors.New("tmdb: unknown section")
)

// StatusError is a non-2xx response. Code and Message come from the TMDB
// error body when it could be decoded.
type StatusError struct {
	Path       string
	StatusCode int
	Code       int
	Message    string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "tmdb: HTTP status error"
	}
	msg := strings.TrimSpace(e.Message)
	if msg == "" {
		return fmt.Sprintf("tmdb: %s: HTTP %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("tmdb: %s: HTTP %d: %s (code %d)", e.Path, e.StatusCode, msg, e.Code)
}

// apiError is the body TMDB sends alongside error statuses
type apiError struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
