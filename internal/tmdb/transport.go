package tmdb

import (
	"errors"
	"net/http"
	"time"
)

const (
	defaultRetryMax = 1

	tlsHandshakeTimeout   = 10 * time.Second
	responseHeaderTimeout = 15 * time.Second
)

// Transport sets the client User-Agent, replacing any default an HTTP library
// put there, and retries idempotent requests that failed before any response
// arrived. HTTP error statuses are never retried.
type Transport struct {
	Base      http.RoundTripper
	UserAgent string

	// RetryMax is the number of retries after the first attempt
	RetryMax int
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if t.Base == nil {
		return nil, errors.New("nil base transport")
	}

	canRetry := (req.Method == http.MethodGet || req.Method == http.MethodHead) && req.Body == nil
	max := t.RetryMax
	if max < 0 || !canRetry {
		max = 0
	}

	var lastErr error
	for attempt := 0; attempt <= max; attempt++ {
		r := req.Clone(req.Context())
		if t.UserAgent != "" {
			r.Header.Set("User-Agent", t.UserAgent)
		}

		resp, err := t.Base.RoundTrip(r)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if req.Context().Err() != nil {
			return nil, lastErr
		}
	}
	return nil, lastErr
}

func newHTTPClient(userAgent string, timeout time.Duration) *http.Client {
	base := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ResponseHeaderTimeout: responseHeaderTimeout,
	}
	return &http.Client{
		Transport: &Transport{
			Base:      base,
			UserAgent: userAgent,
			RetryMax:  defaultRetryMax,
		},
		Timeout: timeout,
	}
}
