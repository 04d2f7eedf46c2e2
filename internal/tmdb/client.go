package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/fabler/jetflix/internal/catalog"
	"github.com/fabler/jetflix/internal/ctxlog"
	"github.com/fabler/jetflix/internal/model"
)

const (
	DefaultBaseURL   = "https://api.themoviedb.org/3"
	DefaultTimeout   = 20 * time.Second
	DefaultUserAgent = "JetFlix"

	requestIDHeader = "X-Request-ID"
)

var sectionPaths = map[catalog.SectionKind]string{
	catalog.KindNowPlaying: "/movie/now_playing",
	catalog.KindTopRated:   "/movie/top_rated",
	catalog.KindPopular:    "/movie/popular",
	catalog.KindTrending:   "/trending/movie/week",
	catalog.KindUpcoming:   "/movie/upcoming",
}

// SectionPath returns the endpoint serving kind
func SectionPath(kind catalog.SectionKind) (string, bool) {
	p, ok := sectionPaths[kind]
	return p, ok
}

// Options configures a Client. Zero values fall back to the defaults.
type Options struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client talks to the TMDB API. It is safe for concurrent use.
type Client struct {
	apiKey string
	rc     *resty.Client
}

var _ catalog.Repository = (*Client)(nil)

// New creates a client
func New(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	rc := resty.NewWithClient(newHTTPClient(opts.UserAgent, opts.Timeout)).
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", opts.UserAgent)

	return &Client{
		apiKey: strings.TrimSpace(opts.APIKey),
		rc:     rc,
	}
}

// FetchSection returns one page of the listing behind kind
func (c *Client) FetchSection(ctx context.Context, kind catalog.SectionKind, language string, page int) ([]model.Movie, error) {
	path, ok := sectionPaths[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSection, kind)
	}
	if page < catalog.MinPage {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}

	var out model.MoviePage
	params := map[string]string{"page": strconv.Itoa(page)}
	if err := c.get(ctx, path, language, params, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// FetchMovie returns the details of one movie
func (c *Client) FetchMovie(ctx context.Context, id int64, language string) (model.Movie, error) {
	var out model.Movie
	path := "/movie/" + strconv.FormatInt(id, 10)
	if err := c.get(ctx, path, language, nil, &out); err != nil {
		return model.Movie{}, err
	}
	return out, nil
}

// Close releases idle connections
func (c *Client) Close() error {
	return c.rc.Close()
}

func (c *Client) get(ctx context.Context, path, language string, params map[string]string, out any) error {
	if c.apiKey == "" {
		return ErrMissingAPIKey
	}

	query := map[string]string{"api_key": c.apiKey}
	if language != "" {
		query["language"] = language
	}
	for k, v := range params {
		query[k] = v
	}

	requestID := uuid.NewString()
	logger := ctxlog.FromContext(ctx).With("path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.rc.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetQueryParams(query).
		SetResult(out).
		Get(path)
	if err != nil {
		logger.Debug("tmdb request failed", "error", err, "duration", time.Since(started))
		return fmt.Errorf("tmdb: get %s: %w", path, err)
	}
	logger.Debug("tmdb request done", "status", resp.StatusCode(), "duration", time.Since(started))

	if resp.IsError() {
		return statusError(path, resp.StatusCode(), resp.String())
	}
	return nil
}

func statusError(path string, status int, body string) error {
	e := &StatusError{Path: path, StatusCode: status}
	var apiErr apiError
	if json.Unmarshal([]byte(body), &apiErr) == nil {
		e.Code = apiErr.StatusCode
		e.Message = apiErr.StatusMessage
	}
	return e
}
