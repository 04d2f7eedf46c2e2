package platform

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
	"resty.dev/v3"
)

// Poster download defaults
const (
	DefaultMaxParallel  = 4
	DefaultFetchTimeout = 30 * time.Second
)

// Fetcher downloads the bytes behind url. It must honour ctx cancellation.
type Fetcher func(ctx context.Context, url string) ([]byte, error)

var posterClient = resty.New()

// FetchHTTP downloads url with a plain GET
func FetchHTTP(ctx context.Context, url string) ([]byte, error) {
	resp, err := posterClient.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode())
	}
	return []byte(resp.String()), nil
}

// PosterCache keeps downloaded images in a directory keyed by URL. Images
// never change for a given URL, so entries are never revalidated.
type PosterCache struct {
	dir     string
	fetch   Fetcher
	sem     *semaphore.Weighted
	timeout time.Duration
	logger  *slog.Logger
}

// NewPosterCache creates a cache in dir. The directory must exist.
// maxParallel <= 0 uses DefaultMaxParallel; a nil fetch uses FetchHTTP.
func NewPosterCache(dir string, maxParallel int, fetch Fetcher, logger *slog.Logger) *PosterCache {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallel
	}
	if fetch == nil {
		fetch = FetchHTTP
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PosterCache{
		dir:     dir,
		fetch:   fetch,
		sem:     semaphore.NewWeighted(int64(maxParallel)),
		timeout: DefaultFetchTimeout,
		logger:  logger,
	}
}

// SetTimeout bounds each load, including the wait for a download slot.
// Non-positive values restore DefaultFetchTimeout.
func (c *PosterCache) SetTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultFetchTimeout
	}
	c.timeout = d
}

// Load returns the image behind url, downloading it on a miss. Waiting for
// a slot and downloading share one deadline. Failing to write the cache file
// is logged and does not fail the load.
func (c *PosterCache) Load(url string) (fyne.Resource, error) {
	if url == "" {
		return nil, fmt.Errorf("poster url is empty")
	}
	name := c.fileName(url)
	file := filepath.Join(c.dir, name)

	if data, err := os.ReadFile(file); err == nil && len(data) > 0 {
		return fyne.NewStaticResource(name, data), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if err := c.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	data, err := c.fetch(ctx, url)
	c.sem.Release(1)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if err := c.store(file, data); err != nil {
		c.logger.Warn("poster not cached", "url", url, "error", err)
	}
	return fyne.NewStaticResource(name, data), nil
}

// Path returns the file an image for url is cached in
func (c *PosterCache) Path(url string) string {
	return filepath.Join(c.dir, c.fileName(url))
}

// fileName derives a stable name from url, keeping the image extension so
// Fyne can sniff the format
func (c *PosterCache) fileName(url string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(url)).String() + path.Ext(url)
}

func (c *PosterCache) store(file string, data []byte) error {
	tmp, err := os.CreateTemp(c.dir, ".poster-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Chmod(tmp.Name(), DefaultFilePermissions); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), file)
}
