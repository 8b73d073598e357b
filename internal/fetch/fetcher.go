package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/sony/gobreaker"
)

const fetchTimeout = 60 * time.Second

// Options configures asset fetching.
type Options struct {
	DataDir      string // root of the sample data tree
	MaxSizeBytes int64  // maximum download size (0 = no limit)
}

// DefaultOptions returns sensible defaults for sample asset fetches.
func DefaultOptions() *Options {
	return &Options{
		DataDir:      "data",
		MaxSizeBytes: 50 * 1024 * 1024, // 50MB
	}
}

// Fetcher downloads sample assets. Requests go through a circuit breaker so
// repeated failures against a dead host trip fast instead of waiting out
// the full timeout every time.
type Fetcher struct {
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	options    *Options
}

// NewFetcher creates a fetcher with the given options.
func NewFetcher(options *Options) *Fetcher {
	if options == nil {
		options = DefaultOptions()
	}
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: fetchTimeout,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "asset-fetch",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
		options: options,
	}
}

// Fetch downloads one asset to its destination below the data dir. The
// destination directory is created if absent and an existing file is
// overwritten. The body is streamed to a temp file and renamed into place
// on success, so a failed fetch never leaves a truncated file under the
// final name.
func (f *Fetcher) Fetch(ctx context.Context, asset Asset) error {
	destPath := asset.DestPath(f.options.DataDir)

	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	body, err := f.get(ctx, asset.URL)
	if err != nil {
		return err
	}
	defer body.Close()

	tmpPath := destPath + ".partial"
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := f.copyCapped(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file: %w", err)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to move download into place: %w", err)
	}

	return nil
}

// FetchAll downloads the given assets in order, failing fast on the first
// error, and prints a line per completed asset.
func (f *Fetcher) FetchAll(ctx context.Context, assets []Asset) error {
	for _, asset := range assets {
		if err := f.Fetch(ctx, asset); err != nil {
			return fmt.Errorf("failed to fetch %s: %w", asset.Name, err)
		}
		fmt.Printf("Downloaded %s to %s\n", asset.Name, asset.DestPath(f.options.DataDir))
	}
	return nil
}

func (f *Fetcher) get(ctx context.Context, url string) (io.ReadCloser, error) {
	result, err := f.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := f.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("download failed: %w", err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("download failed: unexpected status %s", resp.Status)
		}
		return resp.Body, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(io.ReadCloser), nil
}

// copyCapped copies the body, enforcing the configured size limit.
func (f *Fetcher) copyCapped(dst io.Writer, src io.Reader) error {
	if f.options.MaxSizeBytes <= 0 {
		if _, err := io.Copy(dst, src); err != nil {
			return fmt.Errorf("failed to write file: %w", err)
		}
		return nil
	}

	written, err := io.CopyN(dst, src, f.options.MaxSizeBytes)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if written == f.options.MaxSizeBytes {
		// Try to read one more byte to see if the asset is larger.
		if _, err := src.Read(make([]byte, 1)); err != io.EOF {
			return fmt.Errorf("asset exceeds maximum size of %d bytes", f.options.MaxSizeBytes)
		}
	}
	return nil
}
