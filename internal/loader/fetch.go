package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ErrEmptySource signals a document source with no location configured.
var ErrEmptySource = errors.New("empty document source")

// Fetcher reads JSON documents from http(s) URLs or local files.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher whose remote requests give up after timeout.
// A zero timeout means no limit.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// WithClient replaces the HTTP client.
func (f *Fetcher) WithClient(c *http.Client) *Fetcher {
	f.client = c
	return f
}

// FetchJSON decodes the document at src into v.
func (f *Fetcher) FetchJSON(ctx context.Context, src string, v any) error {
	if src == "" {
		return ErrEmptySource
	}

	body, err := f.open(ctx, src)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", src, err)
	}
	return nil
}

func (f *Fetcher) open(ctx context.Context, src string) (io.ReadCloser, error) {
	if !isRemote(src) {
		file, err := os.Open(filepath.Clean(src))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", src, err)
		}
		return file, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", src, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", src, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("get %s: unexpected status %d", src, resp.StatusCode)
	}
	return resp.Body, nil
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}
