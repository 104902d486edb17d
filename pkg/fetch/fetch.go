package fetch

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Options configures the fetch behavior
type Options struct {
	MaxBytes  int64         // Maximum body size in bytes (0 = no limit)
	Timeout   time.Duration // Request timeout
	UserAgent string        // User agent string
}

// DefaultOptions returns default fetch options
func DefaultOptions() Options {
	return Options{
		MaxBytes:  100 * 1024 * 1024, // 100MB default max
		Timeout:   2 * time.Minute,
		UserAgent: "FlowIQIngestAPI/1.0",
	}
}

// Result contains a fetched audio payload held in memory
type Result struct {
	Data          []byte // Raw body bytes
	ContentType   string // Content-Type from response
	ContentLength int64  // Size in bytes actually read
}

// Base64 returns the payload encoded for JSON transport to the
// transcription capability.
func (r *Result) Base64() string {
	return base64.StdEncoding.EncodeToString(r.Data)
}

// Fetcher downloads audio payloads into memory
type Fetcher struct {
	client  *http.Client
	options Options
}

// NewFetcher creates a new fetcher with the given options
func NewFetcher(options Options) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: options.Timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				DisableCompression:  true, // Don't compress audio
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		options: options,
	}
}

// Fetch GETs the URL and reads the full body into memory.
// Non-2xx responses and network errors are returned as errors; the caller
// decides whether a failed fetch aborts its flow.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.options.UserAgent)
	req.Header.Set("Accept", "audio/*,*/*")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	if f.options.MaxBytes > 0 && resp.ContentLength > f.options.MaxBytes {
		return nil, fmt.Errorf("file too large: %d bytes (max %d)", resp.ContentLength, f.options.MaxBytes)
	}

	reader := io.Reader(resp.Body)
	if f.options.MaxBytes > 0 {
		// +1 so an over-limit body is detectable after the read
		reader = io.LimitReader(reader, f.options.MaxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read body: %w", err)
	}

	if f.options.MaxBytes > 0 && int64(len(data)) > f.options.MaxBytes {
		return nil, fmt.Errorf("file too large: body exceeds %d bytes", f.options.MaxBytes)
	}

	return &Result{
		Data:          data,
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: int64(len(data)),
	}, nil
}
