// =============================================================================
// Greek CSV Viewer - Loader Module
// =============================================================================
//
// This module fetches the fixed-path CSV resource as raw bytes, decodes it
// from ISO-8859-7 into UTF-8 text and hands the text to the CSV parser.
//
// LOAD PIPELINE:
//   1. Fetch data.csv from the configured Source (file system or HTTP)
//   2. Decode the whole buffer with the ISO-8859-7 charmap
//   3. Parse the decoded text into records
//
// The source encoding is assumed, never sniffed.
//
// =============================================================================

package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/greek-csv-viewer/internal/csvparser"
)

// ErrNotFound is returned when the CSV resource does not exist.
var ErrNotFound = errors.New("csv resource not found")

// =============================================================================
// SOURCES
// =============================================================================

// Source retrieves the raw, still-encoded bytes of the CSV resource.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// FileSource reads a file from a file system, typically the static asset
// directory that also serves /data.csv.
type FileSource struct {
	FS   fs.FS
	Name string
}

// NewFileSource returns a FileSource for name inside fsys.
func NewFileSource(fsys fs.FS, name string) *FileSource {
	return &FileSource{FS: fsys, Name: name}
}

// Fetch reads the whole file.
func (s *FileSource) Fetch(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(s.FS, s.Name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Name)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Name, err)
	}

	return data, nil
}

// HTTPSource fetches the resource at BaseURL + "/" + Name.
type HTTPSource struct {
	Client  *http.Client
	BaseURL string
	Name    string
}

// NewHTTPSource returns an HTTPSource on the default transport. The request
// is bounded only by ctx.
func NewHTTPSource(baseURL, name string) *HTTPSource {
	return &HTTPSource{
		Client:  &http.Client{Transport: http.DefaultTransport},
		BaseURL: baseURL,
		Name:    name,
	}
}

// URL returns the absolute resource URL.
func (s *HTTPSource) URL() string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + strings.TrimLeft(s.Name, "/")
}

// Fetch performs a GET and returns the body bytes untouched.
func (s *HTTPSource) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", s.URL(), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.URL())
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %s", s.URL(), resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", s.URL(), err)
	}

	return data, nil
}

// =============================================================================
// DECODING
// =============================================================================

// Decode converts ISO-8859-7 bytes into a UTF-8 string.
// Every byte value has a mapping, so errors are only expected from the
// transformer itself.
func Decode(raw []byte) (string, error) {
	decoded, _, err := transform.Bytes(charmap.ISO8859_7.NewDecoder(), raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode ISO-8859-7: %w", err)
	}
	return string(decoded), nil
}

// =============================================================================
// LOADER
// =============================================================================

// Loader runs the fetch, decode and parse pipeline.
type Loader struct {
	source Source
	logger *slog.Logger
}

// New creates a Loader reading from source. A nil logger discards output.
func New(source Source, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{source: source, logger: logger}
}

// LoadWithID fetches, decodes and parses the resource. loadID is chosen by
// the caller and only tags log lines.
//
// RETURNS:
//   - The parse Result.
//   - An error wrapping the first failing step.
func (l *Loader) LoadWithID(ctx context.Context, loadID string) (*csvparser.Result, error) {
	logger := l.logger.With("load_id", loadID)
	start := time.Now()

	logger.Debug("fetching csv resource")
	raw, err := l.source.Fetch(ctx)
	if err != nil {
		logger.Error("fetch failed", "error", err)
		return nil, fmt.Errorf("fetch: %w", err)
	}

	text, err := Decode(raw)
	if err != nil {
		logger.Error("decode failed", "error", err)
		return nil, fmt.Errorf("decode: %w", err)
	}

	result, err := csvparser.Parse(text)
	if err != nil {
		logger.Error("parse failed", "error", err)
		return nil, fmt.Errorf("parse: %w", err)
	}

	if result.ExtraFields > 0 || result.PaddedRows > 0 {
		logger.Warn("ragged rows in csv",
			"extra_fields", result.ExtraFields,
			"padded_rows", result.PaddedRows)
	}

	logger.Info("csv loaded",
		"bytes", len(raw),
		"columns", len(result.Headers),
		"records", len(result.Records),
		"elapsed", time.Since(start))

	return result, nil
}
