// Package fetch reads the text textstat analyzes;
// handles retrieving content from local files, standard input and URLs.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Size limits to prevent memory overload; analysis is not streamed
const (
	MaxFileSizeBytes = 50 * 1024 * 1024  // 50MB limit for files and stdin
	MaxHTTPSizeBytes = 100 * 1024 * 1024 // 100MB limit for HTTP content (may not have Content-Length)
)

// HTTPRequestTimeout bounds a whole HTTP fetch.
const HTTPRequestTimeout = 30 * time.Second

// specific timeout thresholds (based on HTTPRequestTimeout)
var (
	HTTPDialTimeout           = HTTPRequestTimeout / 6 // ~17%, max time to wait for network connection
	HTTPTLSTimeout            = HTTPRequestTimeout / 6 // ~17%, max time to wait for TLS handshake
	HTTPResponseHeaderTimeout = HTTPRequestTimeout / 2 // 50%, max time for response headers (usually the longest phase)
)

// ErrInvalidUTF8 is returned when content is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// utf8BOM is stripped from the start of decoded text
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Content is an open source of text.
type Content struct {
	io.ReadCloser
	Source string // source as given by the caller ("-" for stdin)
	HTML   bool   // true when the source announces itself as HTML
}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

// Read allows exactly N bytes; content ending at the limit is not an error.
func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		var next [1]byte
		m, readErr := l.ReadCloser.Read(next[:])
		if m > 0 {
			return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
		}
		return 0, readErr
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// httpClient is a shared HTTP client with appropriate timeouts to prevent indefinite hangs.
var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: HTTPDialTimeout,
		}).DialContext,
		TLSHandshakeTimeout:   HTTPTLSTimeout,
		ResponseHeaderTimeout: HTTPResponseHeaderTimeout,
		DisableKeepAlives:     true,
	},
}

// GetContent opens a source for reading. It supports three types of sources:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are fetched via HTTP
//   - everything else is treated as a local file path
//
// The caller must Close the returned Content.
func GetContent(ctx context.Context, source string) (*Content, error) {
	switch {
	case source == "-":
		// stdin is not closed by Close; the process still owns it
		return &Content{
			ReadCloser: &limitedReadCloser{
				ReadCloser: io.NopCloser(os.Stdin),
				N:          MaxFileSizeBytes,
				source:     "stdin",
			},
			Source: source,
		}, nil
	case IsURL(source):
		return fetchURL(ctx, source)
	default:
		return fetchFile(ctx, source)
	}
}

// IsURL reports whether source is fetched over HTTP.
func IsURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// ReadText reads all of r and decodes it as UTF-8. A leading byte order mark
// is dropped. Read failures are wrapped; undecodable bytes yield an error
// wrapping ErrInvalidUTF8.
func ReadText(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read content: %w", err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: invalid byte at offset %d", ErrInvalidUTF8, firstInvalid(data))
	}

	slog.Debug("Content decoded", "bytes", len(data))
	return string(data), nil
}

// firstInvalid returns the offset of the first byte that does not start a valid rune.
func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// fetchURL retrieves content from an HTTP or HTTPS URL using a client with timeout configuration
func fetchURL(ctx context.Context, url string) (*Content, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "textstat/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	// check content-length header if present to prevent memory overload
	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil {
			if size > MaxHTTPSizeBytes {
				resp.Body.Close()
				return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)",
					size, MaxHTTPSizeBytes)
			}
		}
	}

	html := isHTMLMediaType(resp.Header.Get("Content-Type"))
	slog.Debug("Fetched URL", "url", url, "status", resp.StatusCode, "html", html)

	return &Content{
		ReadCloser: &limitedReadCloser{
			ReadCloser: resp.Body,
			N:          MaxHTTPSizeBytes,
			source:     url,
		},
		Source: url,
		HTML:   html,
	}, nil
}

// fetchFile opens a local file for reading with better error messages
// ctx is accepted for API consistency but not actually used for local file operations
func fetchFile(_ context.Context, path string) (*Content, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}

	// check file size before opening to prevent memory overload
	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}

	return &Content{
		ReadCloser: file,
		Source:     path,
		HTML:       isHTMLExtension(path),
	}, nil
}

func isHTMLMediaType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "text/html" || mediaType == "application/xhtml+xml"
}

func isHTMLExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}
