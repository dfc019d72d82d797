// Package loader turns locations, byte streams and files into parsed
// document trees. Unreachable input is reported as an IO failure and input
// that does not parse as XML as a malformed document failure.
package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/mmcdole/gofeed"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/lysyi3m/podcast-comb/app/failure"
)

// Source is a parser-ready input. Reader wins over SystemID; a Source with
// only a SystemID is loaded like a location. Encoding, when set, overrides
// the encoding declared in the document.
type Source struct {
	Reader   io.Reader
	Encoding string
	SystemID string
}

type Loader struct {
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

func New(httpClient *http.Client, userAgent string, timeout time.Duration) *Loader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Loader{
		httpClient: httpClient,
		userAgent:  userAgent,
		timeout:    timeout,
	}
}

// Location loads an http(s) URL, a file:// URL or a filesystem path.
func (l *Loader) Location(ctx context.Context, location string) (*etree.Document, error) {
	return l.location(ctx, location, "")
}

func (l *Loader) Reader(r io.Reader) (*etree.Document, error) {
	if r == nil {
		return nil, failure.InvalidArgument("", "reader is nil")
	}
	return l.read(r, "", "")
}

func (l *Loader) ReaderWithEncoding(r io.Reader, encoding string) (*etree.Document, error) {
	if r == nil {
		return nil, failure.InvalidArgument("", "reader is nil")
	}
	if strings.TrimSpace(encoding) == "" {
		return nil, failure.InvalidArgument("", "encoding is empty")
	}
	return l.read(r, encoding, "")
}

// File reads f from its current offset. The caller keeps ownership of f.
func (l *Loader) File(f *os.File) (*etree.Document, error) {
	if f == nil {
		return nil, failure.InvalidArgument("", "file is nil")
	}
	return l.read(f, "", f.Name())
}

func (l *Loader) Source(ctx context.Context, src *Source) (*etree.Document, error) {
	if src == nil {
		return nil, failure.InvalidArgument("", "source is nil")
	}
	if src.Reader != nil {
		return l.read(src.Reader, src.Encoding, src.SystemID)
	}
	if strings.TrimSpace(src.SystemID) == "" {
		return nil, failure.InvalidArgument("", "source has neither reader nor system id")
	}
	return l.location(ctx, src.SystemID, src.Encoding)
}

func (l *Loader) location(ctx context.Context, location, encoding string) (*etree.Document, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, failure.InvalidArgument("", "location is empty")
	}

	u, err := url.Parse(location)
	if err == nil {
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l.fetch(ctx, location, encoding)
		case "file":
			return l.open(u.Path, encoding)
		}
	}
	return l.open(location, encoding)
}

func (l *Loader) open(path, encoding string) (*etree.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, failure.IO("", path, fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	return l.read(f, encoding, path)
}

func (l *Loader) fetch(ctx context.Context, location, encoding string) (*etree.Document, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if l.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, "GET", location, nil)
	if err != nil {
		return nil, failure.IO("", location, fmt.Errorf("failed to create request: %w", err))
	}

	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, failure.IO("", location, fmt.Errorf("failed to fetch document: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, failure.IO("", location, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status))
	}

	slog.Debug("Fetched document", "location", location, "content_type", resp.Header.Get("Content-Type"))

	return l.read(resp.Body, encoding, location)
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func (l *Loader) read(r io.Reader, encoding, systemID string) (*etree.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, failure.IO("", systemID, fmt.Errorf("failed to read document: %w", err))
	}

	if encoding != "" {
		enc, err := htmlindex.Get(encoding)
		if err != nil {
			return nil, failure.IO("", systemID, fmt.Errorf("unsupported encoding %q: %w", encoding, err))
		}
		data, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, failure.IO("", systemID, fmt.Errorf("failed to decode %s input: %w", encoding, err))
		}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	if gofeed.DetectFeedType(bytes.NewReader(data)) == gofeed.FeedTypeJSON {
		return nil, failure.Malformed("", systemID, errors.New("JSON feeds are not XML documents"))
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charsetReader(encoding != "")
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, failure.Malformed("", systemID, fmt.Errorf("failed to parse document: %w", err))
	}
	if doc.Root() == nil {
		return nil, failure.Malformed("", systemID, errors.New("document has no root element"))
	}

	return doc, nil
}

// charsetReader honours the encoding named in the XML declaration. Input
// already decoded from a caller-declared encoding is passed through as is.
func charsetReader(decoded bool) func(string, io.Reader) (io.Reader, error) {
	return func(label string, input io.Reader) (io.Reader, error) {
		if decoded {
			return input, nil
		}
		enc, err := htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("unsupported encoding %q: %w", label, err)
		}
		return enc.NewDecoder().Reader(input), nil
	}
}
