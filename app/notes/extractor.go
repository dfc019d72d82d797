// Package notes turns HTML show notes into plain text.
package notes

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Run extracts the readable text of an HTML fragment. Short fragments that
// readability gives up on are flattened with goquery instead.
func (e *Extractor) Run(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", fmt.Errorf("HTML data is empty")
	}

	article, err := readability.FromReader(strings.NewReader(html), nil)
	if err == nil {
		if text := collapse(article.TextContent); text != "" {
			slog.Debug("Notes extracted", "title", article.Title, "length", len(text))
			return text, nil
		}
	} else {
		slog.Debug("Readability failed, flattening notes", "error", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	text := collapse(doc.Text())
	if text == "" {
		return "", fmt.Errorf("no text extracted from HTML data")
	}

	return text, nil
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
