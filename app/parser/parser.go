// Package parser maps podcast feed documents onto the model. Every entry
// point obtains a document tree in its own way and then runs the same
// mapping over it.
package parser

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/beevik/etree"

	"github.com/lysyi3m/podcast-comb/app/failure"
	"github.com/lysyi3m/podcast-comb/app/loader"
	"github.com/lysyi3m/podcast-comb/app/model"
)

const (
	OpParseLocation           = "ParseLocation"
	OpParseReader             = "ParseReader"
	OpParseReaderWithEncoding = "ParseReaderWithEncoding"
	OpParseFile               = "ParseFile"
	OpParseSource             = "ParseSource"
	OpParseDocument           = "ParseDocument"
)

// Ops lists every entry point in declaration order.
var Ops = []string{
	OpParseLocation,
	OpParseReader,
	OpParseReaderWithEncoding,
	OpParseFile,
	OpParseSource,
	OpParseDocument,
}

var declaredFailures = map[string][]failure.Kind{
	OpParseLocation:           {failure.KindIO, failure.KindMalformedDocument},
	OpParseReader:             {failure.KindIO, failure.KindMalformedDocument},
	OpParseReaderWithEncoding: {failure.KindIO, failure.KindMalformedDocument},
	OpParseFile:               {failure.KindIO, failure.KindMalformedDocument},
	OpParseSource:             {failure.KindIO, failure.KindMalformedDocument},
	OpParseDocument:           {failure.KindIO, failure.KindMalformedDocument},
}

// DeclaredFailures returns the failure kinds an entry point documents
// besides InvalidArgument and MissingRequiredField, which every entry
// point can return.
func DeclaredFailures(op string) []failure.Kind {
	kinds := declaredFailures[op]
	out := make([]failure.Kind, len(kinds))
	copy(out, kinds)
	return out
}

type Parser struct {
	loader *loader.Loader
}

func New(l *loader.Loader) *Parser {
	if l == nil {
		l = loader.New(nil, "", 0)
	}
	return &Parser{loader: l}
}

// ParseLocation loads an http(s) URL, a file:// URL or a path.
func (p *Parser) ParseLocation(ctx context.Context, location string) (*model.Podcast, error) {
	if strings.TrimSpace(location) == "" {
		return nil, failure.InvalidArgument(OpParseLocation, "location is empty")
	}
	doc, err := p.loader.Location(ctx, location)
	if err != nil {
		return nil, failure.WithOp(err, OpParseLocation)
	}
	return p.parse(OpParseLocation, doc)
}

func (p *Parser) ParseReader(r io.Reader) (*model.Podcast, error) {
	if r == nil {
		return nil, failure.InvalidArgument(OpParseReader, "reader is nil")
	}
	doc, err := p.loader.Reader(r)
	if err != nil {
		return nil, failure.WithOp(err, OpParseReader)
	}
	return p.parse(OpParseReader, doc)
}

// ParseReaderWithEncoding decodes r with the named encoding regardless of
// what the document declares.
func (p *Parser) ParseReaderWithEncoding(r io.Reader, encoding string) (*model.Podcast, error) {
	if r == nil {
		return nil, failure.InvalidArgument(OpParseReaderWithEncoding, "reader is nil")
	}
	if strings.TrimSpace(encoding) == "" {
		return nil, failure.InvalidArgument(OpParseReaderWithEncoding, "encoding is empty")
	}
	doc, err := p.loader.ReaderWithEncoding(r, encoding)
	if err != nil {
		return nil, failure.WithOp(err, OpParseReaderWithEncoding)
	}
	return p.parse(OpParseReaderWithEncoding, doc)
}

// ParseFile reads an already opened file; closing it is up to the caller.
func (p *Parser) ParseFile(f *os.File) (*model.Podcast, error) {
	if f == nil {
		return nil, failure.InvalidArgument(OpParseFile, "file is nil")
	}
	doc, err := p.loader.File(f)
	if err != nil {
		return nil, failure.WithOp(err, OpParseFile)
	}
	return p.parse(OpParseFile, doc)
}

func (p *Parser) ParseSource(ctx context.Context, src *loader.Source) (*model.Podcast, error) {
	if src == nil {
		return nil, failure.InvalidArgument(OpParseSource, "source is nil")
	}
	if src.Reader == nil && strings.TrimSpace(src.SystemID) == "" {
		return nil, failure.InvalidArgument(OpParseSource, "source has neither reader nor system id")
	}
	doc, err := p.loader.Source(ctx, src)
	if err != nil {
		return nil, failure.WithOp(err, OpParseSource)
	}
	return p.parse(OpParseSource, doc)
}

// ParseDocument maps a tree that was parsed elsewhere. It does no I/O.
func (p *Parser) ParseDocument(doc *etree.Document) (*model.Podcast, error) {
	if doc == nil {
		return nil, failure.InvalidArgument(OpParseDocument, "document is nil")
	}
	return p.parse(OpParseDocument, doc)
}

func (p *Parser) parse(op string, doc *etree.Document) (*model.Podcast, error) {
	podcast, err := mapDocument(doc)
	if err != nil {
		return nil, failure.WithOp(err, op)
	}

	slog.Debug("Parsed podcast", "op", op, "podcast", podcast.Title(), "episodes", podcast.Episodes().Len())

	return podcast, nil
}
