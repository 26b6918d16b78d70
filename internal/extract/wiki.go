package extract

import (
	"compress/bzip2"
	"context"
	"encoding/xml"
	"io"
	"log/slog"
	"os"
	"strings"

	"zhwordvec/internal/domain"
)

// WikiExtractor streams articles out of a MediaWiki pages-articles dump,
// optionally bz2-compressed. Only namespace-0, non-redirect pages are
// kept; wikitext markup is stripped so each record is plain article text.
type WikiExtractor struct {
	log *slog.Logger
}

func NewWiki(log *slog.Logger) *WikiExtractor {
	return &WikiExtractor{log: log}
}

func (e *WikiExtractor) Extract(ctx context.Context, src domain.Source) (domain.RecordIterator, error) {
	f, err := os.Open(src.ArchivePath)
	if err != nil {
		return nil, &domain.ExtractionError{Path: src.ArchivePath, Err: err}
	}
	var r io.Reader = f
	if src.Archive == domain.ArchiveBz2 {
		r = bzip2.NewReader(f)
	}
	e.log.Info("reading wiki dump", "path", src.ArchivePath)
	return &wikiIterator{ctx: ctx, f: f, dec: xml.NewDecoder(r), path: src.ArchivePath}, nil
}

type wikiPage struct {
	Title    string    `xml:"title"`
	Ns       int       `xml:"ns"`
	Redirect *struct{} `xml:"redirect"`
	Text     string    `xml:"revision>text"`
}

type wikiIterator struct {
	ctx  context.Context
	f    *os.File
	dec  *xml.Decoder
	path string
}

func (it *wikiIterator) Next() (string, error) {
	for {
		if err := it.ctx.Err(); err != nil {
			return "", err
		}
		tok, err := it.dec.Token()
		if err == io.EOF {
			return "", io.EOF
		}
		if err != nil {
			return "", &domain.ExtractionError{Path: it.path, Err: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}
		var page wikiPage
		if err := it.dec.DecodeElement(&page, &start); err != nil {
			return "", &domain.ExtractionError{Path: it.path, Err: err}
		}
		if page.Ns != 0 || page.Redirect != nil {
			continue
		}
		text := StripWikitext(page.Text)
		if strings.TrimSpace(text) == "" {
			continue
		}
		return text, nil
	}
}

func (it *wikiIterator) Close() error { return it.f.Close() }
