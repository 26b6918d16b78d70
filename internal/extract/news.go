package extract

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"zhwordvec/internal/domain"
)

// NewsExtractor unpacks the news2016zh zip archive and streams the
// "content" field of each JSON-lines record. Individually malformed
// lines are logged and skipped; read failures abort.
type NewsExtractor struct {
	log *slog.Logger
}

func NewNews(log *slog.Logger) *NewsExtractor {
	return &NewsExtractor{log: log}
}

func (e *NewsExtractor) Extract(ctx context.Context, src domain.Source) (domain.RecordIterator, error) {
	if _, err := os.Stat(src.ExtractedPath); err != nil {
		e.log.Info("decompressing archive", "path", src.ArchivePath)
		if err := Unzip(src.ArchivePath, filepath.Dir(src.ExtractedPath)); err != nil {
			return nil, err
		}
	} else {
		e.log.Info("archive already decompressed", "path", src.ExtractedPath)
	}
	f, err := os.Open(src.ExtractedPath)
	if err != nil {
		return nil, &domain.ExtractionError{Path: src.ExtractedPath, Err: err}
	}
	sc := bufio.NewScanner(f)
	// news articles run long; the default 64K line limit is not enough
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	return &newsIterator{ctx: ctx, f: f, sc: sc, path: src.ExtractedPath, log: e.log}, nil
}

type newsRecord struct {
	Content string `json:"content"`
}

type newsIterator struct {
	ctx  context.Context
	f    *os.File
	sc   *bufio.Scanner
	path string
	log  *slog.Logger
	line int
}

func (it *newsIterator) Next() (string, error) {
	for {
		if err := it.ctx.Err(); err != nil {
			return "", err
		}
		if !it.sc.Scan() {
			if err := it.sc.Err(); err != nil {
				return "", &domain.ExtractionError{Path: it.path, Err: err}
			}
			return "", io.EOF
		}
		it.line++
		var rec newsRecord
		if err := json.Unmarshal(it.sc.Bytes(), &rec); err != nil {
			it.log.Warn("skipping malformed record", "path", it.path, "line", it.line, "err", err)
			continue
		}
		if strings.TrimSpace(rec.Content) == "" {
			continue
		}
		return rec.Content, nil
	}
}

func (it *newsIterator) Close() error { return it.f.Close() }
