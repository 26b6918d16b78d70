package clean

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"zhwordvec/internal/domain"
)

// Processor runs extracted records through the step pipeline and writes
// the cleaned corpus: one record per line, tokens space-joined. Records
// are processed by a worker pool but written strictly in input order via
// indexed reassembly, so reruns over the same source are byte-identical.
type Processor struct {
	steps    []Step
	workers  int
	log      *slog.Logger
	logEvery int
}

func NewProcessor(log *slog.Logger, workers int, steps ...Step) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{steps: steps, workers: workers, log: log, logEvery: 10000}
}

func (p *Processor) apply(text string) ([]string, error) {
	tokens := []string{text}
	for _, s := range p.steps {
		var err error
		tokens, err = s.Apply(tokens)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
	}
	return tokens, nil
}

type job struct {
	idx  int
	text string
}

type result struct {
	idx    int
	tokens []string
}

// Clean consumes records until EOF and writes the cleaned corpus to
// outPath. The file appears only on success; a ".tmp" sibling holds the
// output until then.
func (p *Processor) Clean(ctx context.Context, records domain.RecordIterator, outPath string) error {
	tmp := outPath + ".tmp"
	out, err := os.Create(tmp)
	if err != nil {
		return &domain.CleaningError{Path: outPath, Err: err}
	}
	p.log.Info("cleaning corpus", "out", outPath, "workers", p.workers)

	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan job, p.workers)
	results := make(chan result, p.workers)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; ; i++ {
			text, err := records.Next()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			select {
			case jobs <- job{idx: i, text: text}:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	var wg sync.WaitGroup
	for range p.workers {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for j := range jobs {
				tokens, err := p.apply(j.text)
				if err != nil {
					return err
				}
				select {
				case results <- result{idx: j.idx, tokens: tokens}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	g.Go(func() error {
		w := bufio.NewWriter(out)
		pending := make(map[int][]string)
		next, count := 0, 0
		flushReady := func() error {
			for {
				tokens, ok := pending[next]
				if !ok {
					return nil
				}
				delete(pending, next)
				next++
				if len(tokens) == 0 {
					continue
				}
				if _, err := w.WriteString(strings.Join(tokens, " ")); err != nil {
					return err
				}
				if err := w.WriteByte('\n'); err != nil {
					return err
				}
				count++
				if count%p.logEvery == 0 {
					p.log.Info("records processed", "count", count)
				}
			}
		}
		for {
			select {
			case r, ok := <-results:
				if !ok {
					if err := flushReady(); err != nil {
						return err
					}
					p.log.Info("finished cleaning", "records", count, "out", outPath)
					return w.Flush()
				}
				pending[r.idx] = r.tokens
				if err := flushReady(); err != nil {
					return err
				}
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	if err := g.Wait(); err != nil {
		out.Close()
		os.Remove(tmp)
		var ee *domain.ExtractionError
		if errors.As(err, &ee) || errors.Is(err, context.Canceled) {
			return err
		}
		return &domain.CleaningError{Path: outPath, Err: err}
	}
	if err := out.Close(); err != nil {
		return &domain.CleaningError{Path: outPath, Err: err}
	}
	if err := os.Rename(tmp, outPath); err != nil {
		return &domain.CleaningError{Path: outPath, Err: err}
	}
	return nil
}
