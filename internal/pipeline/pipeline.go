package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"zhwordvec/internal/domain"
)

// Pipeline composes the four stages for one corpus source. Each stage is
// skipped when its artifact already exists, so reruns only redo missing
// work; on failure the returned error names the stage.
type Pipeline struct {
	log       *slog.Logger
	fetcher   domain.Fetcher
	extractor domain.Extractor
	cleaner   domain.Cleaner
	trainer   domain.Trainer
}

func New(log *slog.Logger, f domain.Fetcher, e domain.Extractor, c domain.Cleaner, t domain.Trainer) *Pipeline {
	return &Pipeline{log: log, fetcher: f, extractor: e, cleaner: c, trainer: t}
}

// Run executes fetch → extract → clean → train for src and returns the
// trained model artifact path.
func (p *Pipeline) Run(ctx context.Context, src domain.Source, params domain.TrainingParams) (string, error) {
	if err := p.fetcher.Ensure(ctx, src); err != nil {
		return "", fmt.Errorf("fetch stage: %w", err)
	}

	if _, err := os.Stat(src.CleanedPath); err == nil {
		p.log.Info("cleaned corpus already exists, skipping clean stage",
			"path", src.CleanedPath, "hint", "delete the file to redo cleaning")
	} else {
		records, err := p.extractor.Extract(ctx, src)
		if err != nil {
			return "", fmt.Errorf("extract stage: %w", err)
		}
		err = p.cleaner.Clean(ctx, records, src.CleanedPath)
		if cerr := records.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return "", fmt.Errorf("clean stage: %w", err)
		}
	}

	if params.InputFile == "" {
		params.InputFile = src.CleanedPath
	}
	artifact, err := p.trainer.Train(ctx, params)
	if err != nil {
		return "", fmt.Errorf("train stage: %w", err)
	}
	return artifact, nil
}
