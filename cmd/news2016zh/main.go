package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"zhwordvec/internal/clean"
	"zhwordvec/internal/config"
	"zhwordvec/internal/extract"
	"zhwordvec/internal/fetch"
	"zhwordvec/internal/logger"
	"zhwordvec/internal/pipeline"
	"zhwordvec/internal/train"
	"zhwordvec/internal/tui"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.PathFromArgs(os.Args[1:]))
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("failed to create data directories: %v", err)
	}
	logg, err := logger.New(cfg.LogPath())
	if err != nil {
		log.Fatalf("failed to open log file: %v", err)
	}

	src := cfg.News2016zhSource()
	flag.String("config", "config.yaml", "Path to config YAML")
	params := config.BindTrainingFlags(flag.CommandLine, cfg.Training, src.CleanedPath, "news2016zh")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	dl := fetch.New(logg)
	// the news corpus is already simplified script, no T2S step
	steps, err := clean.DefaultSteps(ctx, dl, cfg.StopwordsURL, cfg.StopwordsPath(), false)
	if err != nil {
		logg.Error("failed to build cleaning pipeline", "err", err)
		os.Exit(1)
	}

	pl := pipeline.New(logg,
		tui.NewFetcher(dl),
		extract.NewNews(logg),
		clean.NewProcessor(logg, cfg.Clean.Workers, steps...),
		train.NewWord2Vec(logg, cfg.ModelDir()),
	)
	artifact, err := pl.Run(ctx, src, *params)
	if err != nil {
		logg.Error("pipeline failed", "source", src.Name, "err", err)
		os.Exit(1)
	}
	logg.Info("done", "source", src.Name, "artifact", artifact)
}
