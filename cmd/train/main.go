package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"zhwordvec/internal/config"
	"zhwordvec/internal/logger"
	"zhwordvec/internal/train"
)

// Generic driver: trains a model over a user-supplied pre-cleaned corpus,
// skipping the download/extract/clean stages entirely.
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

	flag.String("config", "config.yaml", "Path to config YAML")
	params := config.BindTrainingFlags(flag.CommandLine, cfg.Training, cfg.ZhwikiSource().CleanedPath, "wordvec")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trainer := train.NewWord2Vec(logg, cfg.ModelDir())
	artifact, err := trainer.Train(ctx, *params)
	if err != nil {
		logg.Error("training failed", "input", params.InputFile, "err", err)
		os.Exit(1)
	}
	logg.Info("done", "artifact", artifact)
}
