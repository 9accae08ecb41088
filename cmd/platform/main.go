// Package main boots the MindHaven platform service and wires application dependencies.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mindhaven/mindhaven/internal/api"
	"github.com/mindhaven/mindhaven/internal/classifier"
	"github.com/mindhaven/mindhaven/internal/config"
	"github.com/mindhaven/mindhaven/internal/mood"
	"github.com/mindhaven/mindhaven/internal/repository"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	slog.Info("configuration loaded", "classifier_provider", cfg.ClassifierProvider, "classifier_model", cfg.ClassifierModel, "window_days", cfg.WindowDays)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	moodClassifier, err := newClassifier(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to build classifier: %v", err)
	}

	moodService := mood.NewService(classifier.NewEmojiShortcut(moodClassifier), store.Entries, cfg.WindowDays)

	srv := api.NewServer(api.Config{Addr: cfg.HTTPAddr}, moodService)
	slog.Info("platform listening", "addr", cfg.HTTPAddr)
	if err := srv.Run(ctx); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newClassifier(ctx context.Context, cfg config.Config) (classifier.Classifier, error) {
	switch cfg.ClassifierProvider {
	case "gemini":
		return classifier.NewGeminiClassifier(ctx, cfg.GoogleAPIKey, cfg.ClassifierModel)
	default:
		return classifier.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.ClassifierModel)
	}
}
