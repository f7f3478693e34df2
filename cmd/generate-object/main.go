package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dskvich/ai-core-examples/pkg/config"
	"github.com/dskvich/ai-core-examples/pkg/demo"
	"github.com/dskvich/ai-core-examples/pkg/domain"
	"github.com/dskvich/ai-core-examples/pkg/logger"
	"github.com/dskvich/ai-core-examples/pkg/openai"
)

const operation = "generate-object"

type generatorFactory func(cfg config.Config) demo.ObjectGenerator

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	os.Exit(run(context.Background(), os.Stdout, os.Stderr, newOpenAIClient))
}

func newOpenAIClient(cfg config.Config) demo.ObjectGenerator {
	return openai.NewClient(openai.Config{
		APIKey:       cfg.OpenAIAPIKey,
		BaseURL:      cfg.OpenAIBaseURL,
		Organization: cfg.OpenAIOrganization,
	})
}

// run returns the process exit code.
func run(ctx context.Context, stdout, stderr io.Writer, newGenerator generatorFactory) int {
	ctx = logger.ContextWithOperation(ctx, operation)

	if err := runMain(ctx, stdout, stderr, newGenerator); err != nil {
		slog.ErrorContext(ctx, "Shutting down due to error", logger.Err(err), "kind", domain.KindOf(err))
		return 1
	}
	return 0
}

func runMain(ctx context.Context, stdout, stderr io.Writer, newGenerator generatorFactory) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := logger.Setup(stderr, cfg.LogLevel, cfg.ColorDisabled()); err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return demo.GenerateCharacters(ctx, newGenerator(cfg), stdout)
}
