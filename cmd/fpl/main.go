package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/riskibarqy/fpl-cli/internal/app"
	"github.com/riskibarqy/fpl-cli/internal/config"
	"github.com/riskibarqy/fpl-cli/internal/interfaces/cli"
	"github.com/riskibarqy/fpl-cli/internal/observability"
	idgen "github.com/riskibarqy/fpl-cli/internal/platform/id"
	"github.com/riskibarqy/fpl-cli/internal/platform/logging"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load .env: %v\n", err)
		return cli.ExitError
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: load config: %v\n", err)
		return cli.ExitError
	}

	logger := logging.New(cfg.LogFormat, cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	runID, err := idgen.NewRandomGenerator().NewID()
	if err != nil {
		logger.Warn("run id unavailable", "error", err)
	}
	logger = logger.With("run_id", runID, "service", cfg.ServiceName, "environment", cfg.AppEnv)
	logging.SetDefault(logger)

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: init tracing: %v\n", err)
		return cli.ExitError
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("flush traces failed", "error", err)
		}
	}()

	handler, err := app.NewCLI(cfg, logger, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return handler.Run(ctx, args)
}
