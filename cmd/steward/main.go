package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/steward/internal/audit"
	"github.com/alexanderramin/steward/internal/cli"
	"github.com/alexanderramin/steward/internal/config"
	"github.com/alexanderramin/steward/internal/executor"
	"github.com/alexanderramin/steward/internal/intelligence"
	"github.com/alexanderramin/steward/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		// Failed requests have already been rendered by the command.
		var respErr *cli.ResponseError
		if !errors.As(err, &respErr) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	engine, err := cfg.PolicyEngine()
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewSlogUseCaseObserver(logger)
	}

	assistant := service.NewAssistantService(
		intelligence.NewPatternClassifier(),
		engine,
		cfg.PlanRegistry(),
		executor.New(engine.Root, logger),
		audit.NewSink(cfg.AuditStore(logger), logger),
		observer,
	)

	app := &cli.App{Assistant: assistant}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
