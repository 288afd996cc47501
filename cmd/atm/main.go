package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kronbank/kronbank/internal/account"
	"github.com/kronbank/kronbank/internal/auth"
	"github.com/kronbank/kronbank/internal/cash"
	"github.com/kronbank/kronbank/internal/config"
	"github.com/kronbank/kronbank/internal/console"
	"github.com/kronbank/kronbank/internal/logging"
	"github.com/kronbank/kronbank/internal/seed"
	"github.com/kronbank/kronbank/internal/txlog"
	"github.com/kronbank/kronbank/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	cardRepo := auth.NewMemoryRepository()
	accountRepo := account.NewMemoryRepository()

	authSvc := auth.NewService(cardRepo)
	accountSvc := account.NewService(accountRepo, cash.NewSimulatedCounter(), txlog.NewLoggerRecorder(logger))

	if cfg.DemoSeed {
		if err := seed.Apply(ctx, authSvc, accountRepo); err != nil {
			logger.Error("apply demo seed", "error", err)
			os.Exit(1)
		}
	}

	term := ui.NewConsole()
	menu := console.NewMenu(
		term,
		console.NewAuthHandler(term, authSvc, cfg.MaxLoginAttempts, cfg.InvalidCardUsesAttempt, logger),
		console.NewAccountHandler(term, accountSvc),
		console.NewTransactionHandler(term, accountSvc),
		logger,
	)

	logger.Info("starting", "app", cfg.AppName, "env", cfg.AppEnv)
	menu.Run(ctx)
}
