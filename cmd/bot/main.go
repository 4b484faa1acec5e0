package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"yogabot/internal/adapters/discord"
	"yogabot/internal/config"
	"yogabot/internal/infrastructure/database"
	"yogabot/internal/infrastructure/i18n"
	"yogabot/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ invalid configuration: %v", err)
	}

	lg, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("❌ failed to build logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, lg); err != nil {
		lg.Fatal("❌ migrations failed", zap.Error(err))
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, lg)
	if err != nil {
		lg.Fatal("❌ database initialisation failed", zap.Error(err))
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(lg)
	if err != nil {
		lg.Fatal("❌ failed to load translations", zap.Error(err))
	}

	repo := database.NewPractitionerRepository(pool)

	bot, err := discord.NewBot(cfg, repo, translator, lg)
	if err != nil {
		lg.Fatal("❌ failed to create bot", zap.Error(err))
	}
	if err := bot.Start(ctx); err != nil {
		lg.Error("❌ bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
}
