package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	httpadapter "portfolio-builder/internal/adapter/http"
	repo "portfolio-builder/internal/adapter/repository"
	"portfolio-builder/internal/adapter/template"
	"portfolio-builder/internal/infrastructure/migration"
	"portfolio-builder/internal/usecase"
	"portfolio-builder/pkg/ai"
	"portfolio-builder/pkg/config"
	infra "portfolio-builder/pkg/infrastructure"
	"portfolio-builder/pkg/logger"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	log := logger.Must(cfg.LogLevel, cfg.Development())
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		p, err := infra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Warn("portfolio DB not available, running without persistence", zap.Error(err))
		} else {
			pool = p
			defer pool.Close()
			if err := migration.RunMigrations(ctx, pool, log); err != nil {
				log.Fatal("migrations failed", zap.Error(err))
			}
		}
	} else {
		log.Warn("DATABASE_URL not set, running without persistence")
	}

	templates := template.Default()
	if _, ok := templates.Get(cfg.DefaultTemplate); !ok {
		log.Warn("unknown default template, using modern", zap.String("template", cfg.DefaultTemplate))
		cfg.DefaultTemplate = template.IDModern
	}

	portfolios := repo.NewPortfoliosRepo(pool, log.Named("repository"))
	parser := ai.NewClient(cfg.AIServiceURL, log.Named("ai"))
	processor := usecase.NewProcessor(portfolios, parser, templates, log.Named("processor"), cfg.DefaultTemplate)

	h := httpadapter.NewHandler(processor, log.Named("http"))
	app := httpadapter.NewApp(h, log, cfg.BodyLimitMB)

	go func() {
		log.Info("server listening", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}
