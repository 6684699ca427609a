package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/yatraflow/yatraflow/internal/api/http"
	"github.com/yatraflow/yatraflow/internal/api/http/handlers"
	"github.com/yatraflow/yatraflow/internal/auth"
	"github.com/yatraflow/yatraflow/internal/config"
	"github.com/yatraflow/yatraflow/internal/domain"
	"github.com/yatraflow/yatraflow/internal/events"
	"github.com/yatraflow/yatraflow/internal/generator"
	"github.com/yatraflow/yatraflow/internal/observability"
	"github.com/yatraflow/yatraflow/internal/persistence"
	"github.com/yatraflow/yatraflow/internal/repository"
	"github.com/yatraflow/yatraflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := persistence.Open(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Fatal("failed to open snapshot store", zap.Error(err))
	}
	defer store.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	reportRepo := repository.NewReportRepository(ctx, store, dispatcher, metrics, logger)
	userRepo := repository.NewUserRepository(ctx, store, logger)

	authService := service.NewAuthService(*cfg, userRepo, logger)
	if err := authService.EnsureBootstrapAdmin(ctx, cfg.Auth); err != nil {
		logger.Fatal("failed to bootstrap admin account", zap.Error(err))
	}
	reportService := service.NewReportService(reportRepo, logger)
	settingsService := service.NewSettingsService(store, logger)

	reportRepo.Initialize(ctx, func() []domain.Report {
		return generator.SeedReports(cfg.Generator.SeedCount)
	})

	feed := generator.NewFeed(reportRepo, cfg.Generator.FeedInterval(), logger)
	if cfg.Generator.FeedEnabled {
		feed.Start()
	}
	defer feed.Stop()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, store),
		Auth:           handlers.NewAuthHandler(authService),
		Reports:        handlers.NewReportsHandler(reportService),
		Users:          handlers.NewUsersHandler(userRepo),
		Settings:       handlers.NewSettingsHandler(settingsService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
