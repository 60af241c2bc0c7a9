package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/soundwave/internal/api/http"
	"github.com/spec-kit/soundwave/internal/api/http/handlers"
	"github.com/spec-kit/soundwave/internal/auth"
	"github.com/spec-kit/soundwave/internal/config"
	"github.com/spec-kit/soundwave/internal/events"
	"github.com/spec-kit/soundwave/internal/media"
	"github.com/spec-kit/soundwave/internal/observability"
	"github.com/spec-kit/soundwave/internal/persistence"
	"github.com/spec-kit/soundwave/internal/repository"
	"github.com/spec-kit/soundwave/internal/service"
	"github.com/spec-kit/soundwave/internal/worker"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	uploader, err := media.NewCloudinaryUploader(cfg.Media)
	if err != nil {
		logger.Fatal("failed to init media host", zap.Error(err))
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	artistRepo := repository.NewArtistRepository(pool)
	songRepo := repository.NewSongRepository(pool)
	favoriteRepo := repository.NewFavoriteRepository(pool)

	dispatcher := events.NewInMemoryDispatcher(logger)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	catalogService := service.NewCatalogService(songRepo, favoriteRepo, redis.Client, cfg.Redis.CatalogTTL(), logger)
	uploadService := service.NewUploadService(artistRepo, songRepo, uploader, catalogService, dispatcher)

	session := auth.NewSessionCookie(cfg.Auth.TokenTTL(), cfg.App.IsProduction())
	gatekeeper := auth.NewGatekeeper(authService.TokenManager(), session, auth.DefaultPolicyTable(), logger)

	app := fiber.New(fiber.Config{BodyLimit: 100 * 1024 * 1024})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:     handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:       handlers.NewAuthHandler(authService, session),
		Songs:      handlers.NewSongsHandler(catalogService),
		Artist:     handlers.NewArtistHandler(uploadService),
		Pages:      handlers.NewPagesHandler(cfg.App.Name),
		Gatekeeper: gatekeeper,
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
