package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/helpdesk-service/internal/api/http"
	"github.com/spec-kit/helpdesk-service/internal/api/http/handlers"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/cache"
	"github.com/spec-kit/helpdesk-service/internal/classifier"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/observability"
	"github.com/spec-kit/helpdesk-service/internal/persistence"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	"github.com/spec-kit/helpdesk-service/internal/service"
	"github.com/spec-kit/helpdesk-service/internal/worker"
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

	var (
		ticketStore repository.TicketStore
		profiles    repository.ProfileStore
		credentials repository.CredentialStore
	)

	if cfg.DemoMode() {
		adminHash, err := auth.HashPassword(cfg.Local.AdminPassword, cfg.Auth.BcryptCost)
		if err != nil {
			logger.Fatal("failed to hash demo admin password", zap.Error(err))
		}
		local, err := repository.InitializeLocalStore(cfg.Local.Path, repository.LocalSeed{
			AdminUsername: cfg.Local.AdminUsername,
			AdminName:     cfg.Local.AdminName,
			AdminHash:     adminHash,
		}, logger)
		if err != nil {
			logger.Fatal("failed to initialize local store", zap.Error(err))
		}
		ticketStore = local
		profiles = local.Profiles()
		credentials = local.Credentials()
	} else {
		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		pool := pg.PoolHandle()
		ticketStore = repository.NewTicketRepository(pool)
		profiles = repository.NewUserRepository(pool)
		credentials = repository.NewCredentialRepository(pool)
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()
	ticketCache := cache.NewTicketCache(redis.Client, logger)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notify)
	worker.StartNotificationWorker(notificationService)

	ticketClassifier := classifier.New(cfg.Classifier, logger)

	ticketService := service.NewTicketService(service.TicketDependencies{
		Store:      ticketStore,
		Cache:      ticketCache,
		Classifier: ticketClassifier,
		Dispatcher: dispatcher,
	})
	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		Profiles:    profiles,
		Credentials: credentials,
	})
	userService := service.NewUserService(service.UserDependencies{
		Profiles:    profiles,
		Credentials: credentials,
		Dispatcher:  dispatcher,
		BcryptCost:  cfg.Auth.BcryptCost,
		MinPassword: cfg.Auth.MinPasswordLength,
		DemoMode:    cfg.DemoMode(),
	})
	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), profiles)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Sessions:       handlers.NewSessionsHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Users:          handlers.NewUsersHandler(userService),
		Assets:         handlers.NewAssetsHandler(),
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
