package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/hotel-booking-service/internal/api/http"
	"github.com/spec-kit/hotel-booking-service/internal/api/http/handlers"
	"github.com/spec-kit/hotel-booking-service/internal/auth"
	"github.com/spec-kit/hotel-booking-service/internal/config"
	"github.com/spec-kit/hotel-booking-service/internal/events"
	"github.com/spec-kit/hotel-booking-service/internal/observability"
	"github.com/spec-kit/hotel-booking-service/internal/persistence"
	"github.com/spec-kit/hotel-booking-service/internal/repository"
	"github.com/spec-kit/hotel-booking-service/internal/service"
	"github.com/spec-kit/hotel-booking-service/internal/worker"
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

	pool := pg.PoolHandle()
	amenityRepo := repository.NewAmenityRepository(pool)
	roomRepo := repository.NewRoomRepository(pool)
	roomTypeRepo := repository.NewRoomTypeRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	dispatcher := events.NewInMemoryDispatcher()
	auditService := service.NewAuditService(logger, dispatcher)
	worker.StartAuditWorker(auditService)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Amenities: handlers.NewAmenitiesHandler(amenityRepo, dispatcher, logger),
		Rooms:     handlers.NewRoomsHandler(roomRepo, dispatcher, logger),
		RoomTypes: handlers.NewRoomTypesHandler(roomTypeRepo, dispatcher, logger),
		Users:     handlers.NewUsersHandler(userRepo, tokenManager, dispatcher, logger),
		Identity:  auth.Identity(tokenManager),
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
