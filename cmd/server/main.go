package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/sevakendra/portal-api/internal/api"
	"github.com/sevakendra/portal-api/internal/core/ports"
	"github.com/sevakendra/portal-api/internal/core/service"
	"github.com/sevakendra/portal-api/internal/infrastructure/config"
	"github.com/sevakendra/portal-api/internal/infrastructure/db/memory"
	mongodb "github.com/sevakendra/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/sevakendra/portal-api/internal/infrastructure/db/redis"
	"github.com/sevakendra/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Seva Kendra Portal API
// @version      1.0.0
// @description  Government-services application portal: registration, service catalog and application tracking.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in    header
// @name  Authorization
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	routerCfg := api.RouterConfig{
		ProtectStatusUpdates: cfg.ProtectStatusUpdates,
		Logger:               log,
	}

	var (
		userRepo    ports.UserRepository
		serviceRepo ports.ServiceRepository
		requestRepo ports.RequestRepository
	)

	switch cfg.Store {
	case "memory":
		log.Warn().Msg("using in-memory store; data is lost on restart")
		userRepo = memory.NewUserRepository()
		serviceRepo = memory.NewServiceRepository()
		requestRepo = memory.NewRequestRepository()
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}()

		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("failed to ensure mongodb indexes")
		}

		userRepo = mongodb.NewUserRepository(db)
		serviceRepo = mongodb.NewServiceRepository(db)
		requestRepo = mongodb.NewRequestRepository(db)
		routerCfg.MongoDB = db
	}

	var trackingCache service.TrackingCache
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer func() { _ = rdb.Close() }()

		trackingCache = redisdb.NewTrackingCache(rdb)
		routerCfg.Redis = rdb
	} else {
		log.Info().Msg("redis not configured; tracking cache disabled")
	}

	routerCfg.Auth = service.NewAuthService(userRepo, cfg.JWTSecret, 0)
	routerCfg.Catalog = service.NewCatalogService(serviceRepo, log)
	routerCfg.Requests = service.NewRequestService(requestRepo, trackingCache, log)

	e := api.NewRouter(routerCfg)

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
