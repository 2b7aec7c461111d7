package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/spec-kit/pizza-store/internal/cli"
	"github.com/spec-kit/pizza-store/internal/config"
	"github.com/spec-kit/pizza-store/internal/observability"
	"github.com/spec-kit/pizza-store/internal/persistence"
	"github.com/spec-kit/pizza-store/internal/repository"
	"github.com/spec-kit/pizza-store/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Printf("failed to init logger: %v", err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Error("failed to connect postgres", zap.Error(err))
		return 1
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Error("failed to run migrations", zap.Error(err))
			return 1
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var cache service.CatalogCache
	if !cfg.Redis.DisableCatalog && redis.Ping(ctx) == nil {
		if c := persistence.NewCatalogCache(redis, cfg.Redis.CatalogTTL(), logger); c != nil {
			cache = c
		}
	}

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	itemRepo := repository.NewItemRepository(pool)

	app := cli.NewApp(cli.Dependencies{
		Auth:    service.NewAuthService(userRepo, logger),
		Profile: service.NewProfileService(userRepo, logger),
		Menu:    service.NewMenuService(itemRepo, cache, logger),
		Orders:  service.NewOrderService(),
	}, logger)

	if err := app.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("session loop failed", zap.Error(err))
		return 1
	}

	logger.Info("disconnecting from database")
	return 0
}
