package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"grad-match/internal/config"
	"grad-match/internal/database/migration"
	dbpostgres "grad-match/internal/database/postgres"
	"grad-match/internal/database/seeder"
	"grad-match/internal/infrastructure/cache"
	"grad-match/internal/pkg/logger"
	"grad-match/internal/usecase"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// seed migrates the postgres catalog, loads the built-in graduates and
// postings and drops cached rankings. Existing rows are left untouched.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	lg, err := logger.New(cfg.App.LogFormat, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}

	err = run(cfg, lg)
	if err != nil {
		lg.Error("seed failed", zap.Error(err))
	}
	_ = lg.Sync()
	if err != nil {
		log.Fatal(err)
	}
}

func run(cfg config.Config, lg *zap.Logger) (err error) {
	if cfg.Catalog.Driver != config.CatalogPostgres {
		return fmt.Errorf("seeding requires CATALOG_DRIVER=postgres, got %q", cfg.Catalog.Driver)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer func() { err = errors.Join(err, db.Close()) }()

	if err := (migration.Runner{Log: lg}).Run(ctx, db.SQLDB()); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	runner := seeder.Runner{Seeders: seeder.Defaults(cfg.Catalog.BcryptCost), Log: lg}
	if err := runner.Run(ctx, db); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	rc := cache.NewRedis(cfg.Redis, lg)
	defer func() { _ = rc.Close() }()
	if err := usecase.PurgeRankings(ctx, rc); err != nil {
		return fmt.Errorf("purge cached rankings: %w", err)
	}

	lg.Info("catalog seeded")
	return nil
}
