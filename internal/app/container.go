package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"grad-match/internal/catalog"
	"grad-match/internal/config"
	"grad-match/internal/database"
	"grad-match/internal/database/migration"
	dbpostgres "grad-match/internal/database/postgres"
	"grad-match/internal/domain/candidate"
	"grad-match/internal/domain/matching"
	"grad-match/internal/domain/posting"
	"grad-match/internal/infrastructure/cache"
	"grad-match/internal/pkg/jwt"
	"grad-match/internal/repository"
	"grad-match/internal/usecase"

	"go.uber.org/zap"
)

// Container owns the process-wide dependencies. The matching engine and its
// taxonomy are built once here and shared read-only by every request.
type Container struct {
	Config config.Config
	Log    *zap.Logger

	DB    database.DB
	Cache *cache.Redis

	Engine     *matching.Engine
	JWT        jwt.Service
	Candidates candidate.Repository
	Postings   posting.Repository

	AuthUsecase    usecase.AuthUsecase
	RankingUsecase usecase.RankingUsecase
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	if log == nil {
		log = zap.NewNop()
	}

	engine, err := NewEngine(cfg.Matching, log)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Log:    log,
		Engine: engine,
		JWT:    jwt.NewHMACService(cfg.App.AppName, cfg.JWT.Secret, cfg.JWT.ExpiresIn),
	}

	if err := c.openCatalog(); err != nil {
		_ = c.Close()
		return nil, err
	}

	c.Cache = cache.NewRedis(cfg.Redis, log)

	defaultAlg, err := matching.ParseAlgorithm(cfg.Matching.DefaultAlgorithm)
	if err != nil {
		_ = c.Close()
		return nil, err
	}

	c.AuthUsecase = usecase.NewAuthUsecase(c.Candidates, c.JWT, log.Named("auth"))
	c.RankingUsecase = usecase.NewRankingUsecase(c.Candidates, c.Postings, engine, c.Cache, defaultAlg, log)

	return c, nil
}

// NewEngine loads the weight table and builds the matching engine.
func NewEngine(cfg config.MatchingConfig, log *zap.Logger) (*matching.Engine, error) {
	weights := matching.DefaultWeights()
	if cfg.WeightsFile != "" {
		w, err := matching.LoadWeights(cfg.WeightsFile)
		if err != nil {
			return nil, fmt.Errorf("load weights: %w", err)
		}
		weights = w
	}

	stager, err := matching.NewStager(cfg.Staging)
	if err != nil {
		return nil, err
	}

	log.Info("matching engine ready",
		zap.String("default_algorithm", cfg.DefaultAlgorithm),
		zap.String("staging", stager.Name()),
		zap.String("weights", weights.Fingerprint()),
	)

	return matching.NewEngine(matching.EngineConfig{
		Weights:    weights,
		Vocabulary: matching.DefaultVocabulary(),
		Taxonomy:   matching.DefaultTaxonomy(),
		Stager:     stager,
		Logger:     log,
	}), nil
}

func (c *Container) openCatalog() error {
	switch c.Config.Catalog.Driver {
	case config.CatalogPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(ctx, c.Config.Database)
		if err != nil {
			return fmt.Errorf("connect catalog database: %w", err)
		}
		c.DB = db

		if err := (migration.Runner{Log: c.Log}).Run(ctx, db.SQLDB()); err != nil {
			return fmt.Errorf("migrate catalog database: %w", err)
		}

		c.Candidates = repository.NewPostgresCandidateRepository(db)
		c.Postings = repository.NewPostgresPostingRepository(db, c.Log)
		c.Log.Info("catalog store: postgres")
		return nil

	case config.CatalogMemory, "":
		cands, err := repository.NewMemoryCandidateRepository(catalog.Graduates(), c.Config.Catalog.BcryptCost)
		if err != nil {
			return err
		}
		c.Candidates = cands
		c.Postings = repository.NewMemoryPostingRepository(catalog.Postings(), c.Log)
		c.Log.Info("catalog store: memory")
		return nil

	default:
		return fmt.Errorf("unknown catalog driver %q", c.Config.Catalog.Driver)
	}
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
