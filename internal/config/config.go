package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	JWT      JWTConfig
	Matching MatchingConfig
	Catalog  CatalogConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogFormat   string
	LogLevel    string
}

type JWTConfig struct {
	Secret    string
	ExpiresIn time.Duration
}

type MatchingConfig struct {
	DefaultAlgorithm string
	Staging          string
	WeightsFile      string
}

type CatalogConfig struct {
	Driver     string
	BcryptCost int
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidConfig      = errors.New("invalid config")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogFormat:   optDefault("LOG_FORMAT", "console"),
		LogLevel:    optDefault("LOG_LEVEL", "info"),
	}

	cfg.JWT = JWTConfig{
		Secret: req("JWT_SECRET"),
	}

	cfg.Matching = MatchingConfig{
		DefaultAlgorithm: strings.ToLower(optDefault("MATCH_DEFAULT_ALGORITHM", "hierarchical")),
		Staging:          strings.ToLower(optDefault("MATCH_STAGING", "stack")),
		WeightsFile:      opt("MATCH_WEIGHTS_FILE"),
	}

	cfg.Catalog = CatalogConfig{
		Driver: strings.ToLower(optDefault("CATALOG_DRIVER", CatalogMemory)),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  optDefault("DB_SSL_MODE", "disable"),
	}

	cfg.Redis = RedisConfig{
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
	}

	var parseErrs []string
	parseDuration := func(key, def string) time.Duration {
		raw := optDefault(key, def)
		d, err := time.ParseDuration(raw)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return 0
		}
		return d
	}
	parseInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return def
		}
		return v
	}
	parseBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			parseErrs = append(parseErrs, key)
			return def
		}
		return v
	}

	cfg.JWT.ExpiresIn = parseDuration("JWT_EXPIRES_IN", "2h")
	cfg.Catalog.BcryptCost = parseInt("BCRYPT_COST", 10)
	cfg.Database.ConnectTimeout = parseDuration("DB_CONNECT_TIMEOUT", "5s")
	cfg.Database.PoolMaxConns = int32(parseInt("DB_POOL_MAX_CONNS", 0))
	cfg.Redis.Enabled = parseBool("CACHE_ENABLED", false)
	cfg.Redis.TTL = time.Duration(parseInt("REDIS_TTL", 600)) * time.Second

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(parseErrs) > 0 {
		return Config{}, fmt.Errorf("%w: unparsable %s", errInvalidConfig, strings.Join(parseErrs, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Matching.DefaultAlgorithm {
	case "lexical", "hierarchical":
	default:
		return fmt.Errorf("%w: MATCH_DEFAULT_ALGORITHM=%q", errInvalidConfig, c.Matching.DefaultAlgorithm)
	}
	switch c.Matching.Staging {
	case "stack", "queue":
	default:
		return fmt.Errorf("%w: MATCH_STAGING=%q", errInvalidConfig, c.Matching.Staging)
	}
	switch c.Catalog.Driver {
	case CatalogMemory:
	case CatalogPostgres:
		if c.Database.DBHost == "" || c.Database.DBPort == "" || c.Database.DBName == "" || c.Database.DBUser == "" {
			return fmt.Errorf("%w: postgres catalog requires DB_HOST, DB_PORT, DB_NAME, DB_USER", errInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: CATALOG_DRIVER=%q", errInvalidConfig, c.Catalog.Driver)
	}
	if c.JWT.ExpiresIn <= 0 {
		return fmt.Errorf("%w: JWT_EXPIRES_IN must be positive", errInvalidConfig)
	}
	if c.Catalog.BcryptCost < 4 || c.Catalog.BcryptCost > 31 {
		return fmt.Errorf("%w: BCRYPT_COST must be within 4..31", errInvalidConfig)
	}
	return nil
}

func IsInvalid(err error) bool {
	return errors.Is(err, errInvalidConfig) || errors.Is(err, errMissingRequiredEnv)
}
