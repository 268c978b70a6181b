package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// SeedDemoData loads the demo departments and employees on start.
	SeedDemoData bool `env:"SEED_DEMO_DATA, default=false"`

	Auth  AuthConfig
	Redis RedisConfig
	Mongo MongoConfig
}

type AuthConfig struct {
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	AdminUsername      string `env:"ADMIN_USERNAME,       default=admin"`
	AdminPasswordHash  string `env:"ADMIN_PASSWORD_HASH"`
	ViewerUsername     string `env:"VIEWER_USERNAME,      default=viewer"`
	ViewerPasswordHash string `env:"VIEWER_PASSWORD_HASH"`
}

// RedisConfig is optional; an empty Addr keeps idempotency keys in memory.
type RedisConfig struct {
	Addr           string        `env:"REDIS_ADDR"`
	Password       string        `env:"REDIS_PASSWORD"`
	DB             int           `env:"REDIS_DB,             default=0"`
	PoolSize       int           `env:"REDIS_POOL_SIZE,      default=10"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL,      default=24h"`
}

// MongoConfig is optional. When URI is set, operator accounts live in
// MongoDB and any ADMIN_* or VIEWER_* account with a hash is written there on
// start.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DATABASE, default=payroll"`
}

// Load reads a .env file when one exists, then the environment.
func Load(ctx context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// ValidateServe checks the settings the HTTP shell cannot run without. An
// admin hash is only required when operators are not kept in MongoDB.
func (c *Config) ValidateServe() error {
	var errs []error
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Auth.AdminPasswordHash == "" && c.Mongo.URI == "" {
		errs = append(errs, errors.New("ADMIN_PASSWORD_HASH is required"))
	}
	return errors.Join(errs...)
}
