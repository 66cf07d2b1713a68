package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"golang.org/x/crypto/bcrypt"
)

// Config is the immutable runtime configuration handed to every component.
type Config struct {
	Host     string `env:"HOST,      default=127.0.0.1"`
	Port     int    `env:"PORT,      default=5000"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	MySQL MySQLConfig
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET_KEY, required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,      default=30m"`
	BcryptCost int           `env:"BCRYPT_COST,    default=10"`
}

type MySQLConfig struct {
	Host     string `env:"DB_HOST, default=localhost"`
	Port     int    `env:"DB_PORT, default=3306"`
	User     string `env:"DB_USER, default=root"`
	Password string `env:"DB_PASS"`
	Name     string `env:"DB_NAME, default=reservas_db"`
}

// Addr returns the host:port the HTTP server binds to.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// IsDevelopment reports whether the service runs with developer defaults.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads a .env file from the working directory when one exists and then
// fills Config from the process environment.
func Load(ctx context.Context) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: read .env: %w", err)
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith fills Config from the given lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.TokenTTL <= 0 {
		return Config{}, fmt.Errorf("config: TOKEN_TTL must be positive, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return Config{}, fmt.Errorf("config: BCRYPT_COST must be between %d and %d, got %d",
			bcrypt.MinCost, bcrypt.MaxCost, cfg.Auth.BcryptCost)
	}
	return cfg, nil
}
