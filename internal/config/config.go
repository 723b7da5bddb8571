package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Store backends
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Config holds the process configuration read from the environment
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// StoreBackend selects redis or postgres
	StoreBackend  string `env:"STORE_BACKEND" envDefault:"redis"`
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	DatabaseURL   string `env:"DATABASE_URL"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Timezone is the zone "today" is read in
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Madrid"`

	StrongDayThresholdLiters decimal.Decimal `env:"STRONG_DAY_THRESHOLD_LITERS" envDefault:"3.0"`
	CloseMarginLiters        decimal.Decimal `env:"CLOSE_MARGIN_LITERS" envDefault:"0.5"`

	// SeedCatalog adds the default drinks missing from the store at startup
	SeedCatalog bool `env:"SEED_CATALOG" envDefault:"true"`
}

// Load reads the optional dotenv files, then parses the environment.
// Missing dotenv files are skipped; variables already set win.
func Load(files ...string) (*Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values env tags cannot express
func (c *Config) Validate() error {
	switch c.StoreBackend {
	case BackendRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR cannot be empty")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend)
	}

	if !c.StrongDayThresholdLiters.IsPositive() {
		return errors.New("STRONG_DAY_THRESHOLD_LITERS must be positive")
	}
	if c.CloseMarginLiters.IsNegative() {
		return errors.New("CLOSE_MARGIN_LITERS cannot be negative")
	}

	if _, err := c.Location(); err != nil {
		return err
	}

	return nil
}

// Location returns the configured time zone
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}
