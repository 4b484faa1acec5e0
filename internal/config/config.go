package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	defaultDatabaseURL      = "postgres://localhost:5432/yogabot?sslmode=disable"
	defaultMigrationsPath   = "migrations"
	defaultReminderInterval = 10 * time.Minute
	defaultReminderAfter    = 24 * time.Hour
)

type Config struct {
	Token            string
	GuildID          string
	DatabaseURL      string
	MigrationsPath   string
	Environment      string
	ReminderInterval time.Duration
	ReminderAfter    time.Duration
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, etc.).
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv and validates it.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:          getenv("TOKEN"),
		GuildID:        getenv("GUILD_ID"),
		DatabaseURL:    getenv("DATABASE_URL"),
		MigrationsPath: getenv("MIGRATIONS_PATH"),
		Environment:    getenv("APP_ENV"),
	}

	var err error
	if cfg.ReminderInterval, err = parseDuration("REMINDER_INTERVAL", getenv("REMINDER_INTERVAL"), defaultReminderInterval); err != nil {
		return nil, err
	}
	if cfg.ReminderAfter, err = parseDuration("REMINDER_AFTER", getenv("REMINDER_AFTER"), defaultReminderAfter); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseDuration(name, raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("config: %s invalid (%q): %w", name, raw, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("config: %s must be positive (%q)", name, raw)
	}
	return d, nil
}

// validate applies every rule on the loaded configuration and fills defaults.
func (c *Config) validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return fmt.Errorf("config: TOKEN is required")
	}

	for _, r := range c.GuildID {
		if r < '0' || r > '9' {
			return fmt.Errorf("config: GUILD_ID must be a Discord guild ID (digits only)")
		}
	}

	if strings.TrimSpace(c.DatabaseURL) == "" {
		c.DatabaseURL = defaultDatabaseURL
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: DATABASE_URL invalid (%q): missing scheme or host", c.DatabaseURL)
	}

	if strings.TrimSpace(c.MigrationsPath) == "" {
		c.MigrationsPath = defaultMigrationsPath
	}

	switch c.Environment {
	case "":
		c.Environment = EnvDevelopment
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config: APP_ENV must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Environment)
	}

	return nil
}
