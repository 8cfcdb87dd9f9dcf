package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
)

const (
	STORAGE_SQLITE   = "sqlite"
	STORAGE_POSTGRES = "postgres"
	STORAGE_REDIS    = "redis"
	STORAGE_MEMORY   = "memory"
)

type Config struct {
	Port              int           `env:"PORT" envDefault:"8080"`
	AllowedOrigins    []string      `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
	Timezone          string        `env:"TIMEZONE" envDefault:"Local"`
	StorageDriver     string        `env:"STORAGE_DRIVER" envDefault:"sqlite"`
	SQLitePath        string        `env:"SQLITE_PATH" envDefault:"remindu.db"`
	PostgresqlURL     string        `env:"POSTGRESQL_URL"`
	RedisURL          string        `env:"REDIS_URL"`
	RedisKeyPrefix    string        `env:"REDIS_KEY_PREFIX" envDefault:"remindu:"`
	RabbitmqURL       string        `env:"RABBITMQ_URL"`
	RabbitmqExchange  string        `env:"RABBITMQ_EXCHANGE" envDefault:"remindu.events"`
	PersistCategories bool          `env:"PERSIST_CATEGORIES" envDefault:"true"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"20s"`
}

// Load reads the configuration from the environment. Variables found in a
// .env file in the working directory are loaded first; variables already
// set take precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}
	return parse(env.Options{})
}

// LoadFrom reads the configuration from the given variables only.
func LoadFrom(environment map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(options env.Options) (*Config, error) {
	config := &Config{}
	if err := env.Parse(config, options); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warning", "error")),
		validation.Field(&c.Timezone, validation.By(validateTimezone)),
		validation.Field(
			&c.StorageDriver,
			validation.Required,
			validation.In(STORAGE_SQLITE, STORAGE_POSTGRES, STORAGE_REDIS, STORAGE_MEMORY),
		),
		validation.Field(&c.SQLitePath, validation.By(c.requiredFor(STORAGE_SQLITE))),
		validation.Field(&c.PostgresqlURL, validation.By(c.requiredFor(STORAGE_POSTGRES))),
		validation.Field(&c.RedisURL, validation.By(c.requiredFor(STORAGE_REDIS))),
		validation.Field(&c.RabbitmqExchange, validation.By(func(value interface{}) error {
			if c.RabbitmqURL != "" && value.(string) == "" {
				return errors.New("must be set together with RABBITMQ_URL")
			}
			return nil
		})),
	)
}

// Location is the zone "now" is read in for date suggestions.
func (c *Config) Location() *time.Location {
	location, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return location
}

func (c *Config) requiredFor(driver string) validation.RuleFunc {
	return func(value interface{}) error {
		if c.StorageDriver == driver && value.(string) == "" {
			return fmt.Errorf("must be set for %s storage", driver)
		}
		return nil
	}
}

func validateTimezone(value interface{}) error {
	if _, err := time.LoadLocation(value.(string)); err != nil {
		return errors.New("unknown timezone")
	}
	return nil
}
