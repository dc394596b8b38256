package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Server struct {
		Addr        string `env:"HTTP_ADDR" envDefault:":8080"`
		CORSOrigins string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" envDefault:""`
		DB       int    `env:"REDIS_DB" envDefault:"0"`
	}

	Draw struct {
		MaxEntries int           `env:"DRAW_MAX_ENTRIES" envDefault:"10000"`
		RecordTTL  time.Duration `env:"DRAW_RECORD_TTL" envDefault:"720h"`
		// Store every (bound, value) step alongside the record.
		KeepTrace bool `env:"DRAW_KEEP_TRACE" envDefault:"false"`
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; production sets variables directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid REDIS_DB: %d", c.Redis.DB)
	}
	if c.Draw.MaxEntries <= 0 {
		return fmt.Errorf("invalid DRAW_MAX_ENTRIES: %d", c.Draw.MaxEntries)
	}
	if c.Draw.RecordTTL < 0 {
		return fmt.Errorf("invalid DRAW_RECORD_TTL: %s", c.Draw.RecordTTL)
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.Server.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
