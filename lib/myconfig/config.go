package myconfig

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DatasourceMock      = "mock"
	DatasourceRest      = "rest"
	DatasourceEpiserver = "episerver"
)

// Config holds the application settings. Infrastructure libraries in lib/ select their
// cloud or local implementation from GOOGLE_CLOUD_PROJECT and REDIS_ADDR themselves.
type Config struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	Datasource      string        `env:"DATASOURCE" envDefault:"mock"`
	CommerceBaseURL string        `env:"COMMERCE_BASE_URL"`
	CommerceAPIKey  string        `env:"COMMERCE_API_KEY"`
	CartUID         string        `env:"CART_UID" envDefault:"current"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func Load() (Config, error) {
	cfg := Config{}
	err := env.Parse(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Datasource {
	case DatasourceMock:
		return nil
	case DatasourceRest, DatasourceEpiserver:
		if c.CommerceBaseURL == "" {
			return fmt.Errorf("COMMERCE_BASE_URL is required for datasource %s", c.Datasource)
		}
		return nil
	default:
		return fmt.Errorf("unknown datasource %q", c.Datasource)
	}
}
