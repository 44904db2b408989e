package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	ServiceEnvironment string `envconfig:"SERVICE_ENVIRONMENT" required:"true"`
	ServiceAPIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	SampleCountDefault int    `envconfig:"SAMPLE_COUNT_DEFAULT" default:"10"`
	SampleCountMax     int    `envconfig:"SAMPLE_COUNT_MAX" default:"50"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
