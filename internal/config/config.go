package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Server
	Port        int    `envconfig:"PORT" default:"3000"`
	Environment string `envconfig:"ENV" default:"development"`

	// Database
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	// AWS Rekognition
	AWSRegion string `envconfig:"AWS_REGION" default:"us-east-1"`

	// Matching
	SimilarityThreshold float64 `envconfig:"SIMILARITY_THRESHOLD" default:"80"`
	LivenessThreshold   float64 `envconfig:"LIVENESS_CONFIDENCE_THRESHOLD" default:"80"`

	// Security: when set, requests must carry it in X-API-Key
	APIKey string `envconfig:"API_KEY"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if cfg.SimilarityThreshold < 0 || cfg.SimilarityThreshold > 100 {
		return nil, fmt.Errorf("SIMILARITY_THRESHOLD must be between 0 and 100, got %v", cfg.SimilarityThreshold)
	}
	if cfg.LivenessThreshold < 0 || cfg.LivenessThreshold > 100 {
		return nil, fmt.Errorf("LIVENESS_CONFIDENCE_THRESHOLD must be between 0 and 100, got %v", cfg.LivenessThreshold)
	}

	return &cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
