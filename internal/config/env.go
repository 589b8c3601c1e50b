// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the variable names of earlier deployments.
type legacyEnv struct {
	MongoConnectionString string `env:"MONGO_CONNECTION_STRING"`
	Port                  string `env:"PORT"`
	CloudinaryName        string `env:"CLOUDINARY_NAME"`
	CloudinaryAPIKey      string `env:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret   string `env:"CLOUDINARY_API_SECRET"`
	FrontendURL           string `env:"FRONTEND_URL"`
}

// parseLegacyEnv maps the legacy variable names onto a StructuredConfig.
// PORT alone becomes ":<port>".
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		Storage: Storage{
			Mongo: Mongo{URI: legacy.MongoConnectionString},
		},
		Images: Images{
			Cloudinary: Cloudinary{
				CloudName: legacy.CloudinaryName,
				APIKey:    legacy.CloudinaryAPIKey,
				APISecret: legacy.CloudinaryAPISecret,
			},
		},
		Server: Server{
			FrontendURL: legacy.FrontendURL,
		},
	}
	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}
