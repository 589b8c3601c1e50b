// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/go-vinted/internal/utils"
)

// defaultConfig returns the values used when no source sets a field.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:       "debug",
			PasswordHasher: utils.HashAlgorithmSHA256,
		},
		Storage: Storage{
			Mongo: Mongo{
				Database:       "vinted",
				ConnectTimeout: 10 * time.Second,
			},
			Redis: Redis{
				OfferTTL: time.Hour,
			},
		},
		Images: Images{
			Backend: ImagesBackendCloudinary,
			Root:    "vinted",
			Cloudinary: Cloudinary{
				BaseURL: "https://api.cloudinary.com",
				Timeout: 30 * time.Second,
			},
		},
		Server: Server{
			HTTPAddress:     ":3000",
			FrontendURL:     "http://localhost:5173",
			MaxUploadSize:   32 << 20,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    60 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Workers: Workers{
			CleanupInterval:    time.Minute,
			CleanupMaxAttempts: 5,
			CleanupQueueSize:   128,
		},
	}
}
