// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vinted/internal/utils"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Every failing group is reported.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: address is required", ErrInvalidServerConfigs))
	}
	if cfg.Server.MaxUploadSize <= 0 {
		errs = append(errs, fmt.Errorf("%w: max upload size must be positive", ErrInvalidServerConfigs))
	}

	if cfg.Storage.Mongo.URI == "" {
		errs = append(errs, fmt.Errorf("%w: mongo uri is required", ErrInvalidStorageConfigs))
	}
	if cfg.Storage.Mongo.Database == "" {
		errs = append(errs, fmt.Errorf("%w: mongo database is required", ErrInvalidStorageConfigs))
	}

	if err := cfg.Images.validate(); err != nil {
		errs = append(errs, err)
	}

	if _, err := utils.NewPasswordHasher(cfg.App.PasswordHasher); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}
	if cfg.App.MaxPageSize < 0 {
		errs = append(errs, fmt.Errorf("%w: max page size must not be negative", ErrInvalidAppConfigs))
	}

	if cfg.Workers.CleanupInterval <= 0 || cfg.Workers.CleanupMaxAttempts <= 0 || cfg.Workers.CleanupQueueSize <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

func (i Images) validate() error {
	switch i.Backend {
	case ImagesBackendCloudinary:
		c := i.Cloudinary
		if c.CloudName == "" || c.APIKey == "" || c.APISecret == "" {
			return fmt.Errorf("%w: cloudinary name, api key and api secret are required", ErrInvalidImagesConfigs)
		}
	case ImagesBackendMinIO:
		m := i.MinIO
		if m.Endpoint == "" || m.AccessKey == "" || m.SecretKey == "" || m.Bucket == "" {
			return fmt.Errorf("%w: minio endpoint, keys and bucket are required", ErrInvalidImagesConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidImagesConfigs, i.Backend)
	}

	if i.Root == "" {
		return fmt.Errorf("%w: root folder is required", ErrInvalidImagesConfigs)
	}

	return nil
}
