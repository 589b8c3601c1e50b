// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive upload limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates a missing Mongo URI or database.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidImagesConfigs indicates an unknown backend or missing
	// credentials for the selected one.
	ErrInvalidImagesConfigs = errors.New("invalid images configuration")
	// ErrInvalidAppConfigs indicates an unknown password digest or a
	// negative page size cap.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive cleanup interval,
	// attempt count or queue size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
