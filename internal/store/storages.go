// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
)

// Storages aggregates the repositories built over one Mongo connection.
type Storages struct {
	UserRepository  UserRepository
	OfferRepository OfferRepository

	mongo *Mongo
}

// NewStorages connects to MongoDB and builds the repositories. Index
// creation failures are logged and do not prevent startup, since legacy
// data may already violate them.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	m, err := NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		return nil, err
	}

	if err := m.EnsureIndexes(ctx); err != nil {
		logger.Warn().Err(err).Msg("indexes were not created")
	}

	return &Storages{
		UserRepository:  NewUserRepository(m.Database(), logger),
		OfferRepository: NewOfferRepository(m.Database(), logger),
		mongo:           m,
	}, nil
}

// Close releases the Mongo connection pool.
func (s *Storages) Close(ctx context.Context) error {
	if s.mongo == nil {
		return nil
	}
	return s.mongo.Close(ctx)
}
