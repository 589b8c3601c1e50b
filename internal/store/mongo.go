// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
)

// Mongo owns the client connection pool and the application database.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logger.Logger
}

// NewMongo connects to cfg.URI and pings the primary within
// cfg.ConnectTimeout.
func NewMongo(ctx context.Context, cfg config.Mongo, logger *logger.Logger) (*Mongo, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout)

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectingMongo, err)
	}

	if err = client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: ping: %w", ErrConnectingMongo, err)
	}

	logger.Info().Str("database", cfg.Database).Msg("connected to mongo")

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
		logger: logger,
	}, nil
}

// Database returns the application database.
func (m *Mongo) Database() *mongo.Database {
	return m.db
}

// EnsureIndexes creates the unique indexes on user email and username and
// the lookup indexes used by authentication and search.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldEmail, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: fieldUsername, Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: fieldToken, Value: 1}}},
	}
	if _, err := m.db.Collection(usersCollection).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreatingIndexes, usersCollection, err)
	}

	offers := []mongo.IndexModel{
		{Keys: bson.D{{Key: fieldOfferOwner, Value: 1}}},
		{Keys: bson.D{{Key: fieldOfferPrice, Value: 1}}},
	}
	if _, err := m.db.Collection(offersCollection).Indexes().CreateMany(ctx, offers); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCreatingIndexes, offersCollection, err)
	}

	return nil
}

// Close disconnects the client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// duplicateKeyError classifies a unique index violation on the users
// collection. It returns nil when err is not a duplicate key error.
func duplicateKeyError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return nil
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, fieldUsername):
		return errors.Join(ErrUserAlreadyExists, ErrUsernameAlreadyExists)
	case strings.Contains(msg, fieldEmail):
		return errors.Join(ErrUserAlreadyExists, ErrEmailAlreadyExists)
	default:
		return ErrUserAlreadyExists
	}
}
