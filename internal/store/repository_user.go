// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/models"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] over the users
// collection of db.
func NewUserRepository(db *mongo.Database, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: db.Collection(usersCollection),
		logger:     logger,
	}
}

// CreateUser inserts user. The id must already be set.
//
// Error handling:
//   - unique index violation → [ErrUserAlreadyExists], narrowed to
//     [ErrEmailAlreadyExists] or [ErrUsernameAlreadyExists] when the index
//     is known.
//   - any other driver error → wrapped.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if _, err := r.collection.InsertOne(ctx, newUserDocument(user)); err != nil {
		if dupErr := duplicateKeyError(err); dupErr != nil {
			log.Warn().Err(err).Str("func", "*userRepository.CreateUser").Msg("duplicate user")
			return models.User{}, dupErr
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return r.findOne(ctx, bson.M{fieldID: id})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{fieldEmail: email})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.M{fieldUsername: username})
}

// FindUserByToken returns the user holding token. An empty token never
// matches.
func (r *userRepository) FindUserByToken(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{fieldToken: token})
}

func (r *userRepository) FindAccountsByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Account, error) {
	accounts := make(map[primitive.ObjectID]models.Account, len(ids))
	if len(ids) == 0 {
		return accounts, nil
	}

	opts := options.Find().SetProjection(bson.M{fieldAccount: 1})
	cursor, err := r.collection.Find(ctx, bson.M{fieldID: bson.M{"$in": ids}}, opts)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindAccountsByIDs").Msg("error finding accounts")
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc userDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
		}
		accounts[doc.ID] = doc.Account.toModel()
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return accounts, nil
}

// UpdateToken replaces the session token of the user with id.
func (r *userRepository) UpdateToken(ctx context.Context, id primitive.ObjectID, token string) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{fieldID: id}, bson.M{"$set": bson.M{fieldToken: token}})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.UpdateToken").Msg("error updating token")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.findOne").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.toModel(), nil
}
