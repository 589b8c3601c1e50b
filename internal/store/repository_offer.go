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

	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/models"
)

// offerRepository is the MongoDB-backed implementation of [OfferRepository].
type offerRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewOfferRepository constructs an [OfferRepository] over the offers
// collection of db.
func NewOfferRepository(db *mongo.Database, logger *logger.Logger) OfferRepository {
	logger.Debug().Msg("creating offer repository")
	return &offerRepository{
		collection: db.Collection(offersCollection),
		logger:     logger,
	}
}

func (r *offerRepository) CreateOffer(ctx context.Context, offer models.Offer) error {
	if _, err := r.collection.InsertOne(ctx, newOfferDocument(offer)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*offerRepository.CreateOffer").Msg("error inserting offer")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

func (r *offerRepository) FindOfferByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error) {
	var doc offerDocument
	err := r.collection.FindOne(ctx, bson.M{fieldID: id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Offer{}, ErrOfferNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*offerRepository.FindOfferByID").Msg("error finding offer")
		return models.Offer{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return doc.toModel(), nil
}

// FindOffers counts every match first, then reads the requested page.
func (r *offerRepository) FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, int64, error) {
	log := logger.FromContext(ctx)
	query := offerFilterQuery(filter)

	count, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOffers").Msg("error counting offers")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, offerFindOptions(filter))
	if err != nil {
		log.Err(err).Str("func", "*offerRepository.FindOffers").Msg("error finding offers")
		return nil, 0, fmt.Errorf("unexpected DB error: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []offerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	offers := make([]models.Offer, 0, len(docs))
	for _, doc := range docs {
		offers = append(offers, doc.toModel())
	}

	return offers, count, nil
}

func (r *offerRepository) UpdateOffer(ctx context.Context, offer models.Offer) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{fieldID: offer.ID}, newOfferDocument(offer))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*offerRepository.UpdateOffer").Msg("error replacing offer")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOfferNotFound
	}

	return nil
}

func (r *offerRepository) DeleteOffer(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{fieldID: id})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*offerRepository.DeleteOffer").Msg("error deleting offer")
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrOfferNotFound
	}

	return nil
}
