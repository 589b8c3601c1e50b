// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/models"
)

// UserRepository persists users in the users collection.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByToken(ctx context.Context, token string) (models.User, error)

	// FindAccountsByIDs returns the public account of every listed user that
	// exists. Missing ids are absent from the map.
	FindAccountsByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.Account, error)

	UpdateToken(ctx context.Context, id primitive.ObjectID, token string) error
}

// OfferRepository persists offers in the offers collection.
type OfferRepository interface {
	CreateOffer(ctx context.Context, offer models.Offer) error
	FindOfferByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error)

	// FindOffers returns one page of the offers matching filter together
	// with the total number of matches.
	FindOffers(ctx context.Context, filter models.OfferFilter) ([]models.Offer, int64, error)

	// UpdateOffer replaces the stored offer with the same id.
	UpdateOffer(ctx context.Context, offer models.Offer) error
	DeleteOffer(ctx context.Context, id primitive.ObjectID) error
}
