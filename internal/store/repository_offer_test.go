// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/models"
)

func newMockOfferRepository(mt *mtest.T) *offerRepository {
	return &offerRepository{collection: mt.Coll, logger: logger.Nop()}
}

func offerDoc(id, owner primitive.ObjectID, title string, price int32) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "product_name", Value: title},
		{Key: "product_description", Value: "desc"},
		{Key: "product_price", Value: price},
		{Key: "product_details", Value: bson.A{bson.D{{Key: "condition", Value: "good"}}}},
		{Key: "product_image", Value: bson.D{{Key: "public_id", Value: "preview"}, {Key: "secure_url", Value: "https://img/p.jpg"}}},
		{Key: "product_pictures", Value: bson.A{bson.D{{Key: "public_id", Value: "preview"}, {Key: "secure_url", Value: "https://img/p.jpg"}}}},
		{Key: "owner", Value: owner},
	}
}

func TestOfferRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create offer", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		err := repo.CreateOffer(ctx, models.Offer{ID: primitive.NewObjectID(), Title: "Jacket"})

		assert.NoError(t, err)
	})

	mt.Run("find by id", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		id, owner := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch, offerDoc(id, owner, "Jacket", 40)))

		offer, err := repo.FindOfferByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, offer.ID)
		assert.Equal(t, owner, offer.OwnerID)
		assert.Equal(t, 40, offer.Price)
		assert.Equal(t, offer.PreviewImage, offer.Pictures[0])
	})

	mt.Run("find by id not found", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch))

		_, err := repo.FindOfferByID(ctx, primitive.NewObjectID())

		assert.ErrorIs(t, err, ErrOfferNotFound)
	})

	mt.Run("find offers returns page and total", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		owner := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch, bson.D{{Key: "n", Value: int32(25)}}),
			mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch,
				offerDoc(primitive.NewObjectID(), owner, "A", 10),
				offerDoc(primitive.NewObjectID(), owner, "B", 20),
			),
		)

		offers, count, err := repo.FindOffers(ctx, models.OfferFilter{Skip: 10, Limit: 10, Sort: models.SortPriceAsc})

		require.NoError(t, err)
		assert.Equal(t, int64(25), count)
		require.Len(t, offers, 2)
		assert.Equal(t, "A", offers[0].Title)
		assert.Equal(t, "B", offers[1].Title)
	})

	mt.Run("find offers with no match returns empty slice", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch),
			mtest.CreateCursorResponse(0, "vinted.offers", mtest.FirstBatch),
		)

		offers, count, err := repo.FindOffers(ctx, models.OfferFilter{Title: "nothing"})

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NotNil(t, offers)
		assert.Empty(t, offers)
	})

	mt.Run("update missing offer", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}, {Key: "nModified", Value: 0}})

		err := repo.UpdateOffer(ctx, models.Offer{ID: primitive.NewObjectID()})

		assert.ErrorIs(t, err, ErrOfferNotFound)
	})

	mt.Run("delete offer", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})

		assert.NoError(t, repo.DeleteOffer(ctx, primitive.NewObjectID()))
	})

	mt.Run("delete missing offer", func(mt *mtest.T) {
		repo := newMockOfferRepository(mt)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})

		assert.ErrorIs(t, repo.DeleteOffer(ctx, primitive.NewObjectID()), ErrOfferNotFound)
	})
}
