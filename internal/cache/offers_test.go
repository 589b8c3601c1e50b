// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/mock"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/models"
)

func newTestCache(t *testing.T) (store.OfferRepository, *mock.MockOfferRepository, *miniredis.Miniredis) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := mock.NewMockOfferRepository(ctrl)
	return NewOfferCache(repo, client, time.Hour, logger.Nop()), repo, mr
}

func testOffer() models.Offer {
	preview := models.Image{PublicID: "vinted/offers/x/preview", URL: "https://img/p.jpg", Folder: "vinted/offers/x"}
	return models.Offer{
		ID:           primitive.NewObjectID(),
		Title:        "Jacket",
		Description:  "Warm",
		Price:        40,
		Details:      models.NewOfferDetails("new", "Paris", "Zara", "M", "blue"),
		PreviewImage: preview,
		Pictures:     []models.Image{preview},
		OwnerID:      primitive.NewObjectID(),
	}
}

func TestOfferCache_ReadThrough(t *testing.T) {
	c, repo, mr := newTestCache(t)
	ctx := context.Background()
	offer := testOffer()

	repo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil).Times(1)

	first, err := c.FindOfferByID(ctx, offer.ID)
	require.NoError(t, err)
	second, err := c.FindOfferByID(ctx, offer.ID)
	require.NoError(t, err)

	assert.Equal(t, offer, first)
	assert.Equal(t, offer, second)
	assert.True(t, mr.Exists("offer:"+offer.ID.Hex()))
	assert.Equal(t, time.Hour, mr.TTL("offer:"+offer.ID.Hex()))
}

func TestOfferCache_MissIsNotCached(t *testing.T) {
	c, repo, mr := newTestCache(t)
	id := primitive.NewObjectID()

	repo.EXPECT().FindOfferByID(gomock.Any(), id).Return(models.Offer{}, store.ErrOfferNotFound).Times(2)

	_, err := c.FindOfferByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrOfferNotFound)
	_, err = c.FindOfferByID(context.Background(), id)
	assert.ErrorIs(t, err, store.ErrOfferNotFound)

	assert.False(t, mr.Exists("offer:"+id.Hex()))
}

func TestOfferCache_UpdateInvalidates(t *testing.T) {
	c, repo, mr := newTestCache(t)
	ctx := context.Background()
	offer := testOffer()

	data, err := json.Marshal(offer)
	require.NoError(t, err)
	require.NoError(t, mr.Set("offer:"+offer.ID.Hex(), string(data)))

	repo.EXPECT().UpdateOffer(gomock.Any(), offer).Return(nil)
	require.NoError(t, c.UpdateOffer(ctx, offer))

	assert.False(t, mr.Exists("offer:"+offer.ID.Hex()))
}

func TestOfferCache_FailedDeleteKeepsEntry(t *testing.T) {
	c, repo, mr := newTestCache(t)
	offer := testOffer()
	require.NoError(t, mr.Set("offer:"+offer.ID.Hex(), "{}"))

	repo.EXPECT().DeleteOffer(gomock.Any(), offer.ID).Return(store.ErrOfferNotFound)

	err := c.DeleteOffer(context.Background(), offer.ID)

	assert.ErrorIs(t, err, store.ErrOfferNotFound)
	assert.True(t, mr.Exists("offer:"+offer.ID.Hex()))
}

func TestOfferCache_DeleteInvalidates(t *testing.T) {
	c, repo, mr := newTestCache(t)
	offer := testOffer()
	require.NoError(t, mr.Set("offer:"+offer.ID.Hex(), "{}"))

	repo.EXPECT().DeleteOffer(gomock.Any(), offer.ID).Return(nil)

	require.NoError(t, c.DeleteOffer(context.Background(), offer.ID))
	assert.False(t, mr.Exists("offer:"+offer.ID.Hex()))
}

func TestOfferCache_CorruptEntryFallsBack(t *testing.T) {
	c, repo, mr := newTestCache(t)
	offer := testOffer()
	require.NoError(t, mr.Set("offer:"+offer.ID.Hex(), "not json"))

	repo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)

	got, err := c.FindOfferByID(context.Background(), offer.ID)

	require.NoError(t, err)
	assert.Equal(t, offer, got)
}

func TestOfferCache_RedisDownFallsBack(t *testing.T) {
	c, repo, mr := newTestCache(t)
	offer := testOffer()
	mr.Close()

	repo.EXPECT().FindOfferByID(gomock.Any(), offer.ID).Return(offer, nil)

	got, err := c.FindOfferByID(context.Background(), offer.ID)

	require.NoError(t, err)
	assert.Equal(t, offer, got)
}

func TestOfferCache_SearchesPassThrough(t *testing.T) {
	c, repo, _ := newTestCache(t)
	filter := models.OfferFilter{Title: "jacket", Limit: 10}
	offers := []models.Offer{testOffer()}

	repo.EXPECT().FindOffers(gomock.Any(), filter).Return(offers, int64(1), nil)
	repo.EXPECT().CreateOffer(gomock.Any(), offers[0]).Return(nil)

	got, count, err := c.FindOffers(context.Background(), filter)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, offers, got)
	assert.NoError(t, c.CreateOffer(context.Background(), offers[0]))
}
