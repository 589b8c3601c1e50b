// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds Redis read-through decorators for the repositories
// in package store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/models"
)

const offerKeyPrefix = "offer:"

// offerCache wraps an [store.OfferRepository] and keeps single offers in
// Redis. Searches always go to the wrapped repository. Redis failures are
// logged and never fail a request.
type offerCache struct {
	store.OfferRepository

	client *redis.Client
	ttl    time.Duration

	logger *logger.Logger
}

// NewRedisClient connects to the configured Redis server and pings it.
func NewRedisClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Address, err)
	}

	return client, nil
}

// NewOfferCache decorates next with a Redis cache of single offers.
func NewOfferCache(next store.OfferRepository, client *redis.Client, ttl time.Duration, logger *logger.Logger) store.OfferRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating offer cache")
	return &offerCache{
		OfferRepository: next,
		client:          client,
		ttl:             ttl,
		logger:          logger.Component("offer-cache"),
	}
}

func (c *offerCache) FindOfferByID(ctx context.Context, id primitive.ObjectID) (models.Offer, error) {
	log := logger.FromContext(ctx)
	key := offerKey(id)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var offer models.Offer
		if err = json.Unmarshal(data, &offer); err == nil {
			return offer, nil
		}
		log.Warn().Err(err).Str("key", key).Msg("dropping undecodable cached offer")
		c.invalidate(ctx, id)
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("key", key).Msg("offer cache read failed")
	}

	offer, err := c.OfferRepository.FindOfferByID(ctx, id)
	if err != nil {
		return models.Offer{}, err
	}

	if data, err = json.Marshal(offer); err == nil {
		if err = c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("offer cache write failed")
		}
	}

	return offer, nil
}

func (c *offerCache) UpdateOffer(ctx context.Context, offer models.Offer) error {
	if err := c.OfferRepository.UpdateOffer(ctx, offer); err != nil {
		return err
	}
	c.invalidate(ctx, offer.ID)
	return nil
}

func (c *offerCache) DeleteOffer(ctx context.Context, id primitive.ObjectID) error {
	if err := c.OfferRepository.DeleteOffer(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

func (c *offerCache) invalidate(ctx context.Context, id primitive.ObjectID) {
	if err := c.client.Del(ctx, offerKey(id)).Err(); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("key", offerKey(id)).Msg("offer cache invalidation failed")
	}
}

func offerKey(id primitive.ObjectID) string {
	return offerKeyPrefix + id.Hex()
}
