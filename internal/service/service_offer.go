// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/internal/broker"
	"github.com/MKhiriev/go-vinted/internal/gateway"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/internal/validators"
	"github.com/MKhiriev/go-vinted/models"
)

const previewPublicID = "preview"

// offerService is the concrete implementation of OfferService.
//
// Writes span two systems with no shared transaction: the image store and
// the offers collection. Publishing uploads first and persists last; when a
// later step fails the uploaded folder is removed again, and a folder that
// cannot be removed is handed to the cleanup queue.
type offerService struct {
	offerRepository store.OfferRepository
	userRepository  store.UserRepository
	images          gateway.ImageStore
	cleanup         CleanupQueue
	publisher       broker.Publisher
	validator       validators.Validator

	imagesRoot  string
	maxPageSize int

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewOfferService(deps Dependencies, maxPageSize int, logger *logger.Logger) OfferService {
	return &offerService{
		offerRepository: deps.Storages.OfferRepository,
		userRepository:  deps.Storages.UserRepository,
		images:          deps.Images,
		cleanup:         deps.Cleanup,
		publisher:       deps.Publisher,
		validator:       validators.NewOfferValidator(),
		imagesRoot:      deps.ImagesRoot,
		maxPageSize:     maxPageSize,
		metrics:         deps.Metrics,
		logger:          logger,
	}
}

// PublishOffer validates req, uploads its pictures in order and stores the
// offer. The first picture becomes the preview.
func (s *offerService) PublishOffer(ctx context.Context, owner models.User, req models.PublishOfferRequest) (models.Offer, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Offer{}, fmt.Errorf("offer validation failed: %w", err)
	}
	price, err := validators.ParsePrice(req.Price)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer validation failed: %w", err)
	}

	offer := models.Offer{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Description: req.Description,
		Price:       price,
		Details:     models.NewOfferDetails(req.Condition, req.City, req.Brand, req.Size, req.Color),
		Pictures:    make([]models.Image, 0, len(req.Pictures)),
		OwnerID:     owner.ID,
	}
	folder := gateway.OfferFolder(s.imagesRoot, offer.ID.Hex())

	for i, file := range req.Pictures {
		publicID := ""
		if i == 0 {
			publicID = previewPublicID
		}

		image, err := s.images.Upload(ctx, file, folder, publicID)
		if err != nil {
			log.Err(err).Str("folder", folder).Int("picture", i).Msg("picture upload failed")
			if i > 0 {
				removeFolder(ctx, s.images, s.cleanup, folder)
			}
			return models.Offer{}, fmt.Errorf("picture %d upload failed: %w", i, err)
		}

		if i == 0 {
			offer.PreviewImage = image
		}
		offer.Pictures = append(offer.Pictures, image)
	}

	if err = s.offerRepository.CreateOffer(ctx, offer); err != nil {
		log.Err(err).Str("offer_id", offer.ID.Hex()).Msg("offer creation ended with error")
		removeFolder(ctx, s.images, s.cleanup, folder)
		return models.Offer{}, fmt.Errorf("offer creation ended with error: %w", err)
	}

	s.metrics.OfferPublished()
	publish(ctx, s.publisher, broker.SubjectOfferPublished, newOfferEvent(offer))

	offer.Owner = owner.Summary()
	return offer, nil
}

func (s *offerService) GetOffer(ctx context.Context, id string) (models.Offer, error) {
	offerID, err := parseOfferID(id)
	if err != nil {
		return models.Offer{}, err
	}

	offer, err := s.offerRepository.FindOfferByID(ctx, offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer search failed: %w", err)
	}

	owner, err := s.userRepository.FindUserByID(ctx, offer.OwnerID)
	switch {
	case err == nil:
		offer.Owner = owner.Summary()
	case !errors.Is(err, store.ErrUserNotFound):
		return models.Offer{}, fmt.Errorf("owner search failed: %w", err)
	}

	return offer, nil
}

// GetOffers runs a filtered, sorted, paginated search. Count is the number
// of matches regardless of paging.
func (s *offerService) GetOffers(ctx context.Context, query models.OfferQuery) (models.OfferPage, error) {
	if err := s.validator.Validate(ctx, query); err != nil {
		return models.OfferPage{}, fmt.Errorf("offer query validation failed: %w", err)
	}

	offers, count, err := s.offerRepository.FindOffers(ctx, s.newOfferFilter(query))
	if err != nil {
		return models.OfferPage{}, fmt.Errorf("offer search failed: %w", err)
	}

	if err = s.populateOwners(ctx, offers); err != nil {
		return models.OfferPage{}, err
	}

	return models.OfferPage{Count: count, Offers: offers}, nil
}

// ModifyOffer replaces the text fields, the details and the preview of an
// offer owned by actor. Only the first supplied picture is used.
func (s *offerService) ModifyOffer(ctx context.Context, actor models.User, id string, req models.ModifyOfferRequest) (models.Offer, error) {
	log := logger.FromContext(ctx)

	offer, err := s.findOwnedOffer(ctx, actor, id, ErrForbiddenModify)
	if err != nil {
		return models.Offer{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.Offer{}, fmt.Errorf("offer validation failed: %w", err)
	}
	price, err := validators.ParsePrice(req.Price)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer validation failed: %w", err)
	}

	folder := gateway.OfferFolder(s.imagesRoot, offer.ID.Hex())
	preview, err := s.images.Upload(ctx, req.Pictures[0], folder, previewPublicID)
	if err != nil {
		log.Err(err).Str("folder", folder).Msg("preview upload failed")
		return models.Offer{}, fmt.Errorf("preview upload failed: %w", err)
	}

	// Overwrite replaces the old preview in place; only a preview under
	// another public id (legacy records) is left to destroy.
	previous := offer.PreviewImage
	if !previous.IsZero() && previous.PublicID != preview.PublicID {
		if err = s.images.Destroy(ctx, previous.PublicID); err != nil {
			log.Warn().Err(err).Str("public_id", previous.PublicID).Msg("previous preview not destroyed")
		}
	}

	offer.Title = req.Title
	offer.Description = req.Description
	offer.Price = price
	offer.Details = models.NewOfferDetails(req.Condition, req.City, req.Brand, req.Size, req.Color)
	offer.PreviewImage = preview
	if len(offer.Pictures) == 0 {
		offer.Pictures = []models.Image{preview}
	} else {
		offer.Pictures[0] = preview
	}

	if err = s.offerRepository.UpdateOffer(ctx, offer); err != nil {
		log.Err(err).Str("offer_id", offer.ID.Hex()).Msg("offer update ended with error")
		return models.Offer{}, fmt.Errorf("offer update ended with error: %w", err)
	}

	s.metrics.OfferModified()
	publish(ctx, s.publisher, broker.SubjectOfferModified, newOfferEvent(offer))

	offer.Owner = actor.Summary()
	return offer, nil
}

// DeleteOffer removes the pictures of an offer owned by actor, then the
// offer. The offer is kept when its pictures cannot be removed.
func (s *offerService) DeleteOffer(ctx context.Context, actor models.User, id string) (models.Offer, error) {
	offer, err := s.findOwnedOffer(ctx, actor, id, ErrForbiddenDelete)
	if err != nil {
		return models.Offer{}, err
	}

	folder := gateway.OfferFolder(s.imagesRoot, offer.ID.Hex())
	if err = gateway.RemoveFolder(ctx, s.images, folder); err != nil {
		logger.FromContext(ctx).Err(err).Str("folder", folder).Msg("offer pictures not removed")
		return models.Offer{}, fmt.Errorf("offer pictures removal failed: %w", err)
	}

	if err = s.offerRepository.DeleteOffer(ctx, offer.ID); err != nil {
		return models.Offer{}, fmt.Errorf("offer deletion ended with error: %w", err)
	}

	s.metrics.OfferDeleted()
	publish(ctx, s.publisher, broker.SubjectOfferDeleted, newOfferEvent(offer))

	return offer, nil
}

// findOwnedOffer checks, in order: id syntax, existence, ownership.
func (s *offerService) findOwnedOffer(ctx context.Context, actor models.User, id string, forbidden error) (models.Offer, error) {
	offerID, err := parseOfferID(id)
	if err != nil {
		return models.Offer{}, err
	}

	offer, err := s.offerRepository.FindOfferByID(ctx, offerID)
	if err != nil {
		return models.Offer{}, fmt.Errorf("offer search failed: %w", err)
	}

	if offer.OwnerID != actor.ID {
		logger.FromContext(ctx).Warn().
			Str("offer_id", offer.ID.Hex()).
			Str("user_id", actor.ID.Hex()).
			Msg("caller is not the owner")
		return models.Offer{}, forbidden
	}

	return offer, nil
}

func (s *offerService) populateOwners(ctx context.Context, offers []models.Offer) error {
	if len(offers) == 0 {
		return nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(offers))
	ids := make([]primitive.ObjectID, 0, len(offers))
	for _, offer := range offers {
		if _, ok := seen[offer.OwnerID]; !ok {
			seen[offer.OwnerID] = struct{}{}
			ids = append(ids, offer.OwnerID)
		}
	}

	accounts, err := s.userRepository.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("owner search failed: %w", err)
	}

	for i := range offers {
		if account, ok := accounts[offers[i].OwnerID]; ok {
			offers[i].Owner = &models.OwnerSummary{ID: offers[i].OwnerID, Account: account}
		}
	}

	return nil
}

// newOfferFilter converts an already validated query. page falls back to 1
// and limit to none; the limit is capped by maxPageSize when that is set.
func (s *offerService) newOfferFilter(query models.OfferQuery) models.OfferFilter {
	filter := models.OfferFilter{
		Title: query.Title,
		Sort:  query.Sort,
	}
	if v, ok := validators.ParsePriceBound(query.PriceMin); ok {
		filter.PriceMin = &v
	}
	if v, ok := validators.ParsePriceBound(query.PriceMax); ok {
		filter.PriceMax = &v
	}

	page := parsePositive(query.Page)
	if page == 0 {
		page = 1
	}
	limit := parsePositive(query.Limit)
	if s.maxPageSize > 0 && (limit == 0 || limit > int64(s.maxPageSize)) {
		limit = int64(s.maxPageSize)
	}

	filter.Limit = limit
	filter.Skip = pageOffset(page, limit)
	return filter
}

// pageOffset saturates at math.MaxInt64 so a huge page yields an empty
// result instead of a wrapped offset.
func pageOffset(page, limit int64) int64 {
	if limit > 0 && page-1 > math.MaxInt64/limit {
		return math.MaxInt64
	}
	return (page - 1) * limit
}

// parsePositive returns s as an integer, or 0 when it is not a positive one.
// Values beyond int64 saturate.
func parsePositive(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if errors.Is(err, strconv.ErrRange) && n > 0 {
		return n
	}
	if err != nil || n < 1 {
		return 0
	}
	return n
}

func parseOfferID(id string) (primitive.ObjectID, error) {
	offerID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidOfferID, id)
	}
	return offerID, nil
}

func newOfferEvent(offer models.Offer) models.OfferEvent {
	return models.OfferEvent{
		OfferID: offer.ID,
		OwnerID: offer.OwnerID,
		Title:   offer.Title,
		Price:   offer.Price,
	}
}
