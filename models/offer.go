// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Detail keys, in the order they appear in OfferDetails.
const (
	DetailCondition = "condition"
	DetailCity      = "city"
	DetailBrand     = "brand"
	DetailSize      = "size"
	DetailColor     = "color"
)

// Offer is a listing published by a user.
//
// Pictures is never empty for a persisted offer and Pictures[0] always equals
// PreviewImage.
type Offer struct {
	ID           primitive.ObjectID `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	Price        int                `json:"price"`
	Details      OfferDetails       `json:"details"`
	PreviewImage Image              `json:"previewImage"`
	Pictures     []Image            `json:"pictures"`
	OwnerID      primitive.ObjectID `json:"ownerId"`

	// Owner is populated on reads only.
	Owner *OwnerSummary `json:"owner,omitempty"`
}

// OfferDetail is a single-key attribute map, e.g. {"brand": "Zara"}.
type OfferDetail map[string]string

// OfferDetails is the ordered attribute list of an offer.
type OfferDetails []OfferDetail

// NewOfferDetails builds the attribute list in its fixed order.
func NewOfferDetails(condition, city, brand, size, color string) OfferDetails {
	return OfferDetails{
		{DetailCondition: condition},
		{DetailCity: city},
		{DetailBrand: brand},
		{DetailSize: size},
		{DetailColor: color},
	}
}

// Get returns the value stored under key, or "" when absent.
func (d OfferDetails) Get(key string) string {
	for _, detail := range d {
		if v, ok := detail[key]; ok {
			return v
		}
	}
	return ""
}

// PublishOfferRequest carries the raw form values of a new offer.
// Price stays a string until validation has accepted it.
type PublishOfferRequest struct {
	Title       string
	Description string
	Price       string
	Condition   string
	City        string
	Brand       string
	Size        string
	Color       string
	Pictures    []UploadFile
}

// ModifyOfferRequest carries the replacement values of an existing offer.
// Only the first picture is used.
type ModifyOfferRequest PublishOfferRequest

// OfferQuery holds the raw query string of a listing search.
type OfferQuery struct {
	Title    string
	PriceMin string
	PriceMax string
	Sort     string
	Page     string
	Limit    string
}

// Sort orders accepted by OfferQuery.Sort.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
)

// OfferFilter is the validated, typed form of OfferQuery.
type OfferFilter struct {
	Title    string
	PriceMin *float64
	PriceMax *float64

	// Sort is "", SortPriceAsc or SortPriceDesc.
	Sort string

	// Skip and Limit are already derived from page and limit.
	// Limit 0 means no limit.
	Skip  int64
	Limit int64
}

// OfferPage is a page of search results.
type OfferPage struct {
	Count  int64   `json:"count"`
	Offers []Offer `json:"offers"`
}

// OfferEvent is published on offer lifecycle changes.
type OfferEvent struct {
	OfferID primitive.ObjectID `json:"offerId"`
	OwnerID primitive.ObjectID `json:"ownerId"`
	Title   string             `json:"title"`
	Price   int                `json:"price"`
}

// UserEvent is published when a user signs up.
type UserEvent struct {
	UserID   primitive.ObjectID `json:"userId"`
	Email    string             `json:"email"`
	Username string             `json:"username"`
}
