// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-vinted/models"
)

// offerFilterQuery translates a search filter into a match document.
// The title matches as a case-insensitive literal substring.
func offerFilterQuery(filter models.OfferFilter) bson.M {
	query := bson.M{}

	if filter.Title != "" {
		query[fieldOfferTitle] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Title), Options: "i"}
	}

	price := bson.M{}
	if filter.PriceMin != nil {
		price["$gte"] = *filter.PriceMin
	}
	if filter.PriceMax != nil {
		price["$lte"] = *filter.PriceMax
	}
	if len(price) > 0 {
		query[fieldOfferPrice] = price
	}

	return query
}

// offerFindOptions applies sort, skip and limit. Without a sort order the
// natural order of the collection is kept.
func offerFindOptions(filter models.OfferFilter) *options.FindOptions {
	opts := options.Find()

	switch filter.Sort {
	case models.SortPriceAsc:
		opts.SetSort(bson.D{{Key: fieldOfferPrice, Value: 1}, {Key: fieldID, Value: 1}})
	case models.SortPriceDesc:
		opts.SetSort(bson.D{{Key: fieldOfferPrice, Value: -1}, {Key: fieldID, Value: 1}})
	}

	if filter.Skip > 0 {
		opts.SetSkip(filter.Skip)
	}
	if filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	return opts
}
