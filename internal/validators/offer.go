// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-vinted/models"
)

// Field name constants used to restrict offer validation to a subset of
// checks. They are listed in the order the checks run.
const (
	// FieldRequired checks that title, description, price and at least one
	// picture are present.
	FieldRequired = "required"

	// FieldPrice checks the price range and that it is a whole number.
	FieldPrice = "price"

	// FieldTitle checks the title length.
	FieldTitle = "title"

	// FieldDescription checks the description length.
	FieldDescription = "description"

	// FieldPictures checks the content type of every picture.
	FieldPictures = "pictures"

	// FieldPriceMin and FieldPriceMax check optional search bounds.
	FieldPriceMin = "price_min"
	FieldPriceMax = "price_max"

	// FieldSort checks the sort order of a search.
	FieldSort = "sort"
)

// Limits of offer values.
const (
	MinPrice             = 1
	MaxPrice             = 100000
	MaxTitleLength       = 50
	MaxDescriptionLength = 500
)

var offerFields = []string{FieldRequired, FieldPrice, FieldTitle, FieldDescription, FieldPictures}

var queryFields = []string{FieldPriceMin, FieldPriceMax, FieldSort}

// OfferValidator implements the Validator interface for
// models.PublishOfferRequest, models.ModifyOfferRequest and
// models.OfferQuery.
type OfferValidator struct {
}

// NewOfferValidator constructs a new OfferValidator
// and returns it as the Validator interface.
func NewOfferValidator() Validator {
	return &OfferValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted. With no fields every check of the type runs.
func (v *OfferValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PublishOfferRequest:
		return v.validateOfferForm(value, fields...)
	case *models.PublishOfferRequest:
		return v.validateOfferForm(*value, fields...)
	case models.ModifyOfferRequest:
		return v.validateOfferForm(models.PublishOfferRequest(value), fields...)
	case *models.ModifyOfferRequest:
		return v.validateOfferForm(models.PublishOfferRequest(*value), fields...)
	case models.OfferQuery:
		return v.validateOfferQuery(value, fields...)
	case *models.OfferQuery:
		return v.validateOfferQuery(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *OfferValidator) validateOfferForm(form models.PublishOfferRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = offerFields
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if form.Title == "" || form.Description == "" || form.Price == "" || len(form.Pictures) == 0 {
				return ErrMissingRequiredFields
			}
		case FieldPrice:
			if _, err := ParsePrice(form.Price); err != nil {
				return err
			}
		case FieldTitle:
			if utf8.RuneCountInString(form.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldDescription:
			if utf8.RuneCountInString(form.Description) > MaxDescriptionLength {
				return ErrDescriptionTooLong
			}
		case FieldPictures:
			for _, picture := range form.Pictures {
				if !picture.IsImage() {
					return ErrInvalidFileType
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *OfferValidator) validateOfferQuery(query models.OfferQuery, fields ...string) error {
	if len(fields) == 0 {
		fields = queryFields
	}

	for _, f := range fields {
		switch f {
		case FieldPriceMin:
			if query.PriceMin != "" {
				if _, ok := ParsePriceBound(query.PriceMin); !ok {
					return ErrInvalidPriceMin
				}
			}
		case FieldPriceMax:
			if query.PriceMax != "" {
				if _, ok := ParsePriceBound(query.PriceMax); !ok {
					return ErrInvalidPriceMax
				}
			}
		case FieldSort:
			if query.Sort != "" && query.Sort != models.SortPriceAsc && query.Sort != models.SortPriceDesc {
				return ErrInvalidSort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParsePrice converts a form price into whole currency units.
// It returns ErrInvalidPrice when the value is not a number in
// [MinPrice, MaxPrice] and ErrPriceNotWhole when it has a fraction.
func ParsePrice(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < MinPrice || f > MaxPrice {
		return 0, ErrInvalidPrice
	}
	if f != math.Trunc(f) {
		return 0, ErrPriceNotWhole
	}

	return int(f), nil
}

// ParsePriceBound converts a search bound. ok is false when s is not a
// number in [MinPrice, MaxPrice].
func ParsePriceBound(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || f < MinPrice || f > MaxPrice {
		return 0, false
	}
	return f, true
}
