// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPrice          = errors.New("price must be a number between 1 and 100000")
	ErrPriceNotWhole         = errors.New("price must be a whole number")
	ErrTitleTooLong          = errors.New("title is too long")
	ErrDescriptionTooLong    = errors.New("description is too long")
	ErrInvalidFileType       = errors.New("invalid file type")
	ErrInvalidPriceMin       = errors.New("invalid price min")
	ErrInvalidPriceMax       = errors.New("invalid price max")
	ErrInvalidSort           = errors.New("invalid sort parameter")
	ErrUsernameHasSpaces     = errors.New("username contains spaces")
)
