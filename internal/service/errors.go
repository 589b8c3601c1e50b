// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidOfferID  = errors.New("invalid offer id")
	ErrForbiddenModify = errors.New("caller does not own the offer to modify")
	ErrForbiddenDelete = errors.New("caller does not own the offer to delete")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
