// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user and offer input before the service layer
// touches any store.
//
// OfferValidator accepts publish/modify forms and listing queries.
// UserValidator accepts signup and login requests. Both can be restricted
// to a subset of fields by name, which is how modify validates only the
// values a client actually sent.
//
// Checks run in a fixed order and the first failure is returned, so the
// error a client sees does not depend on map iteration or goroutine timing.
package validators

import "context"

// Validator checks obj, optionally only the named fields.
// Unsupported types yield ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
