// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when an insert violates a unique
	// index of the users collection.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrEmailAlreadyExists and ErrUsernameAlreadyExists narrow
	// ErrUserAlreadyExists to the violated index. Both match
	// ErrUserAlreadyExists with errors.Is.
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrOfferNotFound is returned when no offer has the requested id.
	ErrOfferNotFound = errors.New("offer not found")
)

// Low-level database operation errors.
var (
	// ErrConnectingMongo is returned when the client cannot connect to or
	// ping the server.
	ErrConnectingMongo = errors.New("error connecting to mongo")

	// ErrCreatingIndexes is returned when index creation fails at startup,
	// typically because legacy data violates a unique index.
	ErrCreatingIndexes = errors.New("error creating indexes")

	// ErrDecodingDocument is returned when a stored document cannot be
	// decoded into its model.
	ErrDecodingDocument = errors.New("error decoding document")
)
