// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrEmptyToken is returned when nothing is left of the header once the
	// "Bearer " prefix is stripped.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors. They are mapped to 400, or 413 for an oversized
// body.
var (
	ErrInvalidForm     = errors.New("request form cannot be parsed")
	ErrRequestTooLarge = errors.New("request body too large")
)

// errNoUserInContext means a protected handler was mounted without auth.
var errNoUserInContext = errors.New("no authenticated user in request context")
