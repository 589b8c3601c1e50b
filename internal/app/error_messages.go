// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-vinted HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings written into the
// {"message": ...} body of HTTP responses. Keeping them in one place keeps the
// wording identical to what existing API clients already match on.
package app

const (
	// MsgHello is the health banner served on GET /.
	MsgHello = "Hello Vinted API"

	// MsgEndpointNotFound is returned for unmatched routes and methods.
	MsgEndpointNotFound = "Endpoint not found"

	// MsgUnknownError is returned for every failure the client cannot act on.
	// The underlying error is logged, never sent.
	MsgUnknownError = "An unknown error occurred"

	// MsgUnauthorized is returned by the auth middleware when the bearer
	// token is missing or matches no user.
	MsgUnauthorized = "Unauthorized"

	// MsgMissingRequiredFields is returned when a mandatory form value or
	// file is absent.
	MsgMissingRequiredFields = "Missing required fields"

	MsgInvalidPrice       = "Price must be a number between 1 and 100000"
	MsgPriceNotWhole      = "Price must be a whole number"
	MsgTitleTooLong       = "Title must be 50 characters or less"
	MsgDescriptionTooLong = "Description must be 500 characters or less"
	MsgInvalidFileType    = "Invalid file type"
	MsgInvalidPriceMin    = "PriceMin must be a number between 1 and 100000"
	MsgInvalidPriceMax    = "PriceMax must be a number between 1 and 100000"
	MsgInvalidSort        = "Invalid sort parameter"

	// MsgInvalidOfferID is returned when a path id is not a valid ObjectID.
	MsgInvalidOfferID = "Invalid offer ID"

	MsgOfferNotFound = "Offer not found"

	MsgModifyForbidden = "You are not allowed to modify this offer"
	MsgDeleteForbidden = "You are not allowed to delete this offer"

	// MsgOfferModified and MsgOfferDeleted take the offer title and the
	// username of the actor.
	MsgOfferModified = "Offer %s modified successfully by %s"
	MsgOfferDeleted  = "Offer %s deleted successfully by %s"

	// MsgUsernameHasSpaces is sent with 406 Not Acceptable.
	MsgUsernameHasSpaces = "Username cannot contain spaces"
	MsgUsernameTaken     = "Username already taken"
	MsgEmailTaken        = "Email already taken"

	// MsgUserCreated takes the email of the new user.
	MsgUserCreated = "User created: %s"

	// MsgInvalidCredentials is returned for an unknown email and for a
	// wrong password alike.
	MsgInvalidCredentials = "Invalid credentials"

	MsgUserLoggedOut = "User logged out"

	// MsgInvalidForm is returned when the request body cannot be parsed.
	MsgInvalidForm = "Invalid form data"

	// MsgRequestTooLarge is returned when the body exceeds the upload limit.
	MsgRequestTooLarge = "Request entity too large"
)
