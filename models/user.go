// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a marketplace account used for authentication and
// ownership checks.
// Credential fields (Hash, Salt, Token) must never be written to a response.
type User struct {
	// ID is the document identifier of the user.
	ID primitive.ObjectID `json:"id"`

	// Email is unique across users and immutable after signup.
	Email string `json:"email"`

	// Account holds the public profile of the user.
	Account Account `json:"account"`

	// Newsletter reports whether the user opted into the newsletter.
	Newsletter bool `json:"newsletter"`

	// Token is the opaque bearer credential. Rotated on logout.
	Token string `json:"-"`

	// Hash is the digest of password+salt produced by HashAlgorithm.
	Hash string `json:"-"`

	// Salt is the random per-user salt.
	Salt string `json:"-"`

	// HashAlgorithm names the digest used for Hash. Empty means sha256.
	HashAlgorithm string `json:"-"`
}

// Account is the public part of a user profile.
type Account struct {
	Username string `json:"username"`
	Avatar   *Image `json:"avatar,omitempty"`
}

// OwnerSummary is the owner projection embedded into offers on reads.
type OwnerSummary struct {
	ID      primitive.ObjectID `json:"id"`
	Account Account            `json:"account"`
}

// Summary returns the owner projection of u.
func (u User) Summary() *OwnerSummary {
	return &OwnerSummary{ID: u.ID, Account: u.Account}
}

// SignUpRequest carries the signup form values.
type SignUpRequest struct {
	Username   string
	Email      string
	Password   string
	Newsletter bool

	// Avatar is optional.
	Avatar *UploadFile
}

// LoginRequest carries login credentials from the query string, a form or
// a JSON body.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
