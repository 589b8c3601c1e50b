// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-vinted/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	// SignUp creates a user with a fresh salt and session token. The
	// returned user carries the token, callers must not expose it.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// Login returns the user matching the credentials, or
	// ErrInvalidCredentials whether the email or the password was wrong.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	// Logout rotates the session token of user.
	Logout(ctx context.Context, user models.User) error

	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (models.User, error)
}

type OfferService interface {
	PublishOffer(ctx context.Context, owner models.User, req models.PublishOfferRequest) (models.Offer, error)
	GetOffer(ctx context.Context, id string) (models.Offer, error)
	GetOffers(ctx context.Context, query models.OfferQuery) (models.OfferPage, error)

	// ModifyOffer returns the updated offer.
	ModifyOffer(ctx context.Context, actor models.User, id string, req models.ModifyOfferRequest) (models.Offer, error)

	// DeleteOffer returns the removed offer.
	DeleteOffer(ctx context.Context, actor models.User, id string) (models.Offer, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// CleanupQueue accepts image folders whose removal failed.
type CleanupQueue interface {
	Enqueue(folder string) bool
}
