// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/internal/broker"
	"github.com/MKhiriev/go-vinted/internal/gateway"
	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/internal/metrics"
	"github.com/MKhiriev/go-vinted/internal/store"
	"github.com/MKhiriev/go-vinted/internal/utils"
	"github.com/MKhiriev/go-vinted/internal/validators"
	"github.com/MKhiriev/go-vinted/models"
)

const (
	saltLength  = 16
	tokenLength = 64

	avatarPublicID = "avatar"
)

// authService is the concrete implementation of AuthService.
// Sessions are opaque random tokens stored on the user record; passwords
// are stored as a digest of password+salt.
type authService struct {
	userRepository store.UserRepository
	images         gateway.ImageStore
	cleanup        CleanupQueue
	publisher      broker.Publisher
	validator      validators.Validator

	// hasher digests the passwords of new users. Existing users keep the
	// algorithm recorded on their document.
	hasher utils.PasswordHasher

	imagesRoot string

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewAuthService constructs an AuthService. hasherName selects the digest
// for new users and must be known to utils.NewPasswordHasher.
func NewAuthService(deps Dependencies, hasherName string, logger *logger.Logger) (AuthService, error) {
	hasher, err := utils.NewPasswordHasher(hasherName)
	if err != nil {
		return nil, err
	}

	return &authService{
		userRepository: deps.Storages.UserRepository,
		images:         deps.Images,
		cleanup:        deps.Cleanup,
		publisher:      deps.Publisher,
		validator:      validators.NewUserValidator(),
		hasher:         hasher,
		imagesRoot:     deps.ImagesRoot,
		metrics:        deps.Metrics,
		logger:         logger,
	}, nil
}

// SignUp registers a new user.
//
// Checks run in order and the first failure wins: required fields, username
// format, avatar type, username uniqueness, email uniqueness. The avatar, if
// any, is uploaded before the user is stored and removed again when storing
// fails.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("sign up validation failed: %w", err)
	}

	if err := a.ensureAvailable(ctx, req); err != nil {
		return models.User{}, err
	}

	salt := utils.RandomString(saltLength)
	user := models.User{
		ID:    primitive.NewObjectID(),
		Email: req.Email,
		Account: models.Account{
			Username: req.Username,
		},
		Newsletter:    req.Newsletter,
		Token:         utils.RandomString(tokenLength),
		Hash:          a.hasher.Hash(req.Password, salt),
		Salt:          salt,
		HashAlgorithm: a.hasher.Name(),
	}

	folder := gateway.UserFolder(a.imagesRoot, user.ID.Hex())
	if req.Avatar != nil {
		avatar, err := a.images.Upload(ctx, *req.Avatar, folder, avatarPublicID)
		if err != nil {
			log.Err(err).Str("folder", folder).Msg("avatar upload failed")
			return models.User{}, fmt.Errorf("avatar upload failed: %w", err)
		}
		user.Account.Avatar = &avatar
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if user.Account.Avatar != nil {
			removeFolder(ctx, a.images, a.cleanup, folder)
		}
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, store.ErrEmailAlreadyExists):
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.metrics.UserSignedUp()
	publish(ctx, a.publisher, broker.SubjectUserSignedUp, models.UserEvent{
		UserID:   created.ID,
		Email:    created.Email,
		Username: created.Account.Username,
	})

	return created, nil
}

// ensureAvailable runs two separate lookups so that a taken username and a
// taken email are reported with distinct errors.
func (a *authService) ensureAvailable(ctx context.Context, req models.SignUpRequest) error {
	_, err := a.userRepository.FindUserByUsername(ctx, req.Username)
	switch {
	case err == nil:
		return ErrUsernameTaken
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("user search by username failed: %w", err)
	}

	_, err = a.userRepository.FindUserByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return ErrEmailTaken
	case !errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("user search by email failed: %w", err)
	}

	return nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("login validation failed: %w", err)
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Msg("login with unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	hasher, err := utils.NewPasswordHasher(user.HashAlgorithm)
	if err != nil {
		log.Err(err).Str("id", user.ID.Hex()).Str("algorithm", user.HashAlgorithm).Msg("stored hash algorithm is unknown")
		return models.User{}, fmt.Errorf("user %s: %w", user.ID.Hex(), err)
	}

	if !utils.ComparePassword(hasher, req.Password, user.Salt, user.Hash) {
		log.Info().Str("id", user.ID.Hex()).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// Logout replaces the session token so the current one stops working.
func (a *authService) Logout(ctx context.Context, user models.User) error {
	if err := a.userRepository.UpdateToken(ctx, user.ID, utils.RandomString(tokenLength)); err != nil {
		return fmt.Errorf("token rotation failed: %w", err)
	}
	return nil
}

func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	user, err := a.userRepository.FindUserByToken(ctx, token)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUnauthorized
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return user, nil
}
