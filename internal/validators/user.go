// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-vinted/models"
)

// Field names for user validation.
const (
	FieldCredentials = "credentials"
	FieldUsername    = "username"
	FieldAvatar      = "avatar"
)

var signUpFields = []string{FieldRequired, FieldUsername, FieldAvatar}

// UserValidator implements the Validator interface for
// models.SignUpRequest and models.LoginRequest.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signUpFields
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			if req.Username == "" || req.Email == "" || req.Password == "" {
				return ErrMissingRequiredFields
			}
		case FieldUsername:
			if strings.ContainsFunc(req.Username, unicode.IsSpace) {
				return ErrUsernameHasSpaces
			}
		case FieldAvatar:
			if req.Avatar != nil && !req.Avatar.IsImage() {
				return ErrInvalidFileType
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCredentials}
	}

	for _, f := range fields {
		switch f {
		case FieldCredentials:
			if req.Email == "" || req.Password == "" {
				return ErrMissingRequiredFields
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
