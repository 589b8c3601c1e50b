// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import "errors"

var (
	ErrRemoteRequestFailed = errors.New("image store request failed")
	ErrUnauthorized        = errors.New("image store rejected credentials")
	ErrNotFound            = errors.New("image not found")
	ErrEmptyFile           = errors.New("empty file")
	ErrUnknownBackend      = errors.New("unknown image store backend")
)
