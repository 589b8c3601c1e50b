// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHTTPAddress aborts startup: the API has no other surface.
	errNoHTTPAddress = errors.New("handler: HTTP address is not configured")
	errNoServices    = errors.New("handler: services are nil")
)
