// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// The SDK reports rejected calls through the error message of the result,
// not through the returned error.
var (
	unauthorizedMessages = []string{"invalid signature", "api key", "api_key", "unauthorized", "not allowed"}
	notFoundMessages     = []string{"not found", "can't find"}
)

// remoteError classifies a failed SDK call. It returns nil when the call
// neither failed nor carried an error message.
func remoteError(op string, err error, message string) error {
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrRemoteRequestFailed, op, err)
	}
	if message == "" {
		return nil
	}

	lower := strings.ToLower(message)
	switch {
	case containsAny(lower, unauthorizedMessages):
		return fmt.Errorf("%w: %w: %s", ErrRemoteRequestFailed, ErrUnauthorized, message)
	case containsAny(lower, notFoundMessages):
		return fmt.Errorf("%w: %w: %s", ErrRemoteRequestFailed, ErrNotFound, message)
	default:
		return fmt.Errorf("%w: %s: %s", ErrRemoteRequestFailed, op, message)
	}
}

// errorMessage extracts the error message of an SDK result. A nil result
// has none.
func errorMessage(result any) string {
	switch r := result.(type) {
	case *uploader.UploadResult:
		if r != nil {
			return r.Error.Message
		}
	case *uploader.DestroyResult:
		if r != nil {
			return r.Error.Message
		}
	case *admin.DeleteAssetsResult:
		if r != nil {
			return r.Error.Message
		}
	case *admin.DeleteFolderResult:
		if r != nil {
			return r.Error.Message
		}
	}
	return ""
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
