// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package broker publishes domain lifecycle events. Events are best effort:
// a failed publish is logged by the caller and never fails a request.
package broker

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/publisher_mock.go -package=mock

// Subjects of the published events.
const (
	SubjectOfferPublished = "offers.published"
	SubjectOfferModified  = "offers.modified"
	SubjectOfferDeleted   = "offers.deleted"
	SubjectUserSignedUp   = "users.signed_up"
)

// Publisher sends an event encoded as JSON to subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, event any) error
	Close()
}
