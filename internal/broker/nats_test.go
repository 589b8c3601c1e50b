// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/internal/logger"
	"github.com/MKhiriev/go-vinted/models"
)

type recordedMessage struct {
	subject string
	data    []byte
}

type fakeConn struct {
	published  []recordedMessage
	publishErr error
	drained    bool
}

func (f *fakeConn) Publish(subject string, data []byte) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, recordedMessage{subject: subject, data: data})
	return nil
}

func (f *fakeConn) Drain() error {
	f.drained = true
	return nil
}

func TestNATSPublisher_Publish(t *testing.T) {
	conn := &fakeConn{}
	p := &natsPublisher{conn: conn, logger: logger.Nop()}

	event := models.OfferEvent{
		OfferID: primitive.NewObjectID(),
		OwnerID: primitive.NewObjectID(),
		Title:   "Jacket",
		Price:   40,
	}
	require.NoError(t, p.Publish(context.Background(), SubjectOfferPublished, event))

	require.Len(t, conn.published, 1)
	assert.Equal(t, SubjectOfferPublished, conn.published[0].subject)

	var got models.OfferEvent
	require.NoError(t, json.Unmarshal(conn.published[0].data, &got))
	assert.Equal(t, event, got)
}

func TestNATSPublisher_PublishErrors(t *testing.T) {
	conn := &fakeConn{publishErr: errors.New("nats: connection closed")}
	p := &natsPublisher{conn: conn, logger: logger.Nop()}

	err := p.Publish(context.Background(), SubjectOfferDeleted, models.OfferEvent{})
	assert.ErrorContains(t, err, SubjectOfferDeleted)

	err = p.Publish(context.Background(), SubjectOfferDeleted, make(chan int))
	assert.ErrorContains(t, err, "marshal")
}

func TestNATSPublisher_CloseDrains(t *testing.T) {
	conn := &fakeConn{}
	p := &natsPublisher{conn: conn, logger: logger.Nop()}

	p.Close()

	assert.True(t, conn.drained)
}

func TestNopPublisher(t *testing.T) {
	p := NewNopPublisher()

	assert.NoError(t, p.Publish(context.Background(), SubjectUserSignedUp, models.UserEvent{}))
	p.Close()
}
