// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package broker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/MKhiriev/go-vinted/internal/config"
	"github.com/MKhiriev/go-vinted/internal/logger"
)

const clientName = "go-vinted"

// natsConn is the subset of *nats.Conn used by natsPublisher.
type natsConn interface {
	Publish(subject string, data []byte) error
	Drain() error
}

type natsPublisher struct {
	conn   natsConn
	logger *logger.Logger
}

// NewNATSPublisher connects to the configured NATS server.
func NewNATSPublisher(cfg config.Broker, logger *logger.Logger) (Publisher, error) {
	conn, err := nats.Connect(cfg.NATSURL,
		nats.Name(clientName),
		nats.ClosedHandler(func(*nats.Conn) {
			logger.Info().Msg("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn().Err(err).Msg("NATS disconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info().Str("url", conn.ConnectedUrl()).Msg("connected to NATS")

	return &natsPublisher{conn: conn, logger: logger.Component("nats")}, nil
}

func (p *natsPublisher) Publish(ctx context.Context, subject string, event any) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event for %s: %w", subject, err)
	}

	if err = p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}
	logger.FromContext(ctx).Debug().Str("subject", subject).Msg("published event")

	return nil
}

// Close drains pending messages before closing the connection.
func (p *natsPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		p.logger.Err(err).Msg("error draining NATS connection")
	}
}

type nopPublisher struct{}

// NewNopPublisher returns a [Publisher] that drops every event. It is used
// when no NATS URL is configured.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}

func (nopPublisher) Publish(context.Context, string, any) error { return nil }

func (nopPublisher) Close() {}
