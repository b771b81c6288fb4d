// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package events

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// AlertConsumer drains the alert topic and writes each alert to the
// structured log, giving operators a durable record without any external
// alerting infrastructure.
type AlertConsumer struct {
	subscriber message.Subscriber
	logger     zerolog.Logger
}

// NewAlertConsumer creates the log-sink alert consumer.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAlertConsumer(subscriber message.Subscriber, logger zerolog.Logger) *AlertConsumer {
	return &AlertConsumer{
		subscriber: subscriber,
		logger:     logger.With().Str("component", "alert_consumer").Logger(),
	}
}

// Serve consumes alerts until the context is canceled or the subscription
// channel closes. It satisfies suture.Service.
func (c *AlertConsumer) Serve(ctx context.Context) error {
	msgs, err := c.subscriber.Subscribe(ctx, AlertTopic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", AlertTopic, err)
	}

	c.logger.Info().Str("topic", AlertTopic).Msg("alert consumer started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			c.handle(msg)
		}
	}
}

func (c *AlertConsumer) handle(msg *message.Message) {
	defer msg.Ack()

	var event AlertEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		c.logger.Error().Err(err).Str("message_id", msg.UUID).Msg("malformed alert event")
		return
	}

	c.logger.Warn().
		Str("alert_id", event.ID).
		Str("type", event.Alert.Type).
		Str("severity", string(event.Alert.Severity)).
		Str("supplier_id", event.Alert.SupplierID).
		Str("window", event.Window.String()).
		Msg(event.Alert.Message)
}
