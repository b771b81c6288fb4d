// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package events

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vendorscope/vendorscope/internal/metrics"
	"github.com/vendorscope/vendorscope/internal/scoring"
)

// AlertEvent is the wire envelope for one published alert.
type AlertEvent struct {
	ID          string         `json:"id"`
	Window      scoring.Window `json:"window"`
	Alert       scoring.Alert  `json:"alert"`
	PublishedAt time.Time      `json:"published_at"`
}

// AlertPublisher publishes scoring alerts to the bus. It implements the
// scoring engine's AlertSink.
type AlertPublisher struct {
	publisher message.Publisher
	logger    zerolog.Logger
}

// NewAlertPublisher creates an alert publisher over the given bus.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewAlertPublisher(publisher message.Publisher, logger zerolog.Logger) *AlertPublisher {
	return &AlertPublisher{
		publisher: publisher,
		logger:    logger.With().Str("component", "alert_publisher").Logger(),
	}
}

// PublishAlerts publishes each alert as its own message. The first publish
// failure aborts the batch; the engine treats any error as best effort.
func (p *AlertPublisher) PublishAlerts(ctx context.Context, w scoring.Window, alerts []scoring.Alert) error {
	for _, alert := range alerts {
		if err := ctx.Err(); err != nil {
			return err
		}

		event := AlertEvent{
			ID:          uuid.New().String(),
			Window:      w,
			Alert:       alert,
			PublishedAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal alert event: %w", err)
		}

		msg := message.NewMessage(event.ID, payload)
		msg.Metadata.Set("alert_type", alert.Type)
		msg.Metadata.Set("severity", string(alert.Severity))

		if err := p.publisher.Publish(AlertTopic, msg); err != nil {
			return fmt.Errorf("publish alert %s: %w", event.ID, err)
		}
		metrics.AlertsPublishedTotal.WithLabelValues(string(alert.Severity)).Inc()
	}

	p.logger.Debug().Int("alerts", len(alerts)).Msg("alerts published")
	return nil
}
