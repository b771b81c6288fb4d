// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

// Package events provides the in-process alert event bus. Scoring runs
// publish alerts to it best effort; subscribers consume them without ever
// blocking or failing a scoring run.
package events

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rs/zerolog"
)

// AlertTopic is the pub/sub topic for supplier alerts.
const AlertTopic = "supplier.alerts"

// Bus is an in-process Watermill pub/sub channel.
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus creates the in-process bus with the given channel buffer.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBus(bufferSize int, logger zerolog.Logger) *Bus {
	ch := gochannel.NewGoChannel(
		gochannel.Config{
			OutputChannelBuffer: int64(bufferSize),
		},
		newLoggerAdapter(logger),
	)
	return &Bus{channel: ch}
}

// Publisher returns the bus's publisher side.
func (b *Bus) Publisher() message.Publisher {
	return b.channel
}

// Subscriber returns the bus's subscriber side.
func (b *Bus) Subscriber() message.Subscriber {
	return b.channel
}

// Close shuts down the bus and closes all subscriber channels.
func (b *Bus) Close() error {
	return b.channel.Close()
}

// loggerAdapter bridges Watermill's logging interface onto zerolog.
type loggerAdapter struct {
	logger zerolog.Logger
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newLoggerAdapter(logger zerolog.Logger) watermill.LoggerAdapter {
	return loggerAdapter{logger: logger.With().Str("component", "events").Logger()}
}

func (a loggerAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.event(a.logger.Error().Err(err), fields).Msg(msg)
}

func (a loggerAdapter) Info(msg string, fields watermill.LogFields) {
	a.event(a.logger.Info(), fields).Msg(msg)
}

func (a loggerAdapter) Debug(msg string, fields watermill.LogFields) {
	a.event(a.logger.Debug(), fields).Msg(msg)
}

func (a loggerAdapter) Trace(msg string, fields watermill.LogFields) {
	a.event(a.logger.Trace(), fields).Msg(msg)
}

func (a loggerAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	l := a.logger
	for k, v := range fields {
		l = l.With().Interface(k, v).Logger()
	}
	return loggerAdapter{logger: l}
}

func (a loggerAdapter) event(e *zerolog.Event, fields watermill.LogFields) *zerolog.Event {
	for k, v := range fields {
		e = e.Interface(k, v)
	}
	return e
}
