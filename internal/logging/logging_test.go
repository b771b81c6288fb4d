// Vendorscope - Supplier Performance Scoring and Ranking Engine
// Copyright 2026 The Vendorscope Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/vendorscope/vendorscope

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

func captureLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	return &buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]interface{}
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("parse log line %q: %v", lines[len(lines)-1], err)
	}
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	buf := captureLogger(t)

	logger := WithComponent("scoring")
	logger.Info().Msg("ready")

	entry := lastLogLine(t, buf)
	if entry["component"] != "scoring" {
		t.Errorf("component = %v, want scoring", entry["component"])
	}
	if entry["message"] != "ready" {
		t.Errorf("message = %v, want ready", entry["message"])
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context request ID = %q, want empty", got)
	}

	id := GenerateRequestID()
	if id == "" {
		t.Fatal("GenerateRequestID returned empty")
	}
	ctx = ContextWithRequestID(ctx, id)
	if got := RequestIDFromContext(ctx); got != id {
		t.Errorf("request ID = %q, want %q", got, id)
	}
}

func TestCtxLoggerCarriesRequestID(t *testing.T) {
	buf := captureLogger(t)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	logger := Ctx(ctx)
	logger.Info().Msg("handling")

	entry := lastLogLine(t, buf)
	if entry["request_id"] != "req-123" {
		t.Errorf("request_id = %v, want req-123", entry["request_id"])
	}
}

func TestSlogBridge(t *testing.T) {
	buf := captureLogger(t)

	logger := NewSlogLogger()
	logger.Info("supervisor event",
		slog.String("service", "http-server"),
		slog.Int64("restarts", 2),
		slog.Bool("healthy", true),
	)

	entry := lastLogLine(t, buf)
	if entry["message"] != "supervisor event" {
		t.Errorf("message = %v, want supervisor event", entry["message"])
	}
	if entry["service"] != "http-server" {
		t.Errorf("service = %v, want http-server", entry["service"])
	}
	if entry["restarts"] != float64(2) {
		t.Errorf("restarts = %v, want 2", entry["restarts"])
	}
	if entry["healthy"] != true {
		t.Errorf("healthy = %v, want true", entry["healthy"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestSlogBridgeGroups(t *testing.T) {
	buf := captureLogger(t)

	logger := NewSlogLogger().WithGroup("supervisor").With(slog.String("tree", "root"))
	logger.Warn("restart")

	entry := lastLogLine(t, buf)
	if entry["supervisor.tree"] != "root" {
		t.Errorf("grouped attr = %v, want root under supervisor.tree", entry["supervisor.tree"])
	}
	if entry["level"] != "warn" {
		t.Errorf("level = %v, want warn", entry["level"])
	}
}
