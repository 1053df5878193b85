// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Chase Nunez

// Package logging configures the global structured logger.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup installs a text slog handler on stderr at the given level.
// Level values: "debug", "info", "warn", "error" (default: "warn" so
// normal CLI output stays clean).
func Setup(level string) {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	slog.SetDefault(slog.New(handler))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
