// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the product tracker server. A *Logger is
// passed explicitly to constructors; request handlers pick up the
// request-scoped one through FromRequest or FromContext.
package logger

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

var callerOnce sync.Once

// setupCaller makes the caller field carry the function name instead of
// file:line. zerolog keeps these settings in package globals.
func setupCaller() {
	callerOnce.Do(func() {
		zerolog.CallerFieldName = "func"
		zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
			if fn := runtime.FuncForPC(pc); fn != nil {
				return fn.Name()
			}
			return "unknown"
		}
	})
}

// New builds a JSON logger writing to w. Every entry carries the role, a
// timestamp and the calling function.
func New(w io.Writer, role string, level zerolog.Level) *Logger {
	setupCaller()

	l := zerolog.New(w).
		Level(level).
		With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// NewLogger returns a stdout logger for role that emits every level.
// Call WithMinLevel once the configuration is known.
func NewLogger(role string) *Logger {
	return New(os.Stdout, role, zerolog.DebugLevel)
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithMinLevel returns a copy of l that drops entries below level. The level is
// a zerolog level name such as "debug" or "warn"; an empty string keeps the
// current level.
func (l *Logger) WithMinLevel(level string) (*Logger, error) {
	if level == "" {
		return l, nil
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("unknown log level %q: %w", level, err)
	}

	return &Logger{l.Level(parsed)}, nil
}

// GetChildLogger returns a logger that inherits l's fields and can be
// enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's default
// logger when there is none. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

// WithUser tags the context logger with the authenticated user's id.
func WithUser(ctx context.Context, userID int64) context.Context {
	l := log.Ctx(ctx).With().Int64("user_id", userID).Logger()
	return l.WithContext(ctx)
}
