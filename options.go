// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"log/slog"
	"time"
)

// Option configures a Driver during creation.
//
// Example:
//
//	d, err := sketch.New(host, cfg, sketch.WithLogger(slog.Default()))
type Option func(*options)

type options struct {
	clock  func() time.Time
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		clock: time.Now,
	}
}

// WithClock sets the time source used for the driver's initial tick
// timestamp. Frame timestamps always come from the host.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithLogger gives the driver its own logger instead of the package logger
// returned by [Logger].
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
