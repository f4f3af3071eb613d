// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "errors"

var (
	// ErrSurfaceNotFound is returned by New when the host cannot resolve
	// the configured surface id.
	ErrSurfaceNotFound = errors.New("sketch: surface not found")

	// ErrInvalidDimensions is returned when a width or height is not a
	// positive number. The operation leaves all state unchanged.
	ErrInvalidDimensions = errors.New("sketch: invalid dimensions")

	// ErrNilHost is returned by New when no host is given.
	ErrNilHost = errors.New("sketch: nil host")

	// ErrDisposed is returned by operations on a disposed driver.
	ErrDisposed = errors.New("sketch: driver is disposed")

	// ErrCanvasClosed is returned when operations are attempted on a
	// closed canvas.
	ErrCanvasClosed = errors.New("sketch: canvas is closed")
)
