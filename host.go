// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "time"

// Host is the environment a Driver runs in: it resolves named surfaces,
// reports the viewport size, delivers input events and schedules frames.
//
// Implementations must invoke listeners and frame callbacks from a single
// goroutine, one at a time.
type Host interface {
	// Surface resolves a canvas by id.
	Surface(id string) (*Canvas, bool)

	// Viewport returns the size of the visible area, used in fullscreen
	// mode. A non-positive size means unknown.
	Viewport() (width, height int)

	// Listen registers fn to receive every input event. The returned
	// function removes the listener; calling it again is a no-op.
	Listen(fn func(Event)) (remove func())

	// RequestFrame schedules fn to run once before the next repaint. The
	// returned function cancels the request if it has not run yet.
	RequestFrame(fn func(now time.Time)) (cancel func())
}
