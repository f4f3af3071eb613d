// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import "image/color"

// Defaults applied by New to zero-valued Config fields.
const (
	DefaultSurface = "canvas"
	DefaultWidth   = 640
	DefaultHeight  = 480
	DefaultFPS     = 60
)

// HookFunc is called with the driver after an input event has been
// applied, and once for Setup.
type HookFunc func(d *Driver)

// FrameFunc is called once per animated frame. dt is the elapsed time
// normalised to the target frame rate: 1.0 means exactly one frame
// interval has passed, 2.0 means two.
type FrameFunc func(d *Driver, dt float64)

// Hooks holds the optional callbacks. A nil hook is skipped.
type Hooks struct {
	Setup  HookFunc
	Update FrameFunc
	Draw   FrameFunc

	PointerDown HookFunc
	PointerUp   HookFunc
	PointerMove HookFunc

	KeyDown  HookFunc
	KeyUp    HookFunc
	KeyPress HookFunc
}

// Config describes a driver. New copies it; later changes to the
// caller's value have no effect.
type Config struct {
	// Surface is the id of the canvas to drive. Default "canvas".
	Surface string

	// Width and Height size the canvas in windowed mode.
	// Defaults 640x480.
	Width  int
	Height int

	// FPS is the target frame rate used to normalise frame deltas.
	// Default 60.
	FPS float64

	// Animate enables the Update and Draw hooks on every frame.
	Animate bool

	// Fullscreen keeps the canvas sized to the host viewport.
	Fullscreen bool

	// ClearColor is the colour used by Clear. Nil erases to transparent.
	ClearColor color.Color

	Hooks Hooks
}

func (c Config) withDefaults() Config {
	if c.Surface == "" {
		c.Surface = DefaultSurface
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.FPS <= 0 {
		c.FPS = DefaultFPS
	}
	return c
}
