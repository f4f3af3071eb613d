// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
)

// Canvas is a named drawing surface: a gg.Context plus the position of
// its top-left corner in the host's client coordinate space. Pointer
// positions are reported relative to that corner.
//
// Canvas is NOT safe for concurrent use.
type Canvas struct {
	ctx     *gg.Context
	originX float64
	originY float64
	width   int
	height  int
	closed  bool
}

// NewCanvas creates a canvas of the given size with its origin at (0, 0).
//
// Returns ErrInvalidDimensions if either dimension is not positive.
func NewCanvas(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
	}, nil
}

// MustNewCanvas is like NewCanvas but panics on error.
// Use only when errors are programming mistakes (e.g., hardcoded dimensions).
func MustNewCanvas(width, height int) *Canvas {
	c, err := NewCanvas(width, height)
	if err != nil {
		panic(err)
	}
	return c
}

// Context returns the gg drawing context, or nil if the canvas is closed.
func (c *Canvas) Context() *gg.Context {
	if c.closed {
		return nil
	}
	return c.ctx
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns width and height as a convenience.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// SetOrigin moves the canvas within the host's client space.
func (c *Canvas) SetOrigin(x, y float64) {
	c.originX, c.originY = x, y
}

// Origin returns the client-space position of the top-left corner.
func (c *Canvas) Origin() (x, y float64) {
	return c.originX, c.originY
}

// Resize changes the canvas dimensions. The pixels are reallocated and
// cleared; the transform stack is kept.
//
// Returns an error if dimensions are invalid or the canvas is closed.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	if err := c.ctx.Resize(width, height); err != nil {
		return fmt.Errorf("sketch: context resize failed: %w", err)
	}
	c.width = width
	c.height = height
	return nil
}

// Draw calls fn with the gg context.
func (c *Canvas) Draw(fn func(*gg.Context)) error {
	if c.closed {
		return ErrCanvasClosed
	}
	fn(c.ctx)
	return nil
}

// Image returns a copy of the current pixels.
// Returns nil if the canvas is closed.
func (c *Canvas) Image() *image.RGBA {
	if c.closed {
		return nil
	}
	_ = c.ctx.FlushGPU()
	return c.ctx.ResizeTarget().ToImage()
}

// SavePNG writes the current pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	if c.closed {
		return ErrCanvasClosed
	}
	return c.ctx.SavePNG(path)
}

// Close releases the drawing context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.ctx.Close()
}
