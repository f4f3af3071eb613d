// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"
)

// Clear replaces every pixel of the canvas with the clear colour, or
// erases it to transparent when no colour is set. The current transform
// and clip do not apply, and a translucent colour replaces the pixels
// rather than blending over them. Any path under construction is
// discarded; transform, clip and brush are left as they were.
func (d *Driver) Clear() error {
	dc := d.canvas.Context()
	if dc == nil {
		return ErrCanvasClosed
	}

	dc.ClearPath()
	if d.clearColor == nil {
		dc.Clear()
		return nil
	}
	dc.ClearWithColor(gg.FromColor(d.clearColor))
	return nil
}

// Line strokes a line from (x1, y1) to (x2, y2) with the current stroke
// style.
func (d *Driver) Line(x1, y1, x2, y2 float64) error {
	dc := d.canvas.Context()
	if dc == nil {
		return ErrCanvasClosed
	}
	dc.DrawLine(x1, y1, x2, y2)
	return dc.Stroke()
}

// LineStyle sets the stroke colour and width for LineStyled. Zero fields
// keep the context's current value.
type LineStyle struct {
	Color color.Color
	Width float64
}

// LineStyled strokes a line like Line after applying the non-zero fields
// of style. The applied colour and width stay in effect for later
// drawing.
func (d *Driver) LineStyled(x1, y1, x2, y2 float64, style LineStyle) error {
	dc := d.canvas.Context()
	if dc == nil {
		return ErrCanvasClosed
	}
	if style.Color != nil {
		dc.SetColor(style.Color)
	}
	if style.Width > 0 {
		dc.SetLineWidth(style.Width)
	}
	return d.Line(x1, y1, x2, y2)
}

// CreateOffscreen returns a new drawing context that shares nothing with
// the canvas, for pre-rendering and buffering. A zero dimension defaults
// to the driver's current size. The caller owns the context and should
// Close it when done.
func (d *Driver) CreateOffscreen(width, height int) (*gg.Context, error) {
	if d.state == StateDisposed {
		return nil, ErrDisposed
	}
	if width == 0 {
		width = d.width
	}
	if height == 0 {
		height = d.height
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return gg.NewContext(width, height), nil
}
