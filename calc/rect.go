// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// ContainsPoint reports whether (x, y) lies within r.
// Points on the edges are inside.
func ContainsPoint(r Rect, x, y float64) bool {
	return !(x < r.X || x > r.Right() || y < r.Y || y > r.Bottom())
}

// Intersects reports whether a and b overlap.
// Rectangles that only touch along an edge or corner count as overlapping.
func Intersects(a, b Rect) bool {
	return !(a.Right() < b.X ||
		b.Right() < a.X ||
		a.Bottom() < b.Y ||
		b.Bottom() < a.Y)
}
