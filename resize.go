// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sketch

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resize sets the logical size and the canvas size together. No hook
// runs in between, so hooks never see the two disagree.
//
// Returns ErrInvalidDimensions, with no state changed, when either value
// is not positive.
func (d *Driver) Resize(width, height int) error {
	if d.state == StateDisposed {
		return ErrDisposed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if err := d.canvas.Resize(width, height); err != nil {
		return err
	}
	d.width, d.height = width, height
	return nil
}

// ResizeAny is Resize for loosely typed input such as values read from
// configuration or markup. Any Go integer or float kind is accepted, as
// is a string holding a number.
//
// Non-numeric input fails with ErrInvalidDimensions and changes nothing.
// A fractional value is truncated toward zero and logged as a warning.
func (d *Driver) ResizeAny(width, height any) error {
	if d.state == StateDisposed {
		return ErrDisposed
	}
	w, wTrunc, err := parseDimension(width)
	if err != nil {
		return fmt.Errorf("%w: width %v: %v", ErrInvalidDimensions, width, err)
	}
	h, hTrunc, err := parseDimension(height)
	if err != nil {
		return fmt.Errorf("%w: height %v: %v", ErrInvalidDimensions, height, err)
	}
	if wTrunc || hTrunc {
		d.logger().Warn("sketch: fractional dimensions truncated",
			"surface", d.id, "width", width, "height", height, "using_width", w, "using_height", h)
	}
	return d.Resize(w, h)
}

// parseDimension converts v to an int. truncated reports that a
// fractional part was dropped.
func parseDimension(v any) (n int, truncated bool, err error) {
	switch x := v.(type) {
	case int:
		return x, false, nil
	case int8:
		return int(x), false, nil
	case int16:
		return int(x), false, nil
	case int32:
		return int(x), false, nil
	case int64:
		return fromInt64(x)
	case uint:
		return fromUint64(uint64(x))
	case uint8:
		return int(x), false, nil
	case uint16:
		return int(x), false, nil
	case uint32:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case float32:
		return fromFloat(float64(x))
	case float64:
		return fromFloat(x)
	case string:
		s := strings.TrimSpace(x)
		if i, err := strconv.Atoi(s); err == nil {
			return i, false, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false, fmt.Errorf("not a number: %q", x)
		}
		return fromFloat(f)
	default:
		return 0, false, fmt.Errorf("unsupported type %T", v)
	}
}

func fromInt64(x int64) (int, bool, error) {
	if x > math.MaxInt32 || x < math.MinInt32 {
		return 0, false, fmt.Errorf("out of range: %d", x)
	}
	return int(x), false, nil
}

func fromUint64(x uint64) (int, bool, error) {
	if x > math.MaxInt32 {
		return 0, false, fmt.Errorf("out of range: %d", x)
	}
	return int(x), false, nil
}

func fromFloat(f float64) (int, bool, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, fmt.Errorf("not finite: %v", f)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false, fmt.Errorf("out of range: %v", f)
	}
	t := math.Trunc(f)
	return int(t), t != f, nil
}
