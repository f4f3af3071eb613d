// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

import (
	"math"
	"regexp"
	"testing"
)

func TestRandFloatRange(t *testing.T) {
	rng := NewRand(1)
	for i := 0; i < 10000; i++ {
		v := rng.Float(-2, 3)
		if v < -2 || v >= 3 {
			t.Fatalf("Float(-2, 3) = %v, outside [-2, 3)", v)
		}
	}
}

func TestRandIntInclusiveAndUniform(t *testing.T) {
	const (
		min    = 1
		max    = 6
		trials = 60000
	)
	rng := NewRand(2024)
	counts := make(map[int]int)
	for i := 0; i < trials; i++ {
		v := rng.Int(min, max)
		if v < min || v > max {
			t.Fatalf("Int(%d, %d) = %d, outside range", min, max, v)
		}
		counts[v]++
	}

	want := float64(trials) / float64(max-min+1)
	for v := min; v <= max; v++ {
		got := float64(counts[v])
		if got == 0 {
			t.Errorf("value %d never returned", v)
		}
		// Rounding would halve the endpoints; a 10% band catches that.
		if got < want*0.9 || got > want*1.1 {
			t.Errorf("value %d returned %v times, want about %v", v, got, want)
		}
	}
}

func TestRandIntSwappedBounds(t *testing.T) {
	rng := NewRand(3)
	for i := 0; i < 1000; i++ {
		if v := rng.Int(5, 2); v < 2 || v > 5 {
			t.Fatalf("Int(5, 2) = %d, outside [2, 5]", v)
		}
	}
}

func TestRandIntWideRange(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"zero to max", 0, math.MaxInt},
		{"min to zero", math.MinInt, 0},
		{"full range", math.MinInt, math.MaxInt},
		{"above mantissa", -1 << 54, 1 << 54},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRand(1)
			for i := 0; i < 1000; i++ {
				if v := rng.Int(tt.min, tt.max); v < tt.min || v > tt.max {
					t.Fatalf("Int(%d, %d) = %d, outside range", tt.min, tt.max, v)
				}
			}
		})
	}
}

func TestRandIntSingleValue(t *testing.T) {
	rng := NewRand(5)
	for _, v := range []int{math.MinInt, 0, math.MaxInt} {
		if got := rng.Int(v, v); got != v {
			t.Errorf("Int(%d, %d) = %d", v, v, got)
		}
	}
}

func TestRandDeterministicForSeed(t *testing.T) {
	a, b := NewRand(11), NewRand(11)
	for i := 0; i < 100; i++ {
		if x, y := a.Float(0, 1), b.Float(0, 1); x != y {
			t.Fatalf("seeded sequences diverged at %d: %v != %v", i, x, y)
		}
	}
}

func TestRandFloat16(t *testing.T) {
	rng := NewRand(5)
	for i := 0; i < 10000; i++ {
		if v := rng.Float16(); v < 0 || v > 1 {
			t.Fatalf("Float16() = %v, outside [0, 1]", v)
		}
	}
}

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestRandColor(t *testing.T) {
	rng := NewRand(8)
	for i := 0; i < 500; i++ {
		if c := rng.Color(); !hexColor.MatchString(c) {
			t.Fatalf("Color() = %q, want #RRGGBB uppercase", c)
		}
	}
}

func TestRGBToHex(t *testing.T) {
	tests := []struct {
		r, g, b int
		want    string
	}{
		{0, 0, 0, "#000000"},
		{255, 255, 255, "#FFFFFF"},
		{10, 0, 255, "#0A00FF"},
		{15, 16, 171, "#0F10AB"},
		{-4, 300, 128, "#00FF80"},
	}
	for _, tt := range tests {
		if got := RGBToHex(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("RGBToHex(%d, %d, %d) = %q, want %q", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
	if got := GrayToHex(12); got != "#0C0C0C" {
		t.Errorf("GrayToHex(12) = %q, want #0C0C0C", got)
	}
}
