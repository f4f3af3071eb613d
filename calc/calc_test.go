// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"inside", 5, 0, 10, 5},
		{"at min", 0, 0, 10, 0},
		{"at max", 10, 0, 10, 10},
		{"below", -3, 0, 10, 0},
		{"above", 42, 0, 10, 10},
		{"negative range", -5, -10, -1, -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestClampIdentityInsideRange(t *testing.T) {
	for v := -1.0; v <= 1.0; v += 0.125 {
		if got := Clamp(v, -1, 1); got != v {
			t.Errorf("Clamp(%v, -1, 1) = %v, want %v", v, got, v)
		}
	}
}

func TestInRange(t *testing.T) {
	if !InRange(0, 0, 1) || !InRange(1, 0, 1) || !InRange(0.5, 0, 1) {
		t.Error("InRange should include both bounds")
	}
	if InRange(-0.001, 0, 1) || InRange(1.001, 0, 1) {
		t.Error("InRange should exclude values outside bounds")
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0); got != 10 {
		t.Errorf("Lerp(t=0) = %v, want 10", got)
	}
	if got := Lerp(10, 20, 1); got != 20 {
		t.Errorf("Lerp(t=1) = %v, want 20", got)
	}
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Lerp(t=0.25) = %v, want 12.5", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		want        float64
	}{
		{"midpoint", 5, 0, 10, 0.5},
		{"below clamps", -5, 0, 10, 0},
		{"above clamps", 15, 0, 10, 1},
		{"inverted range", 2.5, 10, 0, 0.75},
		{"degenerate range", 3, 3, 3, 0},
		{"degenerate range off value", 7, 3, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.v, tt.min, tt.max)
			if got != tt.want {
				t.Errorf("Normalize(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestNormalizeAlwaysInUnitInterval(t *testing.T) {
	rng := NewRand(7)
	for i := 0; i < 5000; i++ {
		v := rng.Float(-1e6, 1e6)
		lo := rng.Float(-1e6, 1e6)
		hi := rng.Float(-1e6, 1e6)
		if lo == hi {
			continue
		}
		got := Normalize(v, lo, hi)
		if math.IsNaN(got) || got < 0 || got > 1 {
			t.Fatalf("Normalize(%v, %v, %v) = %v, outside [0,1]", v, lo, hi, got)
		}
	}
}

func TestMap(t *testing.T) {
	if got := Map(5, 0, 10, 100, 200); got != 150 {
		t.Errorf("Map midpoint = %v, want 150", got)
	}
	if got := Map(20, 0, 10, 0, 1); got != 2 {
		t.Errorf("Map extrapolation = %v, want 2", got)
	}
	if got := Map(4, 1, 1, -3, 3); got != -3 {
		t.Errorf("Map degenerate = %v, want outputMin -3", got)
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := DistanceSq(1, 1, 4, 5); got != 25 {
		t.Errorf("DistanceSq = %v, want 25", got)
	}
	if got := Distance(2, 2, 2, 2); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestSign(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-2, -1}, {0, 0}, {0.1, 1}} {
		if got := Sign(tt.in); got != tt.want {
			t.Errorf("Sign(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
