// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package noise

import (
	"math"
	"testing"
)

func TestPerlinReferenceValues(t *testing.T) {
	tests := []struct {
		x, y, z float64
		want    float64
	}{
		{3.14, 42, 7, 0.13691995878400012},
		{0.5, 0.5, 0.5, -0.25},
		{1.25, 2.5, 3.75, -0.03836345672607422},
		{-0.3, 17.9, -4.2, -0.35018615556679766},
		{10.1, -3.3, 0.7, 0.06548277706583017},
		{255.5, 256.5, 511.25, -0.02587890625},
		{0.7, 1.3, 2.9, -0.5667279979533306},
	}
	for _, tt := range tests {
		got := Perlin(tt.x, tt.y, tt.z)
		if math.Float64bits(got) != math.Float64bits(tt.want) {
			t.Errorf("Perlin(%v, %v, %v) = %v, want %v (bit-exact)", tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestPerlinZeroOnLattice(t *testing.T) {
	for _, p := range [][3]float64{{0, 0, 0}, {1, 2, 3}, {-4, 7, 255}, {300, -1, 12}} {
		if got := Perlin(p[0], p[1], p[2]); got != 0 {
			t.Errorf("Perlin(%v) = %v, want 0 on lattice point", p, got)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	for i := 0; i < 1000; i++ {
		x := float64(i) * 0.173
		y := float64(i) * -0.291
		z := float64(i) * 0.057
		a, b := Perlin(x, y, z), Perlin(x, y, z)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("Perlin(%v, %v, %v) not deterministic: %v != %v", x, y, z, a, b)
		}
	}
}

func TestPerlinRange(t *testing.T) {
	for i := 0; i < 20000; i++ {
		x := float64(i%97) * 0.131
		y := float64(i%89) * 0.247
		z := float64(i%83) * 0.389
		if v := Perlin(x, y, z); v < -1.05 || v > 1.05 || math.IsNaN(v) {
			t.Fatalf("Perlin(%v, %v, %v) = %v, outside approximately [-1, 1]", x, y, z, v)
		}
	}
}

func TestPerlinPeriod256(t *testing.T) {
	a := Perlin(1.3, 2.7, 0.4)
	b := Perlin(1.3+256, 2.7, 0.4-256)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("noise should repeat every 256 units: %v vs %v", a, b)
	}
}

func TestReferenceGeneratorIsShared(t *testing.T) {
	if Reference() != Reference() {
		t.Error("Reference() should return the same generator")
	}
	if got, want := Reference().Noise3(3.14, 42, 7), Perlin(3.14, 42, 7); got != want {
		t.Errorf("Reference().Noise3 = %v, Perlin = %v", got, want)
	}
}

func TestSeededGenerator(t *testing.T) {
	a, b := New(7), New(7)
	c := New(8)

	same, differs := true, false
	for i := 0; i < 200; i++ {
		x, y, z := float64(i)*0.37, float64(i)*0.11, 0.5
		if a.Noise3(x, y, z) != b.Noise3(x, y, z) {
			same = false
		}
		if a.Noise3(x, y, z) != c.Noise3(x, y, z) {
			differs = true
		}
	}
	if !same {
		t.Error("generators with equal seeds should agree")
	}
	if !differs {
		t.Error("generators with different seeds should disagree somewhere")
	}

	// Every seeded table must still be a permutation of 0..255.
	seen := make(map[int]bool)
	for _, v := range c.p[:256] {
		seen[v] = true
	}
	if len(seen) != 256 {
		t.Errorf("seeded table has %d distinct entries, want 256", len(seen))
	}
}
