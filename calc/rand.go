// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package calc

import (
	"math/rand/v2"
	"sync"
)

// Rand is a source of uniformly distributed values for sketches.
// Rand is safe for concurrent use.
type Rand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRand creates a Rand seeded with seed. Equal seeds produce equal
// sequences.
func NewRand(seed uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *Rand) float() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Float returns a uniform float64 in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return r.float()*(max-min) + min
}

// Int returns a uniform integer in [min, max], both ends inclusive.
//
// The value is truncated rather than rounded: rounding would give the two
// endpoints half the weight of every interior value. Spans wider than a
// float64 mantissa are drawn from the integer generator instead.
func (r *Rand) Int(min, max int) int {
	if max < min {
		min, max = max, min
	}
	span := uint64(max) - uint64(min) + 1
	if span != 0 && span <= 1<<53 {
		return int(r.float()*float64(span)) + min
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	var off uint64
	if span == 0 {
		// min and max cover every int.
		off = r.rng.Uint64()
	} else {
		off = r.rng.Uint64N(span)
	}
	return int(uint64(min) + off)
}

// Float16 returns a float in [0, 1] built from 16 bits of randomness.
func (r *Rand) Float16() float64 {
	return (65280*r.float() + 255*r.float()) / 65535
}

// Color returns a random colour as "#RRGGBB" in uppercase.
func (r *Rand) Color() string {
	return RGBToHex(r.Int(0, 255), r.Int(0, 255), r.Int(0, 255))
}
