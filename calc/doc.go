// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package calc provides the small numeric helpers that drawing code reaches
// for in every frame: clamping, interpolation, range mapping, distances,
// rectangle tests, and colour strings.
//
// Everything at package level is pure. Randomness lives in [Rand], which is
// constructed explicitly and passed to whoever needs it:
//
//	rng := calc.NewRand(42)
//	x := rng.Float(0, 640)
//	n := rng.Int(1, 6) // 1..6 inclusive
//	c := rng.Color()   // "#3FA2C7"
package calc
