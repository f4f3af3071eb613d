// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package noise

// Fractal sums octaves of noise at increasing frequency and decreasing
// amplitude, then divides by the total amplitude so the result stays in
// roughly the same range as a single octave.
//
// persistence scales the amplitude between octaves (0.5 is typical) and
// lacunarity scales the frequency (2 is typical). octaves < 1 returns 0.
func (g *Generator) Fractal(x, y, z float64, octaves int, persistence, lacunarity float64) float64 {
	if octaves < 1 {
		return 0
	}
	var (
		sum       float64
		total     float64
		amplitude = 1.0
		frequency = 1.0
	)
	for i := 0; i < octaves; i++ {
		sum += g.Noise3(x*frequency, y*frequency, z*frequency) * amplitude
		total += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	if total == 0 {
		return 0
	}
	return sum / total
}
