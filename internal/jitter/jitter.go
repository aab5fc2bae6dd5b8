// Package jitter isolates the presentation noise added to heuristic scores.
// Values drawn here carry no statistical meaning and are never seeded.
package jitter

import "math/rand"

// Source draws a value in [lo, hi).
type Source interface {
	Uniform(lo, hi float64) float64
}

type uniform struct{}

// Default is backed by the runtime-seeded global generator, safe for concurrent use.
func Default() Source { return uniform{} }

func (uniform) Uniform(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
}

// Fixed places every draw at the same fraction of the requested range:
// 0 gives lo, 1 gives hi, 0.5 the midpoint.
type Fixed float64

func (f Fixed) Uniform(lo, hi float64) float64 {
	return lo + float64(f)*(hi-lo)
}

// Zero returns the draw that adds no noise for symmetric ranges.
func Zero() Source { return Fixed(0.5) }
