// SPDX-License-Identifier: MIT
package builder

import (
	"math/rand"

	"github.com/katalvlaran/jigsaw/tile"
)

const (
	// DefaultSize is the default number of tiles per row and column.
	DefaultSize = 3
	// DefaultSide is the default tile side, as in the classic puzzle.
	DefaultSide = 10
	// DefaultDensity is the default share of on pixels in tile interiors.
	DefaultDensity = 0.5
	// MinSide is the smallest side that leaves an interior.
	MinSide = 3

	defaultSeed   = 1
	edgeAttempts  = 64
	layoutRetries = 16
	stampAttempts = 10000
)

// Option customizes Generate. Option constructors panic on meaningless
// inputs; Generate itself never panics.
type Option func(*config)

type config struct {
	size    int
	side    int
	density float64
	rng     *rand.Rand
	stamps  []stamp
}

type stamp struct {
	mask  tile.Grid
	count int
}

func defaultConfig() config {
	return config{
		size:    DefaultSize,
		side:    DefaultSide,
		density: DefaultDensity,
		rng:     rand.New(rand.NewSource(defaultSeed)),
	}
}

// WithSize sets the number of tiles per row and column (n).
func WithSize(n int) Option {
	return func(c *config) { c.size = n }
}

// WithSide sets the tile side (edge bit-width).
func WithSide(s int) Option {
	return func(c *config) { c.side = s }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithDensity sets the probability of an interior pixel being on.
// Panics outside [0,1].
func WithDensity(p float64) Option {
	if p < 0 || p > 1 {
		panic("builder: WithDensity outside [0,1]")
	}
	return func(c *config) { c.density = p }
}

// WithStamp stamps count copies of mask into the ground-truth image, each
// at a random position with a one-pixel margin to every other stamp. Off
// pixels of the mask leave the background untouched.
// Panics on an empty mask or a negative count.
func WithStamp(mask tile.Grid, count int) Option {
	if len(mask) == 0 || len(mask[0]) == 0 || count < 0 {
		panic("builder: WithStamp needs a non-empty mask and count >= 0")
	}
	return func(c *config) { c.stamps = append(c.stamps, stamp{mask: mask.Clone(), count: count}) }
}
