package types

import (
	"math/rand/v2"

	"github.com/cbodonnell/pong/pkg/kinematic"
)

// RandomSource produces fair random bits.
type RandomSource interface {
	Bool() bool
}

// PCGRandomSource is a seeded RandomSource backed by a PCG generator.
type PCGRandomSource struct {
	seed uint64
	rng  *rand.Rand
}

var _ RandomSource = &PCGRandomSource{}

// NewRandomSource returns a RandomSource seeded with seed.
// A seed of 0 picks a random seed, which can be read back with Seed.
func NewRandomSource(seed uint64) *PCGRandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &PCGRandomSource{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}
}

func (r *PCGRandomSource) Bool() bool {
	return r.rng.IntN(2) == 1
}

func (r *PCGRandomSource) Seed() uint64 {
	return r.seed
}

// RandVec returns a vector of (±x, ±y) where each sign is drawn independently with probability 0.5.
func RandVec(rng RandomSource, x float64, y float64) kinematic.Vector {
	v := kinematic.Vector{X: -x, Y: -y}
	if rng.Bool() {
		v.X = x
	}
	if rng.Bool() {
		v.Y = y
	}
	return v
}
