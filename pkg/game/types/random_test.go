package types

import (
	"testing"

	mocks "github.com/cbodonnell/pong/mocks/github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
	"github.com/stretchr/testify/assert"
)

func TestRandVec(t *testing.T) {
	tests := []struct {
		name  string
		draws []bool
		want  kinematic.Vector
	}{
		{name: "both positive", draws: []bool{true, true}, want: kinematic.Vector{X: 3, Y: 4}},
		{name: "both negative", draws: []bool{false, false}, want: kinematic.Vector{X: -3, Y: -4}},
		{name: "left and down", draws: []bool{false, true}, want: kinematic.Vector{X: -3, Y: 4}},
		{name: "right and up", draws: []bool{true, false}, want: kinematic.Vector{X: 3, Y: -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := mocks.NewRandomSource(t)
			for _, draw := range tt.draws {
				rng.EXPECT().Bool().Return(draw).Once()
			}
			assert.Equal(t, tt.want, RandVec(rng, 3, 4))
		})
	}
}

func TestRandVec_Distribution(t *testing.T) {
	rng := NewRandomSource(42)
	counts := make(map[kinematic.Vector]int)

	const trials = 4000
	for i := 0; i < trials; i++ {
		counts[RandVec(rng, 1, 1)]++
	}

	assert.Len(t, counts, 4)
	for v, count := range counts {
		assert.InDelta(t, trials/4, count, trials/20, "vector %v", v)
	}
}

func TestNewRandomSource(t *testing.T) {
	a := NewRandomSource(1234)
	b := NewRandomSource(1234)
	assert.Equal(t, uint64(1234), a.Seed())
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Bool(), b.Bool(), "draw %d", i)
	}

	assert.NotZero(t, NewRandomSource(0).Seed())
}
