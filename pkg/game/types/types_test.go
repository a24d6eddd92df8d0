package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_Overlaps(t *testing.T) {
	paddle := BoundsAround(50, 300, 10, 50)
	tests := []struct {
		name  string
		other Bounds
		want  bool
	}{
		{name: "inside", other: BoundsAround(50, 300, 5, 5), want: true},
		{name: "partial right", other: BoundsAround(65, 300, 12.5, 12.5), want: true},
		{name: "touching right edge", other: BoundsAround(72.5, 300, 12.5, 12.5), want: false},
		{name: "touching top edge", other: BoundsAround(50, 237.5, 12.5, 12.5), want: false},
		{name: "partial top", other: BoundsAround(50, 240, 12.5, 12.5), want: true},
		{name: "far away", other: BoundsAround(400, 300, 12.5, 12.5), want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paddle.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(paddle))
		})
	}
}

func TestPaddleState_Clamp(t *testing.T) {
	p := NewPaddleState(50, 300)
	p.Clamp(600)
	assert.Equal(t, 300.0, p.Position.Y)
	p.Clamp(600)
	assert.Equal(t, 300.0, p.Position.Y)

	p.Position.Y = 1000
	p.Clamp(600)
	assert.Equal(t, 550.0, p.Position.Y)
	p.Clamp(600)
	assert.Equal(t, 550.0, p.Position.Y)
}

func TestField_Center(t *testing.T) {
	x, y := Field{Width: 800, Height: 600}.Center()
	assert.Equal(t, 400.0, x)
	assert.Equal(t, 300.0, y)
}

func TestScore(t *testing.T) {
	s := Score{}
	previous := s

	_, ok := s.ScorerSince(previous)
	assert.False(t, ok)

	s.Award(Player2)
	player, ok := s.ScorerSince(previous)
	assert.True(t, ok)
	assert.Equal(t, Player2, player)
	assert.Equal(t, Score{P1: 0, P2: 1}, s)

	previous = s
	s.Award(Player1)
	player, ok = s.ScorerSince(previous)
	assert.True(t, ok)
	assert.Equal(t, Player1, player)

	assert.Equal(t, "1                1", s.String())
	assert.Equal(t, "Player 1", Player1.String())
	assert.Equal(t, "Player 2", Player2.String())
}
