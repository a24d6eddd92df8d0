package kinematic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		low   float64
		high  float64
		want  float64
	}{
		{name: "below low", value: -10, low: 50, high: 550, want: 50},
		{name: "above high", value: 900, low: 50, high: 550, want: 550},
		{name: "in range", value: 300, low: 50, high: 550, want: 300},
		{name: "at low", value: 50, low: 50, high: 550, want: 50},
		{name: "at high", value: 550, low: 50, high: 550, want: 550},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.low, tt.high)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Clamp(got, tt.low, tt.high), "clamping twice should not change the value")
		})
	}
}

func TestIntegrate(t *testing.T) {
	position := Vector{X: 400, Y: 300}
	velocity := Vector{X: -300, Y: 300}

	got := Integrate(position, velocity, 0.5)
	assert.Equal(t, Vector{X: 250, Y: 450}, got)

	got = Integrate(position, velocity, 0)
	assert.Equal(t, position, got)
}

func TestVector(t *testing.T) {
	v := Vector{X: 1, Y: -2}
	assert.Equal(t, Vector{X: 3, Y: 0}, v.Add(Vector{X: 2, Y: 2}))
	assert.Equal(t, Vector{X: -2, Y: 4}, v.Scale(-2))
	assert.Equal(t, Vector{X: 0.5, Y: -1}, Displacement(v, 0.5))
}
