package figure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 0.0001

func TestFigure_Area(t *testing.T) {
	tests := []struct {
		name   string
		figure Figure
		want   float64
	}{
		{name: "unit circle", figure: NewCircle(1.0), want: math.Pi},
		{name: "unit square", figure: NewSquare(1.0), want: 1.0},
		{name: "3-4 triangle", figure: NewTriangle(3.0, 4.0), want: 6.0},
		{name: "zero value", figure: Figure{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.figure.Area(), delta)
		})
	}
}

func TestFigure_Perimeter(t *testing.T) {
	tests := []struct {
		name   string
		figure Figure
		want   float64
	}{
		{name: "unit circle", figure: NewCircle(1.0), want: 2 * math.Pi},
		{name: "unit square", figure: NewSquare(1.0), want: 4.0},
		{name: "3-4 triangle", figure: NewTriangle(3.0, 4.0), want: 12.0},
		{name: "zero value", figure: Figure{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.figure.Perimeter(), delta)
		})
	}
}

func TestFigure_KindAndString(t *testing.T) {
	assert.Equal(t, KindCircle, NewCircle(2).Kind())
	assert.Equal(t, KindSquare, NewSquare(2).Kind())
	assert.Equal(t, KindTriangle, NewTriangle(2, 3).Kind())

	assert.Equal(t, "circle(2)", NewCircle(2).String())
	assert.Equal(t, "triangle(4.2, 4.5)", NewTriangle(4.2, 4.5).String())
	assert.Equal(t, "kind(0)", Kind(0).String())
}
