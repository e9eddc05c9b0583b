package plane

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	geomath "github.com/oxygene76/boundedplane/pkg/geometry/math"
)

func TestRectangularBounds_InsideBounds(t *testing.T) {
	b := RectangularBounds{Width: 5, Height: 5}

	tests := []struct {
		name     string
		point    geomath.Point3
		expected bool
	}{
		{"origin", geomath.Point3{}, true},
		{"interior", geomath.Point3{X: 1, Y: 1}, true},
		{"corner is inclusive", geomath.Point3{X: 2.5, Y: 2.5}, true},
		{"negative corner", geomath.Point3{X: -2.5, Y: -2.5}, true},
		{"just outside width", geomath.Point3{X: 2.5000001}, false},
		{"outside height", geomath.Point3{Y: -3}, false},
		{"far outside", geomath.Point3{X: -10, Y: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, b.InsideBounds(tt.point))
		})
	}
}

func TestRectangularBounds_IgnoresZ(t *testing.T) {
	b := RectangularBounds{Width: 4, Height: 2}
	xs := []float64{-3, -2, 0, 1.5, 2, 2.1}
	ys := []float64{-1.5, -1, 0, 0.5, 1, 1.01}
	zs := []float64{-1e9, -1, 0, 1e-12, 7}

	for _, x := range xs {
		for _, y := range ys {
			expected := b.InsideBounds(geomath.Point3{X: x, Y: y})
			for _, z := range zs {
				assert.Equal(t, expected, b.InsideBounds(geomath.Point3{X: x, Y: y, Z: z}), "x=%g y=%g z=%g", x, y, z)
			}
		}
	}
}

func TestNewRectangularBounds(t *testing.T) {
	b, err := NewRectangularBounds(3, 2)
	require.NoError(t, err)
	assert.Equal(t, RectangularBounds{Width: 3, Height: 2}, b)

	invalid := [][2]float64{
		{0, 1},
		{1, 0},
		{-1, 1},
		{1, math.NaN()},
		{math.Inf(1), 1},
	}
	for _, dims := range invalid {
		_, err := NewRectangularBounds(dims[0], dims[1])
		require.Error(t, err, "dims %v", dims)
		assert.True(t, errors.Is(err, ErrInvalidBounds))
	}
}
