package imaging

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestMagnitude(t *testing.T) {
	gx := [][]float64{{3, 0}, {-5, 1}}
	gy := [][]float64{{4, 0}, {12, 1}}

	got, err := Magnitude(gx, gy)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, got[0][0], 1e-12)
	assert.InDelta(t, 0.0, got[0][1], 1e-12)
	assert.InDelta(t, 13.0, got[1][0], 1e-12)
	assert.InDelta(t, math.Sqrt2, got[1][1], 1e-12)
}

func TestMagnitude_ShapeErrors(t *testing.T) {
	_, err := Magnitude([][]float64{{1}}, [][]float64{{1}, {2}})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Magnitude([][]float64{{1, 2}}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = Magnitude([][]float64{{1, 2}, {3}}, [][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRagged)
}

func TestDynamicThreshold(t *testing.T) {
	// mean 5, population stddev 2, n 8
	m := [][]float64{{2, 4, 4, 4}, {5, 5, 7, 9}}

	got := DynamicThreshold(m, 0.3)
	assert.InDelta(t, 0.3*(2/math.Sqrt(8))+5, got, 1e-12)

	assert.InDelta(t, 5.0, DynamicThreshold(m, 0), 1e-12)
	assert.Equal(t, 0.0, DynamicThreshold(nil, 1))
}

func TestRectInImage(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 1, Y: 1, Width: 5, Height: 5}, true},
		{"touches_left", Rect{X: 0, Y: 1, Width: 5, Height: 5}, false},
		{"touches_right", Rect{X: 1, Y: 1, Width: 9, Height: 5}, false},
		{"touches_bottom", Rect{X: 1, Y: 1, Width: 5, Height: 9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectInImage(tt.r, 10, 10))
		})
	}
}

func TestInMatrix(t *testing.T) {
	assert.True(t, InMatrix(Point{0, 0}, 3, 4))
	assert.True(t, InMatrix(Point{3, 2}, 3, 4))
	assert.False(t, InMatrix(Point{4, 2}, 3, 4))
	assert.False(t, InMatrix(Point{3, 3}, 3, 4))
	assert.False(t, InMatrix(Point{-1, 0}, 3, 4))
}
