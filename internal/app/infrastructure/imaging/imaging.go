package imaging

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrShapeMismatch = errors.New("imaging: matrices differ in shape")
	ErrRagged        = errors.New("imaging: matrix rows differ in length")
)

type Point struct {
	X, Y int
}

type Rect struct {
	X, Y          int
	Width, Height int
}

// Magnitude returns sqrt(x*x + y*y) for each pair of gradient components.
func Magnitude(gx, gy [][]float64) ([][]float64, error) {
	if err := checkShape(gx, gy); err != nil {
		return nil, err
	}

	mags := make([][]float64, len(gx))
	for r := range gx {
		mags[r] = make([]float64, len(gx[r]))
		for c := range gx[r] {
			x, y := gx[r][c], gy[r][c]
			mags[r][c] = math.Sqrt(x*x + y*y)
		}
	}
	return mags, nil
}

// DynamicThreshold returns factor * (stddev / sqrt(n)) + mean over all
// elements of m, using the population standard deviation. An empty matrix
// yields 0.
func DynamicThreshold(m [][]float64, factor float64) float64 {
	var n int
	var sum float64
	for _, row := range m {
		for _, v := range row {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}

	mean := sum / float64(n)
	var sq float64
	for _, row := range m {
		for _, v := range row {
			d := v - mean
			sq += d * d
		}
	}
	stdDev := math.Sqrt(sq/float64(n)) / math.Sqrt(float64(n))
	return factor*stdDev + mean
}

// RectInImage reports whether r lies strictly inside a rows x cols image,
// not touching any border.
func RectInImage(r Rect, rows, cols int) bool {
	return r.X > 0 && r.Y > 0 && r.X+r.Width < cols && r.Y+r.Height < rows
}

func InMatrix(p Point, rows, cols int) bool {
	return p.X >= 0 && p.X < cols && p.Y >= 0 && p.Y < rows
}

func checkShape(a, b [][]float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d rows vs %d", ErrShapeMismatch, len(a), len(b))
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return fmt.Errorf("%w: row %d has %d vs %d columns", ErrShapeMismatch, r, len(a[r]), len(b[r]))
		}
		if r > 0 && len(a[r]) != len(a[0]) {
			return fmt.Errorf("%w: row %d", ErrRagged, r)
		}
	}
	return nil
}
