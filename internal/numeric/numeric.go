// Package numeric wraps the gonum interpolation and grid helpers shared by
// the waveform and step measurement packages.
package numeric

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Linspace returns n evenly spaced values over [begin, end]. The first and
// last values are exactly begin and end.
func Linspace(begin, end float64, n int) []float64 {
	if n == 1 {
		return []float64{begin}
	}
	grid := floats.Span(make([]float64, n), begin, end)
	grid[0], grid[n-1] = begin, end
	return grid
}

// Linear is a piecewise linear interpolant over (x, y) samples.
type Linear struct {
	pl     interp.PiecewiseLinear
	lo, hi float64
	single bool
	y0     float64
}

// NewLinear fits a piecewise linear interpolant. xs must be non-decreasing;
// runs of equal x collapse onto their last sample so a vertical step in the
// data becomes a jump at that x.
func NewLinear(xs, ys []float64) (*Linear, error) {
	if len(xs) != len(ys) {
		return nil, errors.Errorf("x/y length mismatch: %d != %d", len(xs), len(ys))
	}
	if len(xs) == 0 {
		return nil, errors.New("no samples to interpolate")
	}

	ux := make([]float64, 0, len(xs))
	uy := make([]float64, 0, len(ys))
	for i, x := range xs {
		if i > 0 {
			last := ux[len(ux)-1]
			if x < last {
				return nil, errors.Errorf("x not sorted at sample %d (%g < %g)", i, x, last)
			}
			if x == last {
				uy[len(uy)-1] = ys[i]
				continue
			}
		}
		ux = append(ux, x)
		uy = append(uy, ys[i])
	}

	l := &Linear{lo: ux[0], hi: ux[len(ux)-1]}
	if len(ux) == 1 {
		l.single = true
		l.y0 = uy[0]
		return l, nil
	}
	if err := l.pl.Fit(ux, uy); err != nil {
		return nil, errors.Wrap(err, "fit")
	}
	return l, nil
}

// Domain returns the x bounds of the fitted samples.
func (l *Linear) Domain() (lo, hi float64) {
	return l.lo, l.hi
}

// Contains reports whether x lies inside the fitted domain.
func (l *Linear) Contains(x float64) bool {
	return x >= l.lo && x <= l.hi
}

// At evaluates the interpolant. Outside the domain the nearest end value is
// returned; callers that must not extrapolate check Contains first.
func (l *Linear) At(x float64) float64 {
	if l.single {
		return l.y0
	}
	return l.pl.Predict(x)
}

// Resample evaluates the interpolant at every x in grid.
func (l *Linear) Resample(grid []float64) []float64 {
	out := make([]float64, len(grid))
	for i, x := range grid {
		out[i] = l.At(x)
	}
	return out
}
