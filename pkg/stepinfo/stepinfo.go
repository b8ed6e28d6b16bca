// Package stepinfo measures a step transition in one sampled signal:
// levels, threshold crossing times, rise time, peak and settling time.
//
// Every query interpolates the raw samples onto a fresh uniform grid over
// the measurement window; nothing is cached.
package stepinfo

import (
	"math"

	"github.com/edp1096/spicelab/internal/numeric"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// Fractions of the step used by the measurements.
const (
	ThresholdStart = 0.01 // still "at the initial level"
	ThresholdLow   = 0.1
	ThresholdMid   = 0.5
	ThresholdHigh  = 0.9
	SettlingBand   = 0.02 // +/- band around the final level
)

var (
	ErrNoCrossing = errors.New("signal never crosses threshold")
	ErrNoStart    = errors.New("signal never at its initial level")
	ErrFlatStep   = errors.New("initial and final levels are equal")
	ErrDomain     = errors.New("x outside sampled range")
)

type StepInfo struct {
	xBegin, xEnd float64
	npts         int
	f            *numeric.Linear
}

// New measures the step of (xs, ys) over [xBegin, xEnd] using npts grid
// points. The window must lie within the sampled x range.
func New(xs, ys []float64, xBegin, xEnd float64, npts int) (*StepInfo, error) {
	f, err := numeric.NewLinear(xs, ys)
	if err != nil {
		return nil, errors.Wrap(err, "step samples")
	}
	if npts < 2 {
		return nil, errors.Errorf("need at least 2 points, got %d", npts)
	}
	if !(xBegin < xEnd) {
		return nil, errors.Wrapf(ErrDomain, "empty window [%g, %g]", xBegin, xEnd)
	}
	if !f.Contains(xBegin) || !f.Contains(xEnd) {
		lo, hi := f.Domain()
		return nil, errors.Wrapf(ErrDomain, "window [%g, %g] not inside [%g, %g]", xBegin, xEnd, lo, hi)
	}
	return &StepInfo{xBegin: xBegin, xEnd: xEnd, npts: npts, f: f}, nil
}

// ValueAt interpolates y at x.
func (s *StepInfo) ValueAt(x float64) (float64, error) {
	if !s.f.Contains(x) {
		lo, hi := s.f.Domain()
		return 0, errors.Wrapf(ErrDomain, "x=%g not inside [%g, %g]", x, lo, hi)
	}
	return s.f.At(x), nil
}

func (s *StepInfo) Initial() float64 { return s.f.At(s.xBegin) }
func (s *StepInfo) Final() float64   { return s.f.At(s.xEnd) }
func (s *StepInfo) Delta() float64   { return s.Final() - s.Initial() }

// Level returns initial + delta*fraction.
func (s *StepInfo) Level(fraction float64) float64 {
	return s.Initial() + s.Delta()*fraction
}

func (s *StepInfo) Low() float64  { return s.Level(ThresholdLow) }
func (s *StepInfo) Mid() float64  { return s.Level(ThresholdMid) }
func (s *StepInfo) High() float64 { return s.Level(ThresholdHigh) }

// Grid returns the uniform x grid over the window and y interpolated on it.
func (s *StepInfo) Grid() (xs, ys []float64) {
	xs = numeric.Linspace(s.xBegin, s.xEnd, s.npts)
	return xs, s.f.Resample(xs)
}

// Crossing returns the first grid x where the signal reaches
// Level(fraction): y >= level for a rising step, y <= level for a falling
// one.
func (s *StepInfo) Crossing(fraction float64) (float64, error) {
	delta := s.Delta()
	if delta == 0 {
		return 0, errors.Wrapf(ErrFlatStep, "level %g", s.Initial())
	}
	level := s.Level(fraction)
	xs, ys := s.Grid()
	for i, y := range ys {
		if (delta > 0 && y >= level) || (delta < 0 && y <= level) {
			return xs[i], nil
		}
	}
	return 0, errors.Wrapf(ErrNoCrossing, "%g%% level %g", fraction*100, level)
}

func (s *StepInfo) XAtLow() (float64, error)  { return s.Crossing(ThresholdLow) }
func (s *StepInfo) XAtMid() (float64, error)  { return s.Crossing(ThresholdMid) }
func (s *StepInfo) XAtHigh() (float64, error) { return s.Crossing(ThresholdHigh) }

// RiseTime is XAtHigh - XAtLow (the fall time for a falling step).
func (s *StepInfo) RiseTime() (float64, error) {
	lo, err := s.XAtLow()
	if err != nil {
		return 0, err
	}
	hi, err := s.XAtHigh()
	if err != nil {
		return 0, err
	}
	return hi - lo, nil
}

// Peak returns the largest y on the grid and its x. Ties go to the lowest
// x.
func (s *StepInfo) Peak() (value, x float64) {
	xs, ys := s.Grid()
	i := floats.MaxIdx(ys)
	return ys[i], xs[i]
}

// Start returns the x where the signal leaves the initial level: the last
// grid x of the leading run of samples within ThresholdStart of the step.
func (s *StepInfo) Start() (float64, error) {
	delta := s.Delta()
	if delta == 0 {
		return 0, errors.Wrapf(ErrFlatStep, "level %g", s.Initial())
	}
	level := s.Level(ThresholdStart)
	xs, ys := s.Grid()

	last := -1
	for i, y := range ys {
		if (delta > 0 && y > level) || (delta < 0 && y < level) {
			break
		}
		last = i
	}
	if last < 0 {
		return 0, errors.Wrapf(ErrNoStart, "first sample %g already past %g", ys[0], level)
	}
	return xs[last], nil
}

// SettlingTime is the time from Start until the signal last leaves the
// SettlingBand around the final level. If it never leaves the band the
// last grid x is used.
func (s *StepInfo) SettlingTime() (float64, error) {
	start, err := s.Start()
	if err != nil {
		return 0, err
	}

	final := s.Final()
	band := math.Abs(s.Delta() * SettlingBand)
	lower, upper := final-band, final+band
	xs, ys := s.Grid()

	lastBelow, lastAbove := -1, -1
	for i, y := range ys {
		if y < lower {
			lastBelow = i
		}
		if y > upper {
			lastAbove = i
		}
	}
	last := len(ys) - 1
	if lastBelow >= 0 || lastAbove >= 0 {
		last = max(lastBelow, lastAbove)
	}
	return xs[last] - start, nil
}
