// Package waveform resamples plot results onto a uniform grid so signals
// can be range-limited, combined and plotted sample by sample.
package waveform

import (
	"github.com/edp1096/spicelab/internal/consts"
	"github.com/edp1096/spicelab/internal/numeric"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrSelection means a requested signal subset is not available. The
	// waveform is left unchanged.
	ErrSelection = errors.New("signals not a subset of the waveform")
	// ErrNotFound is shared with results so callers test one sentinel.
	ErrNotFound = results.ErrNotFound
	ErrShape    = errors.New("shape mismatch")
	ErrDomain   = errors.New("x range outside waveform domain")
)

// Waveform holds an x column and one or more y columns sampled on npts
// evenly spaced x values.
type Waveform struct {
	header []string
	data   *mat.Dense
}

// New resamples data (rows of samples, x in column 0, non-decreasing) onto
// npts uniform points spanning the first to the last x.
func New(header []string, data mat.Matrix, npts int) (*Waveform, error) {
	rows, cols := data.Dims()
	if cols != len(header) {
		return nil, errors.Wrapf(ErrShape, "header has %d names for %d columns", len(header), cols)
	}
	if rows < 1 {
		return nil, errors.Wrap(ErrShape, "no samples")
	}
	if dups := results.DuplicateIndexes(header); len(dups) > 0 {
		return nil, errors.Wrapf(ErrShape, "duplicate column %q", header[dups[0]])
	}

	x := mat.Col(nil, 0, data)
	w := &Waveform{header: append([]string(nil), header...)}
	d, err := resample(x, data, x[0], x[len(x)-1], npts)
	if err != nil {
		return nil, err
	}
	w.data = d
	return w, nil
}

// FromPlot resamples a parsed plot result.
func FromPlot(p *results.Plot, npts int) (*Waveform, error) {
	return New(p.Header(), p.Data(), npts)
}

// Default builds a waveform on the default grid size.
func Default(p *results.Plot) (*Waveform, error) {
	return FromPlot(p, consts.DefaultPoints)
}

func resample(x []float64, data mat.Matrix, begin, end float64, npts int) (*mat.Dense, error) {
	if npts < 2 {
		return nil, errors.Wrapf(ErrShape, "need at least 2 points, got %d", npts)
	}
	if !(begin < end) {
		return nil, errors.Wrapf(ErrDomain, "empty x range [%g, %g]", begin, end)
	}

	_, cols := data.Dims()
	out := mat.NewDense(npts, cols, nil)
	grid := numeric.Linspace(begin, end, npts)
	out.SetCol(0, grid)

	for j := 1; j < cols; j++ {
		f, err := numeric.NewLinear(x, mat.Col(nil, j, data))
		if err != nil {
			return nil, errors.Wrapf(ErrDomain, "column %d: %v", j, err)
		}
		out.SetCol(j, f.Resample(grid))
	}
	return out, nil
}

func (w *Waveform) Header() []string {
	return append([]string(nil), w.header...)
}

// Npts is the number of rows.
func (w *Waveform) Npts() int {
	r, _ := w.data.Dims()
	return r
}

// Data returns a copy of the sample matrix.
func (w *Waveform) Data() *mat.Dense {
	return mat.DenseCopyOf(w.data)
}

// Domain returns the first and last x.
func (w *Waveform) Domain() (begin, end float64) {
	return w.data.At(0, 0), w.data.At(w.Npts()-1, 0)
}

func (w *Waveform) index(name string) int {
	for i, h := range w.header {
		if h == name {
			return i
		}
	}
	return -1
}

// Select keeps only the named columns plus the x column. Every name must
// exist; otherwise ErrSelection is returned and nothing changes.
func (w *Waveform) Select(names []string) error {
	want := make(map[string]bool, len(names))
	var missing []string
	for _, n := range names {
		if w.index(n) < 0 {
			missing = append(missing, n)
		}
		want[n] = true
	}
	if len(missing) > 0 {
		return errors.Wrapf(ErrSelection, "unknown %q", missing)
	}

	keep := []int{0}
	for i := 1; i < len(w.header); i++ {
		if want[w.header[i]] {
			keep = append(keep, i)
		}
	}

	header := make([]string, len(keep))
	data := mat.NewDense(w.Npts(), len(keep), nil)
	for j, src := range keep {
		header[j] = w.header[src]
		data.SetCol(j, mat.Col(nil, src, w.data))
	}
	w.header, w.data = header, data
	return nil
}

// RestrictDomain resamples every column onto npts points over
// [xBegin, xEnd]. The range must lie inside the current domain; the
// waveform does not extrapolate.
func (w *Waveform) RestrictDomain(xBegin, xEnd float64, npts int) error {
	lo, hi := w.Domain()
	if xBegin < lo || xEnd > hi {
		return errors.Wrapf(ErrDomain, "[%g, %g] not inside [%g, %g]", xBegin, xEnd, lo, hi)
	}
	d, err := resample(mat.Col(nil, 0, w.data), w.data, xBegin, xEnd, npts)
	if err != nil {
		return err
	}
	w.data = d
	return nil
}

// Column returns a copy of the named column.
func (w *Waveform) Column(name string) ([]float64, error) {
	i := w.index(name)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "column %q", name)
	}
	return mat.Col(nil, i, w.data), nil
}

// X returns a copy of the x column.
func (w *Waveform) X() []float64 {
	return mat.Col(nil, 0, w.data)
}

// XAndColumns returns the x column followed by each named column in the
// requested order, the layout plotting and step measurements consume.
func (w *Waveform) XAndColumns(names ...string) ([][]float64, error) {
	out := [][]float64{w.X()}
	for _, n := range names {
		col, err := w.Column(n)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// Append adds a named column. values must have Npts entries.
func (w *Waveform) Append(name string, values []float64) error {
	if len(values) != w.Npts() {
		return errors.Wrapf(ErrShape, "column %q has %d values, waveform has %d rows", name, len(values), w.Npts())
	}
	if w.index(name) >= 0 {
		return errors.Wrapf(ErrShape, "column %q already exists", name)
	}

	rows, cols := w.data.Dims()
	data := mat.NewDense(rows, cols+1, nil)
	data.Slice(0, rows, 0, cols).(*mat.Dense).Copy(w.data)
	data.SetCol(cols, values)
	w.header = append(w.header, name)
	w.data = data
	return nil
}
