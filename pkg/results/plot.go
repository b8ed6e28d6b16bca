package results

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096/spicelab/internal/consts"
	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrNotFound is returned when a named column does not exist.
var ErrNotFound = errors.New("signal not found")

// Plot is a header plus a rows x columns matrix. Column 0 is the
// independent variable. A Plot is never modified; transforms return a new
// one.
type Plot struct {
	kind   analysis.Kind
	header []string
	data   *mat.Dense
}

// NewPlot copies header and data into a Plot.
func NewPlot(kind analysis.Kind, header []string, data mat.Matrix) (*Plot, error) {
	r, c := data.Dims()
	if c != len(header) {
		return nil, errors.Errorf("header has %d names for %d columns", len(header), c)
	}
	if r == 0 {
		return nil, errors.New("no data rows")
	}
	return &Plot{
		kind:   kind,
		header: append([]string(nil), header...),
		data:   mat.DenseCopyOf(data),
	}, nil
}

func (p *Plot) Kind() analysis.Kind { return p.kind }
func (p *Plot) isResult()           {}

func (p *Plot) Header() []string {
	return append([]string(nil), p.header...)
}

// Data returns a copy of the sample matrix.
func (p *Plot) Data() *mat.Dense {
	return mat.DenseCopyOf(p.data)
}

func (p *Plot) Rows() int {
	r, _ := p.data.Dims()
	return r
}

func (p *Plot) index(name string) int {
	for i, h := range p.header {
		if h == name {
			return i
		}
	}
	return -1
}

// Column returns a copy of the named column.
func (p *Plot) Column(name string) ([]float64, error) {
	i := p.index(name)
	if i < 0 {
		return nil, errors.Wrapf(ErrNotFound, "column %q", name)
	}
	return mat.Col(nil, i, p.data), nil
}

// MagPhase converts adjacent same-named (real, imaginary) columns into
// (magnitude in dB, phase in degrees) and renames them <name>-mag and
// <name>-phase. Column 0 is the sweep variable and is never converted.
func (p *Plot) MagPhase() *Plot {
	header := p.Header()
	data := p.Data()
	rows := p.Rows()

	for i := 1; i < len(header)-1; i++ {
		if header[i] != header[i+1] {
			continue
		}
		for r := 0; r < rows; r++ {
			v := complex(data.At(r, i), data.At(r, i+1))
			data.Set(r, i, 20*math.Log10(cmplx.Abs(v)+consts.MagnitudeFloor))
			data.Set(r, i+1, cmplx.Phase(v)*180/math.Pi)
		}
		header[i] += "-mag"
		header[i+1] += "-phase"
	}
	return &Plot{kind: p.kind, header: header, data: data}
}

// DuplicateIndexes lists every column whose name already appeared to its
// left.
func DuplicateIndexes(header []string) []int {
	var dups []int
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if _, ok := seen[h]; ok {
			dups = append(dups, i)
			continue
		}
		seen[h] = struct{}{}
	}
	return dups
}

// RemoveDuplicates drops repeated columns, keeping the first occurrence.
// The simulator repeats shared vectors such as the reference node.
func (p *Plot) RemoveDuplicates() *Plot {
	dups := DuplicateIndexes(p.header)
	if len(dups) == 0 {
		return &Plot{kind: p.kind, header: p.Header(), data: p.Data()}
	}

	drop := make(map[int]bool, len(dups))
	for _, i := range dups {
		drop[i] = true
	}
	keep := make([]int, 0, len(p.header)-len(dups))
	header := make([]string, 0, len(p.header)-len(dups))
	for i, h := range p.header {
		if !drop[i] {
			keep = append(keep, i)
			header = append(header, h)
		}
	}

	rows := p.Rows()
	data := mat.NewDense(rows, len(keep), nil)
	for j, src := range keep {
		data.SetCol(j, mat.Col(nil, src, p.data))
	}
	return &Plot{kind: p.kind, header: header, data: data}
}

func (p *Plot) String() string {
	return fmt.Sprintf("analysis_type: %s\n\nheader:\n%v\n\ndata_plot:\n%v\n",
		p.kind, p.header, mat.Formatted(p.data, mat.Squeeze()))
}
