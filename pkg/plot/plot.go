// Package plot renders waveform columns as line charts.
package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	Width  = 16 * vg.Inch
	Height = 8 * vg.Inch
)

type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

// Axis labels an axis as "measure (units)".
type Axis struct {
	Measure string
	Units   string
	Scale   Scale
}

func (a Axis) label() string {
	if a.Units == "" {
		return a.Measure
	}
	return fmt.Sprintf("%s (%s)", a.Measure, a.Units)
}

// Limits bounds the visible range; nil leaves that side automatic.
type Limits struct {
	XMin, XMax, YMin, YMax *float64
}

// Value is a helper for filling Limits.
func Value(v float64) *float64 { return &v }

type Plot struct {
	Name    string
	Title   string
	columns [][]float64
	labels  []string
	x, y    Axis
	limits  Limits
}

// New takes columns as returned by waveform.XAndColumns: x first, then one
// slice per signal. labels names every column, x included.
func New(name, title string, columns [][]float64, labels []string) (*Plot, error) {
	if len(columns) < 2 {
		return nil, errors.Errorf("plot %s: need x and at least one signal", name)
	}
	if len(labels) != len(columns) {
		return nil, errors.Errorf("plot %s: %d labels for %d columns", name, len(labels), len(columns))
	}
	for i, c := range columns[1:] {
		if len(c) != len(columns[0]) {
			return nil, errors.Errorf("plot %s: column %s has %d points, x has %d",
				name, labels[i+1], len(c), len(columns[0]))
		}
	}
	return &Plot{
		Name:    name,
		Title:   title,
		columns: columns,
		labels:  labels,
		x:       Axis{Measure: labels[0], Scale: Linear},
		y:       Axis{Scale: Linear},
	}, nil
}

// DefineAxes sets labels and scales. Anything but "log" is linear.
func (p *Plot) DefineAxes(x, y Axis) {
	if x.Scale != Log {
		x.Scale = Linear
	}
	if y.Scale != Log {
		y.Scale = Linear
	}
	p.x, p.y = x, y
}

// Zoom sets the non-nil limits, keeping the others.
func (p *Plot) Zoom(l Limits) {
	if l.XMin != nil {
		p.limits.XMin = l.XMin
	}
	if l.XMax != nil {
		p.limits.XMax = l.XMax
	}
	if l.YMin != nil {
		p.limits.YMin = l.YMin
	}
	if l.YMax != nil {
		p.limits.YMax = l.YMax
	}
}

func positive(vs []float64) bool {
	for _, v := range vs {
		if !(v > 0) {
			return false
		}
	}
	return true
}

func (p *Plot) render() (*plot.Plot, error) {
	if p.x.Scale == Log && !positive(p.columns[0]) {
		return nil, errors.Errorf("plot %s: log x axis needs positive %s", p.Name, p.labels[0])
	}
	if p.y.Scale == Log {
		for i, c := range p.columns[1:] {
			if !positive(c) {
				return nil, errors.Errorf("plot %s: log y axis needs positive %s", p.Name, p.labels[i+1])
			}
		}
	}

	pl := plot.New()
	pl.Title.Text = p.Title
	pl.X.Label.Text = p.x.label()
	pl.Y.Label.Text = p.y.label()
	pl.Legend.Top = true
	pl.Add(plotter.NewGrid())

	xs := p.columns[0]
	for i, ys := range p.columns[1:] {
		pts := make(plotter.XYs, len(xs))
		for j := range xs {
			pts[j].X, pts[j].Y = xs[j], ys[j]
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "plot %s: %s", p.Name, p.labels[i+1])
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1.5)
		pl.Add(line)
		pl.Legend.Add(p.labels[i+1], line)
	}

	if p.x.Scale == Log {
		pl.X.Scale = plot.LogScale{}
		pl.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if p.y.Scale == Log {
		pl.Y.Scale = plot.LogScale{}
		pl.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	setLimit(&pl.X.Min, p.limits.XMin)
	setLimit(&pl.X.Max, p.limits.XMax)
	setLimit(&pl.Y.Min, p.limits.YMin)
	setLimit(&pl.Y.Max, p.limits.YMax)
	if pl.X.Min > pl.X.Max {
		return nil, errors.Errorf("plot %s: x limits inverted", p.Name)
	}
	if pl.Y.Min > pl.Y.Max {
		return nil, errors.Errorf("plot %s: y limits inverted", p.Name)
	}
	return pl, nil
}

func setLimit(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

// Filename is <dir>/<name>.png.
func (p *Plot) Filename(dir string) string {
	return filepath.Join(dir, p.Name+".png")
}

// SavePNG renders the chart into dir and returns the file written.
func (p *Plot) SavePNG(dir string) (string, error) {
	pl, err := p.render()
	if err != nil {
		return "", err
	}
	fn := p.Filename(dir)
	if err := pl.Save(Width, Height, fn); err != nil {
		return "", errors.Wrapf(err, "save %s", fn)
	}
	return fn, nil
}

func (p *Plot) String() string {
	return fmt.Sprintf("%s: %s vs %s", p.Name, strings.Join(p.labels[1:], ", "), p.labels[0])
}
