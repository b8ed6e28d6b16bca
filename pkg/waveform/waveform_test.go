package waveform_test

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/edp1096/spicelab/pkg/waveform"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func newTestWave(t *testing.T, npts int) *waveform.Waveform {
	t.Helper()
	// y = x, y = 2x, y = x^2 sampled at 0, 1, 2
	data := mat.NewDense(3, 4, []float64{
		0, 0, 0, 0,
		1, 1, 2, 1,
		2, 2, 4, 4,
	})
	w, err := waveform.New([]string{"time", "a", "b", "sq"}, data, npts)
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestNewResamples(t *testing.T) {
	w := newTestWave(t, 1000)
	if w.Npts() != 1000 {
		t.Fatalf("Npts = %d", w.Npts())
	}
	x := w.X()
	if x[0] != 0 || x[999] != 2 {
		t.Errorf("x endpoints = %g, %g", x[0], x[999])
	}
	for i := 1; i < len(x); i++ {
		if !(x[i] > x[i-1]) {
			t.Fatalf("x not strictly increasing at %d", i)
		}
		if !approx(x[i]-x[i-1], 2.0/999, 1e-12) {
			t.Fatalf("x not uniform at %d", i)
		}
	}
	sq, err := w.Column("sq")
	if err != nil {
		t.Fatal(err)
	}
	if !approx(sq[0], 0, 1e-12) || !approx(sq[999], 4, 1e-12) {
		t.Errorf("sq endpoints = %g, %g", sq[0], sq[999])
	}
	// midpoint of the second segment is linear, not quadratic
	w2 := newTestWave(t, 5)
	sq, _ = w2.Column("sq")
	if !reflect.DeepEqual(sq, []float64{0, 0.5, 1, 2.5, 4}) {
		t.Errorf("sq on 5 points = %v", sq)
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := waveform.New([]string{"x"}, mat.NewDense(2, 2, []float64{0, 0, 1, 1}), 10); !errors.Is(err, waveform.ErrShape) {
		t.Errorf("header mismatch err = %v", err)
	}
	if _, err := waveform.New([]string{"x", "a", "a"}, mat.NewDense(2, 3, nil), 10); !errors.Is(err, waveform.ErrShape) {
		t.Errorf("duplicate header err = %v", err)
	}
	if _, err := waveform.New([]string{"x", "a"}, mat.NewDense(2, 2, []float64{0, 0, 1, 1}), 1); !errors.Is(err, waveform.ErrShape) {
		t.Errorf("npts=1 err = %v", err)
	}
	if _, err := waveform.New([]string{"x", "a"}, mat.NewDense(1, 2, []float64{0, 3}), 10); !errors.Is(err, waveform.ErrDomain) {
		t.Errorf("single sample err = %v", err)
	}
	if _, err := waveform.New([]string{"x", "a"}, mat.NewDense(3, 2, []float64{0, 0, 2, 1, 1, 2}), 10); !errors.Is(err, waveform.ErrDomain) {
		t.Errorf("decreasing x err = %v", err)
	}
}

func TestFromPlot(t *testing.T) {
	res, err := results.ParseReader(analysis.Tran, strings.NewReader("time out 0\n0 0 0\n1 10 0\n"))
	if err != nil {
		t.Fatal(err)
	}
	w, err := waveform.Default(res.(*results.Plot))
	if err != nil {
		t.Fatal(err)
	}
	if w.Npts() != 1000 || !reflect.DeepEqual(w.Header(), []string{"time", "out", "0"}) {
		t.Errorf("Npts = %d, Header = %v", w.Npts(), w.Header())
	}
}

func TestSelect(t *testing.T) {
	w := newTestWave(t, 10)
	if err := w.Select([]string{"sq", "a"}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(w.Header(), []string{"time", "a", "sq"}) {
		t.Errorf("Header = %v", w.Header())
	}
	if _, c := w.Data().Dims(); c != 3 {
		t.Errorf("columns = %d", c)
	}
	sq, _ := w.Column("sq")
	if sq[9] != 4 {
		t.Errorf("sq moved: %v", sq)
	}
}

func TestSelectRejectsNonSubset(t *testing.T) {
	w := newTestWave(t, 10)
	before := w.Data()
	err := w.Select([]string{"nonexistent"})
	if !errors.Is(err, waveform.ErrSelection) {
		t.Fatalf("err = %v, want ErrSelection", err)
	}
	if !reflect.DeepEqual(w.Header(), []string{"time", "a", "b", "sq"}) || !mat.Equal(before, w.Data()) {
		t.Error("waveform changed after rejected selection")
	}
	if err := w.Select([]string{"a", "nonexistent"}); !errors.Is(err, waveform.ErrSelection) {
		t.Errorf("partial subset err = %v", err)
	}
}

func TestRestrictDomain(t *testing.T) {
	w := newTestWave(t, 1000)
	if err := w.RestrictDomain(0.5, 1.5, 11); err != nil {
		t.Fatal(err)
	}
	if w.Npts() != 11 {
		t.Fatalf("Npts = %d", w.Npts())
	}
	begin, end := w.Domain()
	if begin != 0.5 || end != 1.5 {
		t.Errorf("Domain = [%g, %g]", begin, end)
	}
	b, _ := w.Column("b")
	if !approx(b[0], 1, 1e-9) || !approx(b[10], 3, 1e-9) {
		t.Errorf("b endpoints = %g, %g", b[0], b[10])
	}

	for _, r := range [][2]float64{{-1, 1}, {0.5, 3}, {1, 1}, {1.2, 0.8}} {
		err := w.RestrictDomain(r[0], r[1], 10)
		if !errors.Is(err, waveform.ErrDomain) {
			t.Errorf("RestrictDomain(%g, %g) err = %v", r[0], r[1], err)
		}
	}
	if w.Npts() != 11 {
		t.Error("failed RestrictDomain changed the waveform")
	}
}

func TestXAndColumns(t *testing.T) {
	w := newTestWave(t, 3)
	cols, err := w.XAndColumns("sq", "a")
	if err != nil {
		t.Fatal(err)
	}
	want := [][]float64{{0, 1, 2}, {0, 1, 4}, {0, 1, 2}}
	if !reflect.DeepEqual(cols, want) {
		t.Errorf("XAndColumns = %v", cols)
	}
	if _, err := w.XAndColumns("a", "zz"); !errors.Is(err, waveform.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := w.Column("zz"); !errors.Is(err, waveform.ErrNotFound) {
		t.Errorf("Column err = %v", err)
	}
}

func TestAppend(t *testing.T) {
	w := newTestWave(t, 3)
	if err := w.Append("c", []float64{7, 8, 9}); err != nil {
		t.Fatal(err)
	}
	c, _ := w.Column("c")
	if !reflect.DeepEqual(c, []float64{7, 8, 9}) {
		t.Errorf("c = %v", c)
	}
	a, _ := w.Column("a")
	if !reflect.DeepEqual(a, []float64{0, 1, 2}) {
		t.Errorf("existing column changed: %v", a)
	}
	if err := w.Append("d", []float64{1, 2}); !errors.Is(err, waveform.ErrShape) {
		t.Errorf("short column err = %v", err)
	}
	if err := w.Append("a", []float64{1, 2, 3}); !errors.Is(err, waveform.ErrShape) {
		t.Errorf("duplicate name err = %v", err)
	}
}

func TestArithmetic(t *testing.T) {
	data := mat.NewDense(2, 3, []float64{
		0, 4, 2,
		1, 4, 0,
	})
	w, err := waveform.New([]string{"t", "num", "den"}, data, 2)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Divide("num", "den", "r"); err != nil {
		t.Fatal(err)
	}
	r, _ := w.Column("r")
	if !reflect.DeepEqual(r, []float64{2, 0}) {
		t.Errorf("divide = %v, want [2 0]", r)
	}
	if err := w.Multiply("num", "den", "p"); err != nil {
		t.Fatal(err)
	}
	p, _ := w.Column("p")
	if !reflect.DeepEqual(p, []float64{8, 0}) {
		t.Errorf("multiply = %v", p)
	}
	if err := w.Scale(-0.5, "num", "s"); err != nil {
		t.Fatal(err)
	}
	s, _ := w.Column("s")
	if !reflect.DeepEqual(s, []float64{-2, -2}) {
		t.Errorf("scale = %v", s)
	}
	if err := w.Multiply("num", "missing", "q"); !errors.Is(err, waveform.ErrNotFound) {
		t.Errorf("missing operand err = %v", err)
	}
}
