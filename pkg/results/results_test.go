package results_test

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestParseTable(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "op.txt")
	if err := os.WriteFile(fn, []byte("vin = 1.5e1\nvout = 3.2\n"), 0644); err != nil {
		t.Fatal(err)
	}
	res, err := results.Parse(analysis.OP, fn)
	if err != nil {
		t.Fatal(err)
	}
	tab, ok := res.(*results.Table)
	if !ok {
		t.Fatalf("got %T, want *results.Table", res)
	}
	want := map[string]float64{"vin": 15.0, "vout": 3.2}
	if !reflect.DeepEqual(tab.Values(), want) {
		t.Errorf("Values = %v, want %v", tab.Values(), want)
	}
	if !reflect.DeepEqual(tab.Keys(), []string{"vin", "vout"}) {
		t.Errorf("Keys = %v", tab.Keys())
	}
	if tab.Kind() != analysis.OP {
		t.Errorf("Kind = %v", tab.Kind())
	}
}

func TestParseTableWhitespace(t *testing.T) {
	in := "\n   v(out)   =   -2.5e-3  \n\n  i(vin) = 1e-3\nv(out) = 4\n"
	res, err := results.ParseReader(analysis.TF, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	tab := res.(*results.Table)
	if tab.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tab.Len())
	}
	if v, _ := tab.Get("v(out)"); v != 4 {
		t.Errorf("later duplicate should win, got %g", v)
	}
	if _, ok := tab.Get("missing"); ok {
		t.Error("Get(missing) ok")
	}
}

func TestParseTableErrors(t *testing.T) {
	for _, in := range []string{"lonely\n", "v(out) = abc\n"} {
		_, err := results.ParseReader(analysis.OP, strings.NewReader(in))
		if !errors.Is(err, results.ErrParse) {
			t.Errorf("ParseReader(%q) err = %v, want ErrParse", in, err)
		}
	}
}

func TestTableFormat(t *testing.T) {
	res, err := results.ParseReader(analysis.OP, strings.NewReader("in = 1500\nout_long = -0.002\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := "in        1.500k\nout_long -2.000m\n"
	if got := res.(*results.Table).Format(); got != want {
		t.Errorf("Format =\n%q\nwant\n%q", got, want)
	}
}

func TestParsePlotRemovesDuplicates(t *testing.T) {
	in := "time a a b\n0 1 1 5\n1 2 2 6\n2 3 3 7\n"
	res, err := results.ParseReader(analysis.Tran, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	p, ok := res.(*results.Plot)
	if !ok {
		t.Fatalf("got %T, want *results.Plot", res)
	}
	if !reflect.DeepEqual(p.Header(), []string{"time", "a", "b"}) {
		t.Fatalf("Header = %v", p.Header())
	}
	want := mat.NewDense(3, 3, []float64{0, 1, 5, 1, 2, 6, 2, 3, 7})
	if !mat.Equal(p.Data(), want) {
		t.Errorf("Data =\n%v", mat.Formatted(p.Data()))
	}
	if p.Rows() != 3 {
		t.Errorf("Rows = %d", p.Rows())
	}
}

func TestParsePlotMagPhase(t *testing.T) {
	in := "frequency v(out) v(out) v(in) v(in)\n1 3 4 0 0\n10 -1 0 1 1\n"
	res, err := results.ParseReader(analysis.AC, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	p := res.(*results.Plot)
	wantHeader := []string{"frequency", "v(out)-mag", "v(out)-phase", "v(in)-mag", "v(in)-phase"}
	if !reflect.DeepEqual(p.Header(), wantHeader) {
		t.Fatalf("Header = %v", p.Header())
	}
	mag, _ := p.Column("v(out)-mag")
	phase, _ := p.Column("v(out)-phase")
	if !approx(mag[0], 13.9794, 1e-4) || !approx(phase[0], 53.1301, 1e-4) {
		t.Errorf("row 0 mag/phase = %g/%g", mag[0], phase[0])
	}
	if !approx(mag[1], 0, 1e-12) || !approx(phase[1], 180, 1e-9) {
		t.Errorf("row 1 mag/phase = %g/%g", mag[1], phase[1])
	}
	inMag, _ := p.Column("v(in)-mag")
	if !approx(inMag[0], -400, 1e-9) {
		t.Errorf("zero vector magnitude = %g, want -400 dB", inMag[0])
	}
	if x, _ := p.Column("frequency"); x[1] != 10 {
		t.Errorf("sweep column changed: %v", x)
	}
}

func TestParsePlotRepeatedScale(t *testing.T) {
	in := "frequency frequency v(out) v(out)\n1 0 3 4\n2 0 3 4\n"
	res, err := results.ParseReader(analysis.Noise, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"frequency", "v(out)-mag", "v(out)-phase"}
	if got := res.(*results.Plot).Header(); !reflect.DeepEqual(got, want) {
		t.Errorf("Header = %v, want %v", got, want)
	}
}

func TestParsePlotNoMagPhaseForTran(t *testing.T) {
	in := "time v v\n0 3 4\n"
	res, err := results.ParseReader(analysis.Tran, strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	p := res.(*results.Plot)
	if !reflect.DeepEqual(p.Header(), []string{"time", "v"}) {
		t.Errorf("Header = %v", p.Header())
	}
	if v, _ := p.Column("v"); v[0] != 3 {
		t.Errorf("v = %v", v)
	}
}

func TestParsePlotErrors(t *testing.T) {
	tests := []string{
		"",
		"time v\n",
		"time v\n0 1\n1\n",
		"time v\n0 x\n",
	}
	for _, in := range tests {
		_, err := results.ParseReader(analysis.DC, strings.NewReader(in))
		if !errors.Is(err, results.ErrParse) {
			t.Errorf("ParseReader(%q) err = %v, want ErrParse", in, err)
		}
	}
	if _, err := results.Parse(analysis.DC, filepath.Join(t.TempDir(), "none.txt")); err == nil {
		t.Error("missing file parsed")
	}
}

func TestPlotColumnNotFound(t *testing.T) {
	p, err := results.NewPlot(analysis.DC, []string{"v-sweep", "out"}, mat.NewDense(1, 2, []float64{0, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Column("nope"); !errors.Is(err, results.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := results.NewPlot(analysis.DC, []string{"x"}, mat.NewDense(1, 2, nil)); err == nil {
		t.Error("header/column mismatch accepted")
	}
}

func TestDuplicateIndexes(t *testing.T) {
	got := results.DuplicateIndexes([]string{"time", "a", "a", "b", "a", "b"})
	if !reflect.DeepEqual(got, []int{2, 4, 5}) {
		t.Errorf("DuplicateIndexes = %v", got)
	}
}
