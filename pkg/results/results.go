// Package results converts simulator result files into typed results.
//
// Point analyses (op, sens, tf) produce a Table of name = value lines.
// Every other analysis produces a Plot: a header line naming the columns,
// then rows of whitespace separated numbers with the independent variable
// (time, frequency or swept source) in column 0.
package results

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrParse is returned for a malformed result file.
var ErrParse = errors.New("malformed result file")

// Result is either a *Table or a *Plot.
type Result interface {
	Kind() analysis.Kind
	isResult()
}

// Parse reads filename according to kind.
func Parse(kind analysis.Kind, filename string) (Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open result file")
	}
	defer f.Close()

	res, err := ParseReader(kind, f)
	if err != nil {
		return nil, errors.Wrap(err, filename)
	}
	return res, nil
}

// ParseReader is Parse for an already open stream.
func ParseReader(kind analysis.Kind, r io.Reader) (Result, error) {
	if kind.IsTable() {
		return parseTable(kind, r)
	}
	if !kind.IsPlot() {
		return nil, errors.Errorf("unknown analysis kind %d", int(kind))
	}

	p, err := parsePlot(kind, r)
	if err != nil {
		return nil, err
	}
	if kind.IsFrequency() {
		p = p.MagPhase()
	}
	return p.RemoveDuplicates(), nil
}

func parseTable(kind analysis.Kind, r io.Reader) (*Table, error) {
	t := newTable(kind)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		// 1st word: key, last word: value
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}
		if len(words) < 2 {
			return nil, errors.Wrapf(ErrParse, "line %d: want \"name = value\", got %q", lineNo, scanner.Text())
		}
		value, err := strconv.ParseFloat(words[len(words)-1], 64)
		if err != nil {
			return nil, errors.Wrapf(ErrParse, "line %d: value %q is not a number", lineNo, words[len(words)-1])
		}
		t.set(words[0], value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read table")
	}
	return t, nil
}

func parsePlot(kind analysis.Kind, r io.Reader) (*Plot, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var header []string
	var data []float64
	lineNo, rows := 0, 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if header == nil {
			if len(fields) == 0 {
				return nil, errors.Wrap(ErrParse, "line 1: missing header")
			}
			header = fields
			continue
		}
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(header) {
			return nil, errors.Wrapf(ErrParse, "line %d: ragged row, %d values for %d columns", lineNo, len(fields), len(header))
		}
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrParse, "line %d, column %s: %q is not a number", lineNo, header[i], f)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read plot")
	}
	if header == nil {
		return nil, errors.Wrap(ErrParse, "empty file")
	}
	if rows == 0 {
		return nil, errors.Wrap(ErrParse, "no data rows")
	}

	return &Plot{kind: kind, header: header, data: mat.NewDense(rows, len(header), data)}, nil
}
