package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/edp1096/spicelab/pkg/util"
)

func unitFor(name string) string {
	if strings.HasPrefix(name, "i(") || strings.HasSuffix(name, "#branch") {
		return "A"
	}
	return "V"
}

func formatX(kind analysis.Kind, x float64) string {
	switch {
	case kind.IsFrequency():
		return util.FormatFrequency(x)
	case kind.IsTime():
		return fmt.Sprintf("%11s", util.FormatValueFactor(x, "s"))
	case kind.IsSweep():
		return fmt.Sprintf("%11s", util.FormatValueFactor(x, "V"))
	default:
		return fmt.Sprintf("%11.4g", x)
	}
}

func printResult(w io.Writer, name string, r results.Result, maxRows int) {
	switch r := r.(type) {
	case *results.Table:
		fmt.Fprint(w, util.Section(name, r.String()))
	case *results.Plot:
		fmt.Fprint(w, util.Section(name, formatPlot(r, maxRows)))
	}
}

// formatPlot prints at most maxRows evenly spaced rows, always including the
// last. maxRows <= 0 prints everything.
func formatPlot(p *results.Plot, maxRows int) string {
	var b strings.Builder
	header := p.Header()
	data := p.Data()
	rows := p.Rows()
	fmt.Fprintf(&b, "analysis_type: %s\n%s analysis results (%d points)\n", p.Kind(), p.Kind(), rows)
	fmt.Fprintf(&b, "columns: %s\n\n", strings.Join(header, " "))

	stride := 1
	if maxRows > 0 && rows > maxRows {
		stride = (rows + maxRows - 1) / maxRows
	}

	for i := 0; i < rows; i++ {
		if i%stride != 0 && i != rows-1 {
			continue
		}
		fmt.Fprintf(&b, "%s  ", formatX(p.Kind(), data.At(i, 0)))
		for j := 1; j < len(header); j++ {
			name := header[j]
			if base, ok := strings.CutSuffix(name, "-mag"); ok && j+1 < len(header) && header[j+1] == base+"-phase" {
				fmt.Fprintf(&b, "%s  ", util.FormatMagnitudePhase(base, data.At(i, j), data.At(i, j+1)))
				j++
				continue
			}
			fmt.Fprintf(&b, "%s=%s  ", name, util.FormatValueFactor(data.At(i, j), unitFor(name)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
