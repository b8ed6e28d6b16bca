package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicelab/internal/consts"
	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/plot"
	"github.com/edp1096/spicelab/pkg/vectors"
	"github.com/edp1096/spicelab/pkg/waveform"
)

func xUnitFor(kind analysis.Kind) string {
	switch {
	case kind.IsFrequency():
		return "Hz"
	case kind.IsTime():
		return "s"
	case kind.IsSweep():
		return "V"
	}
	return ""
}

func newPlotCmd() *cobra.Command {
	var (
		signals, outDir, name, title string
		yMeasure, yUnit              string
		xLog, yLog                   bool
		npts                         int
	)
	c := &cobra.Command{
		Use:   "plot <kind> <file>",
		Short: "Resample a swept result and save it as a PNG chart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlot(args[0], args[1])
			if err != nil {
				return err
			}
			w, err := waveform.FromPlot(p, npts)
			if err != nil {
				return err
			}
			if signals != "" {
				if err := w.Select(vectors.Parse(signals).List()); err != nil {
					return err
				}
			}

			header := w.Header()
			cols, err := w.XAndColumns(header[1:]...)
			if err != nil {
				return err
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[1]), filepath.Ext(args[1]))
			}
			if title == "" {
				title = name
			}

			pl, err := plot.New(name, title, cols, header)
			if err != nil {
				return err
			}
			xScale, yScale := plot.Linear, plot.Linear
			if xLog {
				xScale = plot.Log
			}
			if yLog {
				yScale = plot.Log
			}
			pl.DefineAxes(
				plot.Axis{Measure: header[0], Units: xUnitFor(p.Kind()), Scale: xScale},
				plot.Axis{Measure: yMeasure, Units: yUnit, Scale: yScale},
			)

			fn, err := pl.SavePNG(outDir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", pl, fn)
			return nil
		},
	}
	c.Flags().StringVar(&signals, "signals", "", "space separated columns to plot (default all)")
	c.Flags().StringVar(&outDir, "out", ".", "directory for the PNG")
	c.Flags().StringVar(&name, "name", "", "chart file name without extension (default result file name)")
	c.Flags().StringVar(&title, "title", "", "chart title")
	c.Flags().StringVar(&yMeasure, "ymeasure", "signal", "y axis label")
	c.Flags().StringVar(&yUnit, "yunit", "", "y axis unit")
	c.Flags().BoolVar(&xLog, "xlog", false, "logarithmic x axis")
	c.Flags().BoolVar(&yLog, "ylog", false, "logarithmic y axis")
	c.Flags().IntVar(&npts, "npts", consts.DefaultPoints, "resample points")
	return c
}
