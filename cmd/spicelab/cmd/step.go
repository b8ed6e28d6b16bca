package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edp1096/spicelab/internal/consts"
	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/netlist"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/edp1096/spicelab/pkg/stepinfo"
	"github.com/edp1096/spicelab/pkg/util"
)

// parseBound turns an SI-suffixed flag value into a number; empty keeps def.
func parseBound(flag, val string, def float64) (float64, error) {
	if val == "" {
		return def, nil
	}
	v, err := netlist.ParseValue(val)
	if err != nil {
		return 0, errors.Wrapf(err, "--%s", flag)
	}
	return v, nil
}

func loadPlot(kindTag, filename string) (*results.Plot, error) {
	kind, err := analysis.ParseKind(kindTag)
	if err != nil {
		return nil, err
	}
	r, err := results.Parse(kind, filename)
	if err != nil {
		return nil, err
	}
	p, ok := r.(*results.Plot)
	if !ok {
		return nil, errors.Errorf("%s: %s results have no x axis", filename, kind)
	}
	return p, nil
}

func newStepCmd() *cobra.Command {
	var (
		kind, signal string
		xBegin, xEnd string
		npts         int
		xUnit, yUnit string
	)
	c := &cobra.Command{
		Use:   "step <file>",
		Short: "Measure rise, peak and settling of a step response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlot(kind, args[0])
			if err != nil {
				return err
			}
			ys, err := p.Column(signal)
			if err != nil {
				return err
			}
			xs, err := p.Column(p.Header()[0])
			if err != nil {
				return err
			}

			begin, err := parseBound("xbegin", xBegin, xs[0])
			if err != nil {
				return err
			}
			end, err := parseBound("xend", xEnd, xs[len(xs)-1])
			if err != nil {
				return err
			}

			si, err := stepinfo.New(xs, ys, begin, end, npts)
			if err != nil {
				return err
			}
			rep, err := si.Report()
			if err != nil {
				return err
			}
			title := fmt.Sprintf("step %s [%s, %s]", signal,
				util.FormatValueFactor(begin, xUnit), util.FormatValueFactor(end, xUnit))
			fmt.Fprint(cmd.OutOrStdout(), util.Section(title, rep.Format(xUnit, yUnit)))
			return nil
		},
	}
	c.Flags().StringVar(&kind, "kind", "tran", "analysis kind of the result file")
	c.Flags().StringVar(&signal, "signal", "", "column to measure")
	c.Flags().StringVar(&xBegin, "xbegin", "", "window start, SI suffixes allowed (default first x)")
	c.Flags().StringVar(&xEnd, "xend", "", "window end, SI suffixes allowed (default last x)")
	c.Flags().IntVar(&npts, "npts", consts.DefaultPoints, "resample points")
	c.Flags().StringVar(&xUnit, "xunit", "s", "x unit for printing")
	c.Flags().StringVar(&yUnit, "yunit", "V", "y unit for printing")
	c.MarkFlagRequired("signal")
	return c
}
