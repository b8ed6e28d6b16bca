package stepinfo

import (
	"fmt"
	"strings"

	"github.com/edp1096/spicelab/pkg/util"
)

// Report collects every measurement of a step.
type Report struct {
	Initial, Final, Delta float64
	XLow, XMid, XHigh     float64
	RiseTime              float64
	Peak, PeakX           float64
	Start, SettlingTime   float64
}

// Report runs all measurements. The first failing one is returned.
func (s *StepInfo) Report() (*Report, error) {
	var err error
	r := &Report{Initial: s.Initial(), Final: s.Final(), Delta: s.Delta()}
	if r.XLow, err = s.XAtLow(); err != nil {
		return nil, err
	}
	if r.XMid, err = s.XAtMid(); err != nil {
		return nil, err
	}
	if r.XHigh, err = s.XAtHigh(); err != nil {
		return nil, err
	}
	r.RiseTime = r.XHigh - r.XLow
	r.Peak, r.PeakX = s.Peak()
	if r.Start, err = s.Start(); err != nil {
		return nil, err
	}
	if r.SettlingTime, err = s.SettlingTime(); err != nil {
		return nil, err
	}
	return r, nil
}

// Format prints the report with y values in yUnit and x values in xUnit.
func (r *Report) Format(xUnit, yUnit string) string {
	var b strings.Builder
	row := func(name, value string) { fmt.Fprintf(&b, "%-14s%s\n", name, value) }
	row("initial", util.FormatValueFactor(r.Initial, yUnit))
	row("final", util.FormatValueFactor(r.Final, yUnit))
	row("delta", util.FormatValueFactor(r.Delta, yUnit))
	row("x at 10%", util.FormatValueFactor(r.XLow, xUnit))
	row("x at 50%", util.FormatValueFactor(r.XMid, xUnit))
	row("x at 90%", util.FormatValueFactor(r.XHigh, xUnit))
	row("rise time", util.FormatValueFactor(r.RiseTime, xUnit))
	row("peak", util.FormatValueFactor(r.Peak, yUnit))
	row("peak time", util.FormatValueFactor(r.PeakX, xUnit))
	row("start", util.FormatValueFactor(r.Start, xUnit))
	row("settling time", util.FormatValueFactor(r.SettlingTime, xUnit))
	return b.String()
}
