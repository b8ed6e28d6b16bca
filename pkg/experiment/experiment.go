// Package experiment assembles a top-level deck from netlist fragments and
// analyses, runs it through the simulator and parses every result file.
package experiment

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/config"
	"github.com/edp1096/spicelab/pkg/control"
	"github.com/edp1096/spicelab/pkg/netlist"
	"github.com/edp1096/spicelab/pkg/results"
	"github.com/edp1096/spicelab/pkg/simulate"
	"github.com/edp1096/spicelab/pkg/vectors"
)

const TopFilename = "top.cir"

type Experiment struct {
	Paths     *config.Paths
	Title     string
	Fragments []*netlist.Netlist
	Analyses  []*analysis.Analysis

	// Stamp is written into the control section; zero means time.Now.
	Stamp time.Time
}

func New(paths *config.Paths, title string, fragments ...*netlist.Netlist) *Experiment {
	return &Experiment{Paths: paths, Title: title, Fragments: fragments}
}

// AddAnalysis appends an analysis writing into the results directory.
func (e *Experiment) AddAnalysis(name, cmd string, vecs vectors.Set) error {
	for _, a := range e.Analyses {
		if a.Name == name {
			return errors.Wrapf(analysis.ErrCommand, "duplicate analysis name %q", name)
		}
	}
	a, err := analysis.New(name, cmd, vecs, e.Paths.ResultsDir)
	if err != nil {
		return err
	}
	e.Analyses = append(e.Analyses, a)
	return nil
}

func (e *Experiment) stamp() time.Time {
	if e.Stamp.IsZero() {
		return time.Now()
	}
	return e.Stamp
}

// Control returns the control section running every analysis in order.
func (e *Experiment) Control() *control.Control {
	ctl := control.New(e.stamp())
	for _, a := range e.Analyses {
		ctl.Insert(a.ControlLines()...)
	}
	return ctl
}

// TopNetlist is the title, the fragments, the control section and .end.
func (e *Experiment) TopNetlist() *netlist.Netlist {
	title := e.Title
	if title == "" {
		title = "untitled"
	}
	parts := []*netlist.Netlist{netlist.New("* " + title)}
	parts = append(parts, e.Fragments...)
	parts = append(parts, e.Control().Netlist(), netlist.New(".end"))
	return netlist.Concat(parts...)
}

// TopFile is where Run writes the deck.
func (e *Experiment) TopFile() string {
	return filepath.Join(e.Paths.NetlistsDir, TopFilename)
}

// Simulator returns the runner Run uses for the top deck.
func (e *Experiment) Simulator() *simulate.Simulator {
	return &simulate.Simulator{
		Exe:        e.Paths.NgspiceExe,
		Netlist:    e.TopFile(),
		Transcript: e.Paths.Transcript,
		Timeout:    e.Paths.Timeout,
	}
}

// Run writes the deck, simulates it and parses the result of every
// analysis. A timeout comes back as simulate.ErrTimeout with no results.
func (e *Experiment) Run(ctx context.Context) (map[string]results.Result, error) {
	if len(e.Analyses) == 0 {
		return nil, errors.Wrap(analysis.ErrCommand, "experiment has no analyses")
	}
	if err := e.TopNetlist().WriteFile(e.TopFile()); err != nil {
		return nil, err
	}

	sim := e.Simulator()
	log.Printf("Running %s", sim)
	if err := sim.Run(ctx); err != nil {
		return nil, err
	}

	out := make(map[string]results.Result, len(e.Analyses))
	for _, a := range e.Analyses {
		r, err := results.Parse(a.Kind, a.ResultsFile())
		if err != nil {
			return nil, errors.Wrapf(err, "analysis %s", a.Name)
		}
		out[a.Name] = r
	}
	return out, nil
}
