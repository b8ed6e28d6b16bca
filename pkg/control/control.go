// Package control builds the .control ... .endc section that tells the
// simulator which analyses to run and where to write their vectors.
package control

import (
	"os"
	"strings"
	"time"

	"github.com/edp1096/spicelab/pkg/netlist"
	"github.com/pkg/errors"
)

type Control struct {
	beginning []string
	middle    []string
	ending    []string
}

// New starts a control section stamped with now.
func New(now time.Time) *Control {
	return &Control{
		beginning: []string{
			".control",
			"* Timestamp: " + now.Format(time.ANSIC),
			"set wr_singlescale  $ makes one x-axis for wrdata",
			"set wr_vecnames     $ puts names at top of columns",
		},
		ending: []string{"quit", ".endc"},
	}
}

// Insert appends command lines between the preamble and quit.
func (c *Control) Insert(lines ...string) {
	c.middle = append(c.middle, lines...)
}

func (c *Control) Lines() []string {
	out := make([]string, 0, len(c.beginning)+len(c.middle)+len(c.ending))
	out = append(out, c.beginning...)
	out = append(out, c.middle...)
	return append(out, c.ending...)
}

func (c *Control) String() string {
	return strings.Join(c.Lines(), "\n")
}

// Netlist returns the section as a fragment for netlist.Concat. Case is
// kept so result paths survive on case-sensitive file systems.
func (c *Control) Netlist() *netlist.Netlist {
	return netlist.Verbatim(c.String())
}

// WriteFile writes the section, one line per row.
func (c *Control) WriteFile(filename string) error {
	if err := os.WriteFile(filename, []byte(c.String()+"\n"), 0644); err != nil {
		return errors.Wrap(err, "write control file")
	}
	return nil
}
