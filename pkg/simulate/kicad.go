package simulate

import (
	"context"
	"strings"
	"time"
)

// KicadNetlist exports a SPICE netlist from a KiCad schematic.
type KicadNetlist struct {
	Exe        string
	Schematic  string
	Netlist    string
	Transcript string
	Timeout    time.Duration
}

func (k *KicadNetlist) Args() []string {
	return []string{
		k.Exe,
		"sch", "export", "netlist",
		"--output", k.Netlist,
		"--format", "spice",
		k.Schematic,
	}
}

func (k *KicadNetlist) String() string {
	return strings.Join(k.Args(), " ")
}

func (k *KicadNetlist) Run(ctx context.Context) error {
	return run(ctx, k.Args(), k.Timeout, k.Transcript)
}
