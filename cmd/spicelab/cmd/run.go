package cmd

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/config"
	"github.com/edp1096/spicelab/pkg/experiment"
	"github.com/edp1096/spicelab/pkg/netlist"
	"github.com/edp1096/spicelab/pkg/simulate"
	"github.com/edp1096/spicelab/pkg/util"
	"github.com/edp1096/spicelab/pkg/vectors"
)

type runFlags struct {
	config, section, title string
	netlists, analyses     []string
	vectors                string
	schematic              string
	maxRows                int
}

// splitAnalysis splits "name=command".
func splitAnalysis(s string) (name, command string, err error) {
	name, command, ok := strings.Cut(s, "=")
	name, command = strings.TrimSpace(name), strings.TrimSpace(command)
	if !ok || name == "" || command == "" {
		return "", "", errors.Wrapf(analysis.ErrCommand, "--analysis %q: want name=command", s)
	}
	return name, command, nil
}

func loadFragment(paths *config.Paths, name string) (*netlist.Netlist, error) {
	if !filepath.IsAbs(name) {
		name = paths.Netlist(name)
	}
	return netlist.Load(name)
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	c := &cobra.Command{
		Use:   "run",
		Short: "Assemble a deck from netlist fragments, simulate it and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			paths, err := config.Load(f.config, f.section)
			if err != nil {
				return err
			}
			if err := paths.Prepare(); err != nil {
				return err
			}
			fmt.Fprint(out, util.Section("paths", fmt.Sprintf(
				"Project path: %s\nProject section: %s\nNGSPICE executable: %s\nNetlists path: %s\nResults path: %s",
				paths.ProjectPath, f.section, paths.NgspiceExe, paths.NetlistsDir, paths.ResultsDir)))

			var fragments []*netlist.Netlist
			if f.schematic != "" {
				frag, err := exportSchematic(cmd, paths, f.schematic)
				if err != nil {
					return err
				}
				fragments = append(fragments, frag)
			}
			for _, name := range f.netlists {
				frag, err := loadFragment(paths, name)
				if err != nil {
					return errors.Wrap(err, name)
				}
				fragments = append(fragments, frag)
			}

			exp := experiment.New(paths, f.title, fragments...)
			vecs := vectors.Parse(f.vectors)
			for _, a := range f.analyses {
				name, command, err := splitAnalysis(a)
				if err != nil {
					return err
				}
				if err := exp.AddAnalysis(name, command, vecs); err != nil {
					return err
				}
			}

			res, err := exp.Run(cmd.Context())
			if errors.Is(err, simulate.ErrTimeout) {
				// incomplete run: report and carry on
				fmt.Fprintf(cmd.ErrOrStderr(), "simulation incomplete: %v\n", err)
				log.Printf("simulation incomplete: %v", err)
				return nil
			}
			if err != nil {
				return err
			}
			for _, a := range exp.Analyses {
				printResult(out, a.Name, res[a.Name], f.maxRows)
			}
			return nil
		},
	}
	c.Flags().StringVar(&f.config, "config", "config.toml", "TOML configuration file")
	c.Flags().StringVar(&f.section, "section", "", "project table in the configuration file")
	c.Flags().StringVar(&f.title, "title", "", "deck title")
	c.Flags().StringArrayVar(&f.netlists, "netlist", nil, "netlist fragment, relative to the netlists directory (repeatable)")
	c.Flags().StringArrayVar(&f.analyses, "analysis", nil, `analysis as "name=command", e.g. "tran1=tran 1u 10m" (repeatable)`)
	c.Flags().StringVar(&f.vectors, "vectors", "all", "space separated vectors to save")
	c.Flags().StringVar(&f.schematic, "schematic", "", "KiCad schematic exported into the netlists directory before the run")
	c.Flags().IntVar(&f.maxRows, "rows", 20, "maximum rows to print for swept results (0 = all)")
	c.MarkFlagRequired("section")
	c.MarkFlagRequired("analysis")
	return c
}

// exportSchematic runs the KiCad exporter and loads its netlist with the
// slashes KiCad puts in net names removed.
func exportSchematic(cmd *cobra.Command, paths *config.Paths, schematic string) (*netlist.Netlist, error) {
	if paths.KicadCmd == "" {
		return nil, errors.Wrap(config.ErrConfig, "--schematic needs KICAD_CMD_STR")
	}
	base := strings.TrimSuffix(filepath.Base(schematic), filepath.Ext(schematic))
	k := &simulate.KicadNetlist{
		Exe:        paths.KicadCmd,
		Schematic:  schematic,
		Netlist:    paths.Netlist(base + ".cir"),
		Transcript: paths.Transcript,
		Timeout:    paths.Timeout,
	}
	log.Printf("Running %s", k)
	if err := k.Run(cmd.Context()); err != nil {
		return nil, err
	}
	frag, err := netlist.Load(k.Netlist)
	if err != nil {
		return nil, err
	}
	// drop the exporter's own title and .end
	if frag.Len() > 0 && strings.HasPrefix(frag.Lines()[0], ".title") {
		if err := frag.DeleteLine(0); err != nil {
			return nil, err
		}
	}
	lines := frag.Lines()
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == ".end" {
			if err := frag.DeleteLine(i); err != nil {
				return nil, err
			}
			break
		}
	}
	frag.DelSlash()
	return frag, nil
}
