package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicelab/internal/logging"
)

type globalFlags struct {
	verbose bool
	logFile string
	cleanup func()
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:   "spicelab",
		Short: "Drive ngspice experiments and post-process their results",
		Long: `Build netlists, run them through ngspice, and measure the results.

Examples:
  spicelab parse op results/op1.txt                     # Print an operating point
  spicelab step results/tran1.txt --signal v(out)       # Rise and settling time
  spicelab plot ac results/ac1.txt --signals v(out) --xlog
  spicelab run --config config.toml --section SEC_1_04_01 \
      --netlist dut.cir --netlist stimulus.cir --analysis "tran1=tran 1u 10m"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cleanup, err := logging.Setup(g.logFile, g.verbose)
			if err != nil {
				return err
			}
			g.cleanup = cleanup
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if g.cleanup != nil {
				g.cleanup()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "log to stderr")
	root.PersistentFlags().StringVar(&g.logFile, "log", "", "append log output to this file")

	root.AddCommand(newParseCmd(), newStepCmd(), newPlotCmd(), newRunCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
