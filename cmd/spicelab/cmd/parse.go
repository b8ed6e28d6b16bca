package cmd

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/edp1096/spicelab/pkg/analysis"
	"github.com/edp1096/spicelab/pkg/results"
)

func newParseCmd() *cobra.Command {
	var maxRows int
	c := &cobra.Command{
		Use:   "parse <kind> <file>",
		Short: "Parse and print a simulator result file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := analysis.ParseKind(args[0])
			if err != nil {
				return err
			}
			r, err := results.Parse(kind, args[1])
			if err != nil {
				return err
			}
			name := strings.TrimSuffix(filepath.Base(args[1]), filepath.Ext(args[1]))
			printResult(cmd.OutOrStdout(), name, r, maxRows)
			return nil
		},
	}
	c.Flags().IntVar(&maxRows, "rows", 20, "maximum rows to print for swept results (0 = all)")
	return c
}
