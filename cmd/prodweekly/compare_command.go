package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodweekly/prodweekly/internal/pipeline"
)

func newCompareCommand() *cobra.Command {
	var (
		baseline string
		label    string
		out      string
	)

	cmd := &cobra.Command{
		Use:   "compare <old-run> <new-run>",
		Short: "Compare two weekly runs",
		Long: `Compare diffs two extraction runs, old against new. A run may be named
by its folder or by its FullSchema CSV. The differences are written in
the full schema and in the master-schema projection.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService(cmd)
			if err != nil {
				return err
			}

			outDir := out
			if outDir == "" {
				outDir = cfg.OutDir
			}
			res, err := svc.Compare(pipeline.CompareRequest{
				Old:      args[0],
				New:      args[1],
				Baseline: baseline,
				Label:    label,
				OutDir:   outDir,
			})
			if err != nil {
				return fmt.Errorf("compare runs: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "New: %d  Updated: %d  Removed: %d\n",
				res.Summary.New, res.Summary.Updated, res.Summary.Removed)
			fmt.Fprintf(w, "Comparison CSV: %s\n", res.FullCSV)
			fmt.Fprintf(w, "Master projection: %s\n", res.MasterCSV)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseline, "baseline", "", "Title list used for note ordinals (default: the new run's baseline)")
	cmd.Flags().StringVar(&label, "label", "", "Label used in output file names (default: the new run's label)")
	cmd.Flags().StringVar(&out, "out", "", "Directory for comparison outputs (default: out-dir)")

	return cmd
}
