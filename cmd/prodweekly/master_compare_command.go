package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodweekly/prodweekly/internal/pipeline"
)

func newMasterCompareCommand() *cobra.Command {
	var (
		bucket     string
		allRegions bool
		masterDir  string
		label      string
	)

	cmd := &cobra.Command{
		Use:   "master-compare <weekly-run> [master.csv|master.xlsx]",
		Short: "Reconcile a weekly run against the master tables",
		Long: `Master-compare checks a weekly run against the curated master table of a
region: exact-key matching flags productions new to the master and fields
that changed, including shoot dates pushed back. With --all-regions every
region bucket is reconciled against its table in --master-dir and a
combined summary is written.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService(cmd)
			if err != nil {
				return err
			}

			masterPath := ""
			if len(args) > 1 {
				masterPath = args[1]
			}
			res, err := svc.MasterCompare(pipeline.MasterRequest{
				Weekly:     args[0],
				Master:     masterPath,
				MasterDir:  masterDir,
				Region:     bucket,
				AllRegions: allRegions,
				Label:      label,
				OutDir:     cfg.OutDir,
			})
			if err != nil {
				return fmt.Errorf("master compare: %w", err)
			}

			w := cmd.OutOrStdout()
			for _, r := range res.Regions {
				name := r.Region
				if name == "" {
					name = "All Regions"
				}
				fmt.Fprintf(w, "%s: %d updated, %d new to master, %d pushed back\n",
					name, r.Updated, r.New, r.Pushed)
			}
			fmt.Fprintf(w, "Summary: %s\n", res.Summary)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Region bucket to reconcile (default: the region named in the master table)")
	cmd.Flags().BoolVar(&allRegions, "all-regions", false, "Reconcile every region bucket against --master-dir")
	cmd.Flags().StringVar(&masterDir, "master-dir", "", "Directory of per-region master tables")
	cmd.Flags().StringVar(&label, "label", "", "Label used in output file names (default: the weekly run's label)")
	cmd.Flags().String("out-dir", "", "Directory for outputs (default: working directory)")

	return cmd
}
