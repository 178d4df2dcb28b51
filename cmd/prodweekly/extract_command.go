package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodweekly/prodweekly/internal/pipeline"
)

func newExtractCommand() *cobra.Command {
	var (
		label     string
		pageDumps bool
	)

	cmd := &cobra.Command{
		Use:   "extract <issue.pdf|structured.txt>",
		Short: "Extract one issue into the canonical run files",
		Long: `Extract reads a Production Weekly issue PDF (or the structured text dump
of an earlier run) and writes the run artifacts: the FullSchema CSV, the
baseline and filtered title lists, and for PDF input the structured text
dump plus per-production files.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := loadService(cmd)
			if err != nil {
				return err
			}

			res, err := svc.Extract(pipeline.ExtractRequest{
				Input:     args[0],
				OutDir:    cfg.OutDir,
				Label:     label,
				PageDumps: pageDumps,
			})
			if err != nil {
				return fmt.Errorf("extract %s: %w", args[0], err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Extracted %d productions (%d filtered out)\n", res.Kept, res.Excluded)
			fmt.Fprintf(out, "Schema CSV: %s\n", res.CSV)
			fmt.Fprintf(out, "Baseline titles: %s\n", res.Baseline)
			if res.Structured != "" {
				fmt.Fprintf(out, "Structured text: %s\n", res.Structured)
			}
			return nil
		},
	}

	cmd.Flags().String("out-dir", "", "Directory for run outputs (default: working directory)")
	cmd.Flags().String("columns", "", "Page column mode: auto, single, or double")
	cmd.Flags().StringVar(&label, "label", "", "Run label used in output file names (default: input stem)")
	cmd.Flags().BoolVar(&pageDumps, "page-dumps", false, "Also write per-page text dumps")

	return cmd
}
