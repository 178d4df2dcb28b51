package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prodweekly/prodweekly/internal/config"
	"github.com/prodweekly/prodweekly/internal/pdf"
)

func newScanCommand() *cobra.Command {
	var pattern string

	cmd := &cobra.Command{
		Use:   "scan <directory>",
		Short: "List the issue PDFs in a drop folder",
		Long: `Scan lists the issue PDFs sitting in a weekly drop folder, in file-name
order so issues appear in date order, with the folder totals. A glob
pattern such as "PW_*.pdf" narrows the listing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config.Bind(cmd.Flags(), boundFlags...)
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			search := pdf.NewSearch(cfg.MaxFileSize)
			issues, err := search.FindIssues(args[0], pattern)
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}
			stats := pdf.NewStats(cfg.MaxFileSize)

			w := cmd.OutOrStdout()
			for _, f := range issues {
				line := fmt.Sprintf("%s  %10d  %s", f.ModifiedTime, f.Size, f.Name)
				if st, err := stats.GetFileStats(pdf.PDFStatsFileRequest{Path: f.Path}); err == nil {
					line += fmt.Sprintf("  (%d pages)", st.Pages)
				}
				fmt.Fprintln(w, line)
			}

			dir, err := stats.GetDirectoryStats(pdf.PDFStatsDirectoryRequest{Directory: args[0]})
			if err != nil {
				return fmt.Errorf("scan %s: %w", args[0], err)
			}
			if dir.TotalFiles == 0 {
				fmt.Fprintln(w, "No issue PDFs found")
				return nil
			}
			fmt.Fprintf(w, "%d issue PDFs, %d bytes, largest %s\n",
				dir.TotalFiles, dir.TotalSize, dir.LargestFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&pattern, "pattern", "", `File-name glob, e.g. "PW_*.pdf"`)

	return cmd
}
