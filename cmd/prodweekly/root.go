package main

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/prodweekly/prodweekly/internal/config"
	"github.com/prodweekly/prodweekly/internal/pipeline"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// boundFlags are the flag names that override the environment and the
// config file on commands that define them.
var boundFlags = []string{"out-dir", "columns", "log-level"}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "prodweekly",
		Short:         "Production Weekly extraction and reconciliation",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.Setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newMasterCompareCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// loadService binds the command's flags into the configuration, loads and
// validates it, and assembles the pipeline behind a logger on stderr.
func loadService(cmd *cobra.Command) (*pipeline.Service, *config.Config, error) {
	config.Bind(cmd.Flags(), boundFlags...)
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	svc, err := pipeline.New(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	return svc, cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "prodweekly %s\n", version)
			fmt.Fprintf(out, "Build Time: %s\n", buildTime)
			fmt.Fprintf(out, "Git Commit: %s\n", gitCommit)
			fmt.Fprintf(out, "Built with: %s\n", runtime.Version())
		},
	}
}
