package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimflat/internal/convert"
	"github.com/gyeh/claimflat/internal/exitcode"
	"github.com/gyeh/claimflat/internal/logging"
	"github.com/gyeh/claimflat/internal/report"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run: report input files and table row counts (no writes)",
	RunE:  runPlan,
}

func init() {
	addInputFlags(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	read, tables, err := convert.ReadAndFlatten(log, &cfg)
	report.Plan(cmd.OutOrStdout(), read, tables, cfg.SelectedTables())
	if errors.Is(err, convert.ErrNoRecords) {
		os.Exit(exitcode.NoRecords)
	}
	return nil
}
