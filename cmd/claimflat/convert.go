package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimflat/internal/config"
	"github.com/gyeh/claimflat/internal/convert"
	"github.com/gyeh/claimflat/internal/exitcode"
	"github.com/gyeh/claimflat/internal/logging"
	"github.com/gyeh/claimflat/internal/report"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Flatten intercepted records into table files",
	RunE:  runConvert,
}

func init() {
	addInputFlags(convertCmd)
	f := convertCmd.Flags()
	f.StringVar(&cfg.OutDir, config.FlagOutDir, ".", "Directory for output files")
	f.StringVar(&cfg.Format, config.FlagFormat, config.FormatCSV, "Output format: csv, parquet or both")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := convert.Run(log, &cfg)
	if err != nil {
		if errors.Is(err, convert.ErrNoRecords) {
			os.Exit(exitcode.NoRecords)
		}
		log.Error().Err(err).Msg("convert failed")
		os.Exit(exitcode.UsageError)
	}

	report.Convert(cmd.OutOrStdout(), summary)
	return nil
}
