package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimflat/internal/convert"
	"github.com/gyeh/claimflat/internal/db"
	"github.com/gyeh/claimflat/internal/exitcode"
	"github.com/gyeh/claimflat/internal/load"
	"github.com/gyeh/claimflat/internal/logging"
	"github.com/gyeh/claimflat/internal/report"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Flatten intercepted records and COPY them into Postgres",
	RunE:  runLoad,
}

func init() {
	addInputFlags(loadCmd)
	addDSNFlag(loadCmd)
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	_, tables, err := convert.ReadAndFlatten(log, &cfg)
	if errors.Is(err, convert.ErrNoRecords) {
		os.Exit(exitcode.NoRecords)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, tables, cfg.SelectedTables())
	if err != nil {
		var pe *load.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			if pe.Phase == "copy" {
				pool.Close()
				os.Exit(exitcode.CopyError)
			}
		} else {
			log.Error().Err(err).Msg("load failed")
		}
		pool.Close()
		os.Exit(exitcode.LoadError)
	}

	report.Load(cmd.OutOrStdout(), summary)
	return nil
}
