package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/claimflat/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "claimflat",
	Short: "Claims JSON → CSV flattener",
	Long: "Flattens intercepted claims-portal records into seven normalized tables " +
		"(claims, payments, logs, diagnoses, treatments, documents, addresses) " +
		"and writes them as CSV or Parquet, or bulk-loads them into Postgres.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfg.ConfigFile == "" {
			return nil
		}
		return cfg.MergeFile(cfg.ConfigFile, cmd.Flags().Changed)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.ConfigFile, "config", "", "Path to YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error")
}

// addInputFlags registers the flags shared by every command that reads
// intercepted-records files.
func addInputFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringArrayVar(&cfg.Inputs, config.FlagInputs, nil, "Intercepted records JSON file (repeatable, default "+config.DefaultInput+")")
	f.StringSliceVar(&cfg.Tables, config.FlagTables, nil, "Comma-separated tables to write (default the seven core tables; line_items and line_item_deductions are opt-in)")
	f.StringVar(&cfg.DateLayout, config.FlagDateLayout, "", "Go time layout of claim dates, enables length-of-stay and payment TAT")
}

func addDSNFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cfg.DSN, config.FlagDSN, os.Getenv("CLAIMFLAT_DB_URL"), "Postgres connection string (or set CLAIMFLAT_DB_URL)")
}
