package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gyeh/claimflat/internal/model"
)

// Output formats.
const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
	FormatBoth    = "both"
)

// DefaultInput is the file the scraper writes its intercepted records to.
const DefaultInput = "intercepted_api_data.json"

// Config holds all runtime configuration for a claimflat run.
type Config struct {
	ConfigFile string
	Inputs     []string
	OutDir     string
	Format     string   // "csv", "parquet" or "both"
	Tables     []string // names from model.KnownTables; empty means model.AllTables
	DateLayout string   // Go time layout for claim dates; empty disables date analytics
	DSN        string
	LogFormat  string // "text" or "json"
	LogLevel   string
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Inputs     []string `yaml:"inputs"`
	OutDir     string   `yaml:"out_dir"`
	Format     string   `yaml:"format"`
	Tables     []string `yaml:"tables"`
	DateLayout string   `yaml:"date_layout"`
	DSN        string   `yaml:"dsn"`
}

// Flag names the YAML keys yield to when set on the command line.
const (
	FlagInputs     = "in"
	FlagOutDir     = "out-dir"
	FlagFormat     = "format"
	FlagTables     = "tables"
	FlagDateLayout = "date-layout"
	FlagDSN        = "dsn"
)

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values present in the file replace the current ones.
func (c *Config) LoadFromFile(path string) error {
	return c.MergeFile(path, nil)
}

// MergeFile is LoadFromFile for a parsed command line: a value is taken
// from the file only when changed reports its flag as not set explicitly.
// A nil changed treats every flag as unset.
func (c *Config) MergeFile(path string, changed func(flag string) bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}

	fromFile := func(flag string) bool {
		return changed == nil || !changed(flag)
	}
	if len(yc.Inputs) > 0 && fromFile(FlagInputs) {
		c.Inputs = yc.Inputs
	}
	if yc.OutDir != "" && fromFile(FlagOutDir) {
		c.OutDir = yc.OutDir
	}
	if yc.Format != "" && fromFile(FlagFormat) {
		c.Format = yc.Format
	}
	if yc.Tables != nil && fromFile(FlagTables) {
		c.Tables = yc.Tables
	}
	if yc.DateLayout != "" && fromFile(FlagDateLayout) {
		c.DateLayout = yc.DateLayout
	}
	if yc.DSN != "" && fromFile(FlagDSN) {
		c.DSN = yc.DSN
	}
	return c.validateTables()
}

// validateTables checks that every entry in Tables is a known table name.
// If Tables is empty, it defaults to all model.AllTables names.
func (c *Config) validateTables() error {
	if len(c.Tables) == 0 {
		c.Tables = make([]string, len(model.AllTables))
		for i, t := range model.AllTables {
			c.Tables[i] = string(t)
		}
		return nil
	}
	for _, name := range c.Tables {
		if _, ok := model.TableByName(name); !ok {
			return fmt.Errorf("unknown table %q in config", name)
		}
	}
	return nil
}

// SelectedTables returns Tables as model.Table values in canonical order,
// without duplicates. No selection means the default tables.
func (c *Config) SelectedTables() []model.Table {
	if len(c.Tables) == 0 {
		return append([]model.Table{}, model.AllTables...)
	}
	want := make(map[string]bool, len(c.Tables))
	for _, name := range c.Tables {
		want[name] = true
	}
	var out []model.Table
	for _, t := range model.KnownTables {
		if want[string(t)] {
			out = append(out, t)
		}
	}
	return out
}

// WantCSV reports whether CSV output is requested.
func (c *Config) WantCSV() bool {
	return c.Format == FormatCSV || c.Format == FormatBoth
}

// WantParquet reports whether Parquet output is requested.
func (c *Config) WantParquet() bool {
	return c.Format == FormatParquet || c.Format == FormatBoth
}

// Validate checks required fields and returns an error if the config is invalid.
// Input files are not checked here: a missing input is a per-file warning at
// read time, not a usage error.
func (c *Config) Validate() error {
	if len(c.Inputs) == 0 {
		c.Inputs = []string{DefaultInput}
	}
	if c.OutDir == "" {
		c.OutDir = "."
	}
	if c.Format == "" {
		c.Format = FormatCSV
	}
	switch c.Format {
	case FormatCSV, FormatParquet, FormatBoth:
	default:
		return fmt.Errorf("unknown --format %q (want csv, parquet or both)", c.Format)
	}
	if err := c.validateTables(); err != nil {
		return err
	}

	st, err := os.Stat(c.OutDir)
	if err != nil {
		return fmt.Errorf("output directory not accessible: %w", err)
	}
	if !st.IsDir() {
		return fmt.Errorf("output path %s is not a directory", c.OutDir)
	}
	return nil
}

// ValidateWithDSN checks inputs, tables and the DSN for database commands.
func (c *Config) ValidateWithDSN() error {
	if len(c.Inputs) == 0 {
		c.Inputs = []string{DefaultInput}
	}
	if err := c.validateTables(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or CLAIMFLAT_DB_URL is required")
	}
	return nil
}
