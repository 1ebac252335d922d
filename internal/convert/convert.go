// Package convert is the boundary the scraper calls once it has written its
// intercepted-records files: read every input, flatten, write each table.
package convert

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimflat/internal/config"
	"github.com/gyeh/claimflat/internal/csvout"
	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/normalize"
	"github.com/gyeh/claimflat/internal/parquetout"
	"github.com/gyeh/claimflat/internal/recordread"
)

// ErrNoRecords is returned when no input file yielded a single record.
var ErrNoRecords = errors.New("no records found")

// PhaseError wraps an error with the phase where it occurred.
type PhaseError struct {
	Phase string
	Err   error
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PhaseError) Unwrap() error {
	return e.Err
}

// Run converts cfg.Inputs into one output file per selected table and
// format. Unreadable inputs and failed writes are logged and counted in the
// summary; they are not errors. The only error is ErrNoRecords (wrapped in a
// PhaseError for the read phase).
func Run(log zerolog.Logger, cfg *config.Config) (*model.ConvertSummary, error) {
	totalStart := time.Now()
	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()

	summary := &model.ConvertSummary{
		RunID:        runID,
		InputFiles:   len(cfg.Inputs),
		RowsByTable:  make(map[model.Table]int),
		OutputSHA256: make(map[model.Table]string),
	}

	// Phase 1+2: Read and flatten
	read, tables, err := ReadAndFlatten(log, cfg)
	summary.FilesRead = len(read.Files)
	summary.FilesFailed = read.FilesFailed
	summary.RecordsRead = int64(len(read.Records))
	summary.RecordsRejected = int64(read.Rejected)
	summary.DurationRead = read.Duration
	if err != nil {
		summary.DurationTotal = time.Since(totalStart)
		return summary, err
	}
	summary.RecordsSkipped = int64(tables.Skipped)
	summary.RecordsFlattened = summary.RecordsRead - summary.RecordsSkipped
	summary.DurationFlatten = time.Since(totalStart) - read.Duration

	log.Info().
		Int64("records", summary.RecordsRead).
		Int64("flattened", summary.RecordsFlattened).
		Int64("skipped", summary.RecordsSkipped).
		Dur("duration", summary.DurationFlatten).
		Msg("flatten complete")

	// Phase 3: Write
	writeStart := time.Now()
	for _, t := range cfg.SelectedTables() {
		summary.RowsByTable[t] = tables.Count(t)

		if cfg.WantCSV() {
			doc := tables.RenderCSV(t)
			summary.OutputSHA256[t] = normalize.TextHash(doc)
			path, err := csvout.WriteFile(cfg.OutDir, t, doc)
			recordOutput(log, summary, t, path, tables.Count(t), err)
		}
		if cfg.WantParquet() {
			path, n, err := parquetout.WriteFile(cfg.OutDir, tables, t)
			recordOutput(log, summary, t, path, n, err)
		}
	}
	summary.DurationWrite = time.Since(writeStart)
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int("files_read", summary.FilesRead).
		Int("files_failed", summary.FilesFailed).
		Int("outputs_written", summary.OutputsWritten).
		Int("outputs_failed", summary.OutputsFailed).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("convert complete")

	return summary, nil
}

// ReadAndFlatten reads cfg.Inputs and flattens every record. The read result
// is always returned so callers can report on failed files; tables is nil
// when no record was found.
func ReadAndFlatten(log zerolog.Logger, cfg *config.Config) (*recordread.ReadResult, *flatten.Tables, error) {
	log.Info().Int("files", len(cfg.Inputs)).Msg("reading input files")
	read := recordread.ReadAll(cfg.Inputs, log)
	if len(read.Records) == 0 {
		log.Error().Msg("no records found")
		return read, nil, &PhaseError{Phase: "read", Err: ErrNoRecords}
	}
	return read, flatten.Flatten(read.Records, flatten.Options{DateLayout: cfg.DateLayout}), nil
}

func recordOutput(log zerolog.Logger, s *model.ConvertSummary, t model.Table, path string, rows int, err error) {
	if err != nil {
		s.OutputsFailed++
		log.Error().Err(err).Str("table", string(t)).Str("path", path).Msg("output write failed")
		return
	}
	s.OutputsWritten++
	log.Info().Str("table", string(t)).Str("path", path).Int("rows", rows).Msg("output written")
}

// Convert writes every table as CSV into dir from the given input files.
// Zero inputs are allowed and end in ErrNoRecords like any other empty run.
func Convert(log zerolog.Logger, dir string, inputPaths ...string) error {
	cfg := &config.Config{
		Inputs: inputPaths,
		OutDir: dir,
		Format: config.FormatCSV,
	}
	_, err := Run(log, cfg)
	return err
}
