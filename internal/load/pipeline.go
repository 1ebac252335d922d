// Package load copies flattened claim tables into Postgres.
package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
	embedsql "github.com/gyeh/claimflat/internal/sql"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the load pipeline: register batch → copy each table →
// finalize. A failed copy removes the whole batch so no table is left
// partially loaded.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, tables *flatten.Tables, selected []model.Table) (*model.LoadSummary, error) {
	totalStart := time.Now()
	batchID := uuid.New()
	log = log.With().Str("load_batch_id", batchID.String()).Logger()

	// Phase 1: Register
	if _, err := pool.Exec(ctx, embedsql.RegisterBatch, batchID); err != nil {
		return nil, &PipelineError{Phase: "register", Err: err}
	}

	// Phase 2: Copy
	summary := &model.LoadSummary{
		LoadBatchID: batchID.String(),
		RowsByTable: make(map[model.Table]int64),
	}
	copyStart := time.Now()
	for _, t := range selected {
		n, err := CopyTable(ctx, pool, log, batchID, t, tables.Rows(t))
		if err != nil {
			if cerr := Cleanup(ctx, pool, log, batchID); cerr != nil {
				log.Warn().Err(cerr).Msg("batch cleanup failed (non-fatal)")
			}
			return nil, &PipelineError{Phase: "copy", Err: fmt.Errorf("%s: %w", t, err)}
		}
		summary.RowsByTable[t] = n
		summary.RowsCopied += n
	}
	summary.DurationCopy = time.Since(copyStart)

	// Phase 3: Finalize
	if err := Finalize(ctx, pool, log, batchID, summary.RowsCopied); err != nil {
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int64("rows_copied", summary.RowsCopied).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
