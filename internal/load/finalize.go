package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/claimflat/internal/sql"
)

// Finalize marks the batch loaded and refreshes planner statistics.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID, rowsCopied int64) error {
	start := time.Now()

	if _, err := pool.Exec(ctx, embedsql.FinishBatch, batchID, "loaded", rowsCopied); err != nil {
		return fmt.Errorf("finish batch: %w", err)
	}
	if _, err := pool.Exec(ctx, embedsql.AnalyzeTables); err != nil {
		return fmt.Errorf("analyze tables: %w", err)
	}

	log.Info().Dur("duration", time.Since(start)).Msg("ANALYZE complete")
	return nil
}
