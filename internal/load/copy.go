package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/claimflat/internal/db"
	"github.com/gyeh/claimflat/internal/model"
)

const copyBufferSize = 1024

// CopyTable streams rows into claimflat.<table> through a channel-backed
// CopyFromSource and returns the number of rows copied.
func CopyTable(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID, t model.Table, rows []model.Row) (int64, error) {
	start := time.Now()

	ch := make(chan model.Row, copyBufferSize)
	errCh := make(chan error, 1)

	// Producer goroutine: push rows until done or cancelled
	go func() {
		defer close(ch)
		for _, r := range rows {
			select {
			case ch <- r:
			case <-ctx.Done():
				errCh <- ctx.Err()
				return
			}
		}
		errCh <- nil
	}()

	source := db.NewRowSource(ch, batchID)
	copied, err := pool.CopyFrom(ctx,
		pgx.Identifier{"claimflat", string(t)},
		db.CopyColumns(t),
		source,
	)
	if err != nil {
		// Unblock the producer if COPY stopped reading early.
		for range ch {
		}
	}

	prodErr := <-errCh
	if prodErr != nil {
		return 0, fmt.Errorf("copy producer: %w", prodErr)
	}
	if err != nil {
		return 0, fmt.Errorf("copy %s: %w", t, err)
	}

	log.Info().
		Str("table", string(t)).
		Int64("rows", copied).
		Dur("duration", time.Since(start)).
		Msg("table copied")

	return copied, nil
}
