package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/claimflat/internal/model"
)

// RowSource implements pgx.CopyFromSource over a channel of output rows.
// Each row is prefixed with the load batch id and its 1-based position so
// the table keeps input order.
type RowSource struct {
	ch      <-chan model.Row
	batchID any
	rowNum  int64
	current model.Row
}

// NewRowSource creates a CopyFromSource backed by a channel. batchID is
// written into the leading load_batch_id column of every row.
func NewRowSource(ch <-chan model.Row, batchID any) *RowSource {
	return &RowSource{ch: ch, batchID: batchID}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *RowSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.rowNum++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *RowSource) Values() ([]any, error) {
	vals := s.current.Values()
	out := make([]any, 0, len(vals)+2)
	out = append(out, s.batchID, s.rowNum)
	for _, v := range vals {
		out = append(out, v)
	}
	return out, nil
}

// Err returns any error encountered during iteration.
func (s *RowSource) Err() error {
	return nil
}

// CopyColumns returns the COPY column list for a table.
func CopyColumns(t model.Table) []string {
	cols := model.Columns(t)
	out := make([]string, 0, len(cols)+2)
	out = append(out, "load_batch_id", "row_num")
	return append(out, cols...)
}

// Compile-time check that RowSource satisfies the interface.
var _ pgx.CopyFromSource = (*RowSource)(nil)
