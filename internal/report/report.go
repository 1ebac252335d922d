// Package report renders run summaries as terminal tables.
package report

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/recordread"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(w)
	return t
}

// Plan prints what a convert run would produce: one row per input file and
// one row per selected table. Nothing is written to disk.
func Plan(w io.Writer, read *recordread.ReadResult, tables *flatten.Tables, selected []model.Table) {
	files := newTable(w)
	files.SetTitle("Inputs")
	files.AppendHeader(table.Row{"File", "SHA-256", "Records", "Rejected"})
	for _, f := range read.Files {
		files.AppendRow(table.Row{filepath.Base(f.Path), f.SHA256, len(f.Records), f.Rejected})
	}
	files.AppendFooter(table.Row{"Total", "", len(read.Records), read.Rejected})
	files.Render()

	if read.FilesFailed > 0 {
		fmt.Fprintf(w, "%d input file(s) could not be read\n", read.FilesFailed)
	}
	if tables == nil {
		return
	}

	rows := newTable(w)
	rows.SetTitle("Tables")
	rows.AppendHeader(table.Row{"Table", "Columns", "Rows"})
	total := 0
	for _, t := range selected {
		n := tables.Count(t)
		total += n
		rows.AppendRow(table.Row{string(t), len(model.Columns(t)), n})
	}
	rows.AppendFooter(table.Row{"Total", "", total})
	rows.Render()

	if tables.Skipped > 0 {
		fmt.Fprintf(w, "%d record(s) without a case number will be skipped\n", tables.Skipped)
	}
}

// Convert prints the per-table outcome of a convert run.
func Convert(w io.Writer, s *model.ConvertSummary) {
	t := newTable(w)
	t.SetTitle("Convert " + s.RunID)
	t.AppendHeader(table.Row{"Table", "Rows", "CSV SHA-256"})
	for _, tbl := range model.KnownTables {
		n, ok := s.RowsByTable[tbl]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{string(tbl), n, s.OutputSHA256[tbl]})
	}
	t.Render()

	fmt.Fprintf(w, "Records: %d read, %d flattened, %d skipped, %d rejected\n",
		s.RecordsRead, s.RecordsFlattened, s.RecordsSkipped, s.RecordsRejected)
	fmt.Fprintf(w, "Outputs: %d written, %d failed (%.1fs)\n",
		s.OutputsWritten, s.OutputsFailed, s.DurationTotal.Seconds())
}

// Load prints the rows copied per table by a load run.
func Load(w io.Writer, s *model.LoadSummary) {
	t := newTable(w)
	t.SetTitle("Load " + s.LoadBatchID)
	t.AppendHeader(table.Row{"Table", "Rows copied"})
	for _, tbl := range model.KnownTables {
		n, ok := s.RowsByTable[tbl]
		if !ok {
			continue
		}
		t.AppendRow(table.Row{string(tbl), n})
	}
	t.AppendFooter(table.Row{"Total", s.RowsCopied})
	t.Render()
	fmt.Fprintf(w, "Copy took %.1fs\n", s.DurationCopy.Seconds())
}
