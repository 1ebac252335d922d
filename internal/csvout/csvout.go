// Package csvout renders flattened tables as CSV text and writes them to disk.
//
// Field encoding is narrower than encoding/csv: a field is quoted only when
// it contains a comma, a double quote or a line break (\n or \r). Leading
// spaces stay bare and the document has no trailing newline, so files diff
// byte for byte against earlier runs.
package csvout

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gyeh/claimflat/internal/model"
)

// EscapeField encodes one cell.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\r\n\"") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Render returns the CSV document for a header and its rows: one line per
// row joined by "\n", header first, no trailing newline.
func Render(columns []string, rows []model.Row) string {
	var b strings.Builder
	writeLine(&b, columns)
	for _, r := range rows {
		b.WriteByte('\n')
		writeLine(&b, r.Values())
	}
	return b.String()
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(EscapeField(f))
	}
}

// FileName returns the output file name for a table.
func FileName(t model.Table) string {
	return string(t) + ".csv"
}

// WriteFile writes one CSV document into dir as <table>.csv and returns
// the path written.
func WriteFile(dir string, t model.Table, doc string) (string, error) {
	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return path, fmt.Errorf("write %s: %w", FileName(t), err)
	}
	return path, nil
}
