// Package parquetout writes the flattened tables as Parquet files with the
// same columns as their CSV counterparts.
package parquetout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
)

// FileName returns the output file name for a table.
func FileName(t model.Table) string {
	return string(t) + ".parquet"
}

// WriteFile writes one table into dir as <table>.parquet and returns the
// path and row count.
func WriteFile(dir string, tables *flatten.Tables, t model.Table) (string, int, error) {
	path := filepath.Join(dir, FileName(t))
	var n int
	var err error
	switch t {
	case model.TableClaims:
		n, err = writeRows(path, tables.Claims)
	case model.TablePayments:
		n, err = writeRows(path, tables.Payments)
	case model.TableLogs:
		n, err = writeRows(path, tables.Logs)
	case model.TableDiagnoses:
		n, err = writeRows(path, tables.Diagnoses)
	case model.TableTreatments:
		n, err = writeRows(path, tables.Treatments)
	case model.TableDocuments:
		n, err = writeRows(path, tables.Documents)
	case model.TableAddresses:
		n, err = writeRows(path, tables.Addresses)
	case model.TableLineItems:
		n, err = writeRows(path, tables.LineItems)
	case model.TableLineItemDeductions:
		n, err = writeRows(path, tables.LineItemDeductions)
	default:
		return path, 0, fmt.Errorf("unknown table %q", t)
	}
	return path, n, err
}

// createFile opens the output file. Tests replace it to inject write
// failures.
var createFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// writeRows writes rows with Snappy compression. Output tables are small
// (one row per claim or sub-entry), so a single row group is enough. On any
// error the partial file is removed.
func writeRows[T any](path string, rows []T) (n int, err error) {
	file, err := createFile(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	writer := parquet.NewGenericWriter[T](file,
		parquet.Compression(&parquet.Snappy),
		parquet.CreatedBy("claimflat", "1.0", ""),
	)
	n, err = writer.Write(rows)
	if err != nil {
		writer.Close()
		file.Close()
		return n, fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err = writer.Close(); err != nil {
		file.Close()
		return n, fmt.Errorf("close parquet writer: %w", err)
	}
	if err = file.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return n, nil
}
