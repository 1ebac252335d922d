package db

import (
	"testing"

	"github.com/gyeh/claimflat/internal/model"
)

func TestRowSource(t *testing.T) {
	ch := make(chan model.Row, 2)
	ch <- model.PaymentRow{CaseNumber: "C1", PaymentType: "TDS"}
	ch <- model.PaymentRow{CaseNumber: "C1", PaymentType: "Claim"}
	close(ch)

	src := NewRowSource(ch, "batch-1")
	var rows [][]any
	for src.Next() {
		vals, err := src.Values()
		if err != nil {
			t.Fatalf("Values: %v", err)
		}
		rows = append(rows, vals)
	}
	if src.Err() != nil {
		t.Fatalf("Err: %v", src.Err())
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	cols := CopyColumns(model.TablePayments)
	if len(rows[0]) != len(cols) {
		t.Fatalf("%d values for %d columns", len(rows[0]), len(cols))
	}
	if rows[0][0] != "batch-1" || rows[0][1] != int64(1) || rows[1][1] != int64(2) {
		t.Errorf("unexpected prefix: %v / %v", rows[0][:2], rows[1][:2])
	}
	if rows[1][5] != "Claim" {
		t.Errorf("payment_type = %v", rows[1][5])
	}
}

func TestCopyColumnsDoesNotAlias(t *testing.T) {
	_ = CopyColumns(model.TableClaims)
	if model.Columns(model.TableClaims)[0] != "casenumber" {
		t.Error("CopyColumns must not modify the model column list")
	}
}
