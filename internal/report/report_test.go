package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gyeh/claimflat/internal/flatten"
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/recordread"
)

func TestPlan(t *testing.T) {
	records := []model.InterceptedRecord{
		{Claim: &model.Claim{CaseNumber: model.NewScalar("C1")}},
		{Claim: &model.Claim{}},
	}
	read := &recordread.ReadResult{
		Records: records,
		Files: []*recordread.FileResult{
			{Path: "/tmp/in/intercepted_api_data.json", SHA256: "abc123", Records: records},
		},
		FilesFailed: 1,
	}
	tables := flatten.Flatten(records, flatten.Options{})

	var buf bytes.Buffer
	Plan(&buf, read, tables, []model.Table{model.TableClaims, model.TableLogs})
	out := buf.String()

	for _, want := range []string{
		"intercepted_api_data.json",
		"abc123",
		"claims",
		"logs",
		"1 input file(s) could not be read",
		"1 record(s) without a case number",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "payments") {
		t.Errorf("unselected table in plan output:\n%s", out)
	}
}

func TestPlan_NoRecords(t *testing.T) {
	var buf bytes.Buffer
	Plan(&buf, &recordread.ReadResult{}, nil, model.AllTables)
	if strings.Contains(buf.String(), "Tables") {
		t.Errorf("tables section rendered without records:\n%s", buf.String())
	}
}

func TestConvert(t *testing.T) {
	s := &model.ConvertSummary{
		RunID:            "run-1",
		RecordsRead:      3,
		RecordsFlattened: 2,
		RecordsSkipped:   1,
		RowsByTable:      map[model.Table]int{model.TableClaims: 2},
		OutputSHA256:     map[model.Table]string{model.TableClaims: "deadbeef"},
		OutputsWritten:   1,
	}
	var buf bytes.Buffer
	Convert(&buf, s)
	out := buf.String()
	for _, want := range []string{"run-1", "claims", "deadbeef", "3 read, 2 flattened, 1 skipped", "1 written, 0 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("convert output missing %q:\n%s", want, out)
		}
	}
}

func TestLoad(t *testing.T) {
	s := &model.LoadSummary{
		LoadBatchID: "batch-1",
		RowsByTable: map[model.Table]int64{model.TablePayments: 4},
		RowsCopied:  4,
	}
	var buf bytes.Buffer
	Load(&buf, s)
	out := buf.String()
	for _, want := range []string{"batch-1", "payments", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("load output missing %q:\n%s", want, out)
		}
	}
}
