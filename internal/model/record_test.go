package model

import (
	"testing"

	json "github.com/goccy/go-json"
)

func TestScalarDecoding(t *testing.T) {
	var v struct {
		Str    Scalar `json:"str"`
		Int    Scalar `json:"int"`
		Float  Scalar `json:"float"`
		Bool   Scalar `json:"bool"`
		Null   Scalar `json:"null"`
		Obj    Scalar `json:"obj"`
		Absent Scalar `json:"absent"`
	}
	data := `{"str":"Fracture, left arm","int":1000,"float":1000.50,"bool":true,"null":null,"obj":{"a": [1, 2]}}`
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	checks := []struct {
		name    string
		got     Scalar
		text    string
		present bool
	}{
		{"str", v.Str, "Fracture, left arm", true},
		{"int", v.Int, "1000", true},
		{"float", v.Float, "1000.5", true},
		{"bool", v.Bool, "true", true},
		{"null", v.Null, "", false},
		{"obj", v.Obj, `{"a":[1,2]}`, true},
		{"absent", v.Absent, "", false},
	}
	for _, c := range checks {
		if c.got.String() != c.text || c.got.Present() != c.present {
			t.Errorf("%s: got (%q, %v), want (%q, %v)", c.name, c.got.String(), c.got.Present(), c.text, c.present)
		}
	}

	if f, ok := v.Float.Float(); !ok || f != 1000.5 {
		t.Errorf("Float() = %v, %v", f, ok)
	}
	if _, ok := v.Null.Float(); ok {
		t.Error("null scalar should not parse as a number")
	}
}

func TestListToleratesNonArrays(t *testing.T) {
	data := `{"payment": {"error": "timeout"}, "log": null, "document": "n/a"}`
	var rec InterceptedRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(rec.Payment) != 0 || len(rec.Log) != 0 || len(rec.Document) != 0 {
		t.Errorf("expected empty lists, got %d/%d/%d", len(rec.Payment), len(rec.Log), len(rec.Document))
	}
}

func TestSectionsTolerateNonObjects(t *testing.T) {
	data := `{
		"claim": {"casenumber": "C1", "amount": "", "encounter": [],
		          "diagnosis": ["A00", {"code": "B01"}]},
		"payment": [{"paymenttype": "TDS", "transactionamount": 50}, "pending"],
		"patientInfo": "n/a"
	}`
	var rec InterceptedRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec.CaseNumber() != "C1" {
		t.Errorf("case number = %q", rec.CaseNumber())
	}
	if rec.Claim.Amount.TotalAmount.Present() {
		t.Error("string amount section should decode as empty")
	}
	if rec.GetClaim().GetEncounter().PrimaryPhone() != "" {
		t.Error("array encounter should decode as empty")
	}
	if rec.PatientInfo == nil || rec.PatientInfo.Name.Present() {
		t.Errorf("string patientInfo should decode as empty, got %+v", rec.PatientInfo)
	}
	diag := rec.GetClaim().GetDiagnosis()
	if len(diag) != 2 || diag[0].Code.Present() || diag[1].Code.String() != "B01" {
		t.Errorf("diagnosis = %+v", diag)
	}
	if len(rec.Payment) != 2 || rec.Payment[0].Type.String() != "TDS" || rec.Payment[1].Type.Present() {
		t.Errorf("payments = %+v", rec.Payment)
	}
}

func TestCaseNumberFalsyValues(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{`"C1"`, "C1"},
		{`""`, ""},
		{`null`, ""},
		{`0`, ""},
		{`0.0`, ""},
		{`false`, ""},
		{`"0"`, "0"},
		{`17`, "17"},
		{`true`, "true"},
	}
	for _, c := range cases {
		var rec InterceptedRecord
		if err := json.Unmarshal([]byte(`{"claim":{"casenumber":`+c.raw+`}}`), &rec); err != nil {
			t.Fatalf("%s: unmarshal: %v", c.raw, err)
		}
		if got := rec.CaseNumber(); got != c.want {
			t.Errorf("casenumber %s: got %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestNilSafeAccessors(t *testing.T) {
	var rec *InterceptedRecord
	if rec.CaseNumber() != "" {
		t.Error("nil record should have empty case number")
	}
	if rec.Documents() != nil {
		t.Error("nil record should have no documents")
	}

	empty := &InterceptedRecord{}
	if empty.GetClaim().GetEncounter().PrimaryPhone() != "" {
		t.Error("missing encounter should give empty phone")
	}
	if len(empty.GetClaim().GetAmount().GetCalculated()) != 0 {
		t.Error("missing amount should give no line items")
	}
}

func TestDocumentsFallback(t *testing.T) {
	data := `{"claim":{"casenumber":"C1","encounter":{"documents":[{"sno":1,"docname":"discharge.pdf"}]}}}`
	var rec InterceptedRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	docs := rec.Documents()
	if len(docs) != 1 || docs[0].DocName.String() != "discharge.pdf" {
		t.Fatalf("expected encounter documents, got %+v", docs)
	}

	if err := json.Unmarshal([]byte(`{"claim":{"encounter":{"documents":[{"sno":1}]}},"document":[]}`), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if docs := rec.Documents(); len(docs) != 0 {
		t.Errorf("captured empty list should not fall back, got %+v", docs)
	}

	rec.Document = List[Document]{{DocName: NewScalar("top.pdf")}}
	docs = rec.Documents()
	if len(docs) != 1 || docs[0].DocName.String() != "top.pdf" {
		t.Errorf("top-level documents should win, got %+v", docs)
	}
}

func TestTableByName(t *testing.T) {
	for _, tbl := range KnownTables {
		got, ok := TableByName(string(tbl))
		if !ok || got != tbl {
			t.Errorf("TableByName(%q) = %q, %v", tbl, got, ok)
		}
		if len(Columns(tbl)) == 0 {
			t.Errorf("table %q has no columns", tbl)
		}
	}
	if _, ok := TableByName("wide"); ok {
		t.Error("unknown table should not resolve")
	}
}

func TestRowValuesMatchColumns(t *testing.T) {
	rows := map[Table]Row{
		TableClaims:     ClaimRow{},
		TablePayments:   PaymentRow{},
		TableLogs:       LogRow{},
		TableDiagnoses:  DiagnosisRow{},
		TableTreatments: TreatmentRow{},
		TableDocuments:  DocumentRow{},
		TableAddresses:  AddressRow{},

		TableLineItems:          LineItemRow{},
		TableLineItemDeductions: LineItemDeductionRow{},
	}
	if len(rows) != len(KnownTables) {
		t.Fatalf("%d row types for %d tables", len(rows), len(KnownTables))
	}
	for tbl, row := range rows {
		if len(row.Values()) != len(Columns(tbl)) {
			t.Errorf("%s: %d values for %d columns", tbl, len(row.Values()), len(Columns(tbl)))
		}
	}
}

func TestOptionalTablesNotDefault(t *testing.T) {
	for _, opt := range OptionalTables {
		for _, tbl := range AllTables {
			if tbl == opt {
				t.Errorf("%s should not be a default table", opt)
			}
		}
		if _, ok := TableByName(string(opt)); !ok {
			t.Errorf("%s should be selectable by name", opt)
		}
	}
}
