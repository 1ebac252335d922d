// Package flatten turns intercepted claim records into the seven relational
// output tables. Every child row carries its parent's casenumber so the
// wide per-claim view can be rebuilt with joins.
package flatten

import (
	"strconv"

	"github.com/gyeh/claimflat/internal/csvout"
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/normalize"
)

const (
	paymentTypeTDS     = "TDS"
	statusClaimQueried = "Claim Queried"
	addressSeparator   = " "
)

// Options tunes derived columns. The zero value is valid.
type Options struct {
	// DateLayout is a Go time layout for the claim dates. When empty the
	// length-of-stay and payment-TAT columns are left blank.
	DateLayout string
}

// Tables holds the flattened rows in input order.
type Tables struct {
	Claims     []model.ClaimRow
	Payments   []model.PaymentRow
	Logs       []model.LogRow
	Diagnoses  []model.DiagnosisRow
	Treatments []model.TreatmentRow
	Documents  []model.DocumentRow
	Addresses  []model.AddressRow

	LineItems          []model.LineItemRow
	LineItemDeductions []model.LineItemDeductionRow

	// Skipped counts records without a casenumber.
	Skipped int
}

// Flatten processes records in order. Records without claim.casenumber
// contribute nothing to any table.
func Flatten(records []model.InterceptedRecord, opts Options) *Tables {
	t := &Tables{}
	for i := range records {
		rec := &records[i]
		caseNumber := rec.CaseNumber()
		if caseNumber == "" {
			t.Skipped++
			continue
		}
		t.add(rec, caseNumber, opts)
	}
	return t
}

// CSV renders every default table. Keys are table names.
func (t *Tables) CSV() map[model.Table]string {
	out := make(map[model.Table]string, len(model.AllTables))
	for _, tbl := range model.AllTables {
		out[tbl] = t.RenderCSV(tbl)
	}
	return out
}

// RenderCSV renders a single table.
func (t *Tables) RenderCSV(tbl model.Table) string {
	return csvout.Render(model.Columns(tbl), t.Rows(tbl))
}

// Rows returns the rows of one table behind the model.Row interface.
func (t *Tables) Rows(tbl model.Table) []model.Row {
	switch tbl {
	case model.TableClaims:
		return asRows(t.Claims)
	case model.TablePayments:
		return asRows(t.Payments)
	case model.TableLogs:
		return asRows(t.Logs)
	case model.TableDiagnoses:
		return asRows(t.Diagnoses)
	case model.TableTreatments:
		return asRows(t.Treatments)
	case model.TableDocuments:
		return asRows(t.Documents)
	case model.TableAddresses:
		return asRows(t.Addresses)
	case model.TableLineItems:
		return asRows(t.LineItems)
	case model.TableLineItemDeductions:
		return asRows(t.LineItemDeductions)
	}
	return nil
}

// Count returns the number of rows in one table.
func (t *Tables) Count(tbl model.Table) int {
	switch tbl {
	case model.TableClaims:
		return len(t.Claims)
	case model.TablePayments:
		return len(t.Payments)
	case model.TableLogs:
		return len(t.Logs)
	case model.TableDiagnoses:
		return len(t.Diagnoses)
	case model.TableTreatments:
		return len(t.Treatments)
	case model.TableDocuments:
		return len(t.Documents)
	case model.TableAddresses:
		return len(t.Addresses)
	case model.TableLineItems:
		return len(t.LineItems)
	case model.TableLineItemDeductions:
		return len(t.LineItemDeductions)
	}
	return 0
}

func asRows[T model.Row](rows []T) []model.Row {
	out := make([]model.Row, len(rows))
	for i, r := range rows {
		out[i] = r
	}
	return out
}

// recordFold accumulates per-record values gathered while scanning the
// sub-collections.
type recordFold struct {
	tds        model.Payment
	hasTDS     bool
	numQueries int
}

func (t *Tables) add(rec *model.InterceptedRecord, caseNumber string, opts Options) {
	claim := rec.GetClaim()
	enc := claim.GetEncounter()
	if enc == nil {
		enc = &model.Encounter{}
	}
	phone := enc.PrimaryPhone()

	var fold recordFold

	for _, p := range rec.Payment {
		// Last TDS entry wins.
		if p.Type.String() == paymentTypeTDS {
			fold.tds = p
			fold.hasTDS = true
		}
		t.Payments = append(t.Payments, model.PaymentRow{
			CaseNumber:        caseNumber,
			PaymentStatus:     p.Status.String(),
			Remarks:           p.Remarks.String(),
			PaymentType:       p.Type.String(),
			TransactionAmount: p.TransactionAmount.String(),
			TransactionDate:   p.TransactionDate.String(),
			PaidDate:          p.PaidDate.String(),
			PaymentUniqueID:   p.UniqueID.String(),
		})
	}

	for _, l := range rec.Log {
		if l.Status.String() == statusClaimQueried {
			fold.numQueries++
		}
		t.Logs = append(t.Logs, model.LogRow{
			CaseNumber:  caseNumber,
			SNo:         l.SNo.String(),
			Process:     l.Process.String(),
			RaisedDate:  l.RaisedDate.String(),
			UpdatedDate: l.UpdatedDate.String(),
			Type:        l.Type.String(),
			Status:      l.Status.String(),
			Remarks:     l.Remarks.String(),
			User:        l.User.String(),
			Amount:      l.Amount.String(),
		})
	}

	for _, d := range claim.GetDiagnosis() {
		t.Diagnoses = append(t.Diagnoses, model.DiagnosisRow{
			CaseNumber:  caseNumber,
			SNo:         d.SNo.String(),
			Type:        d.Type.String(),
			Code:        d.Code.String(),
			Display:     d.Display.String(),
			PackageCode: d.PackageCode.String(),
			PackageName: d.PackageName.String(),
			Amount:      d.Amount.String(),
			Status:      d.Status.String(),
		})
	}

	for _, tr := range claim.GetTreatments() {
		t.Treatments = append(t.Treatments, model.TreatmentRow{
			CaseNumber:    caseNumber,
			SNo:           tr.SNo.String(),
			ProcedureType: tr.ProcedureType.String(),
			ProcedureName: tr.ProcedureName.String(),
			TypeDesc:      tr.TypeDesc.String(),
			Amount:        tr.Amount.String(),
			PackageCode:   tr.PackageCode.String(),
			PackageName:   tr.PackageName.String(),
			Status:        tr.Status.String(),
		})
	}

	for _, doc := range rec.Documents() {
		t.Documents = append(t.Documents, model.DocumentRow{
			CaseNumber:      caseNumber,
			SNo:             doc.SNo.String(),
			DocType:         doc.DocType.String(),
			DocName:         doc.DocName.String(),
			DocPath:         doc.DocPath.String(),
			ProviderDocName: doc.ProviderDocName.String(),
			ProviderDocPath: doc.ProviderDocPath.String(),
			IsVerified:      doc.Verified.String(),
		})
	}

	for _, a := range enc.GetAddresses() {
		t.Addresses = append(t.Addresses, model.AddressRow{
			CaseNumber:   caseNumber,
			Address:      AddressLine(a),
			City:         a.City.String(),
			District:     a.District.String(),
			State:        a.State.String(),
			Pincode:      a.Pincode.String(),
			PatientPhone: phone,
		})
	}

	for i, item := range claim.GetAmount().GetCalculated() {
		lineNo := strconv.Itoa(i + 1)
		t.LineItems = append(t.LineItems, model.LineItemRow{
			CaseNumber:     caseNumber,
			LineNo:         lineNo,
			PackageCost:    item.PackageCost.String(),
			Quantity:       item.Quantity.String(),
			ApprovedFactor: item.ApprovedFactor.String(),
			Amount:         item.Amount.String(),
			NetAmount:      item.NetAmount.String(),
			Status:         item.Status.String(),
		})
		for _, d := range item.Deductions {
			t.LineItemDeductions = append(t.LineItemDeductions, model.LineItemDeductionRow{
				CaseNumber:           caseNumber,
				LineNo:               lineNo,
				DeductedAmount:       d.DeductedAmount.String(),
				DeductionDescription: d.Description.String(),
			})
		}
	}

	t.Claims = append(t.Claims, claimRow(rec, caseNumber, enc, &fold, opts))
}

func claimRow(rec *model.InterceptedRecord, caseNumber string, enc *model.Encounter, fold *recordFold, opts Options) model.ClaimRow {
	claim := rec.GetClaim()
	amount := claim.GetAmount()
	if amount == nil {
		amount = &model.Amount{}
	}
	info := rec.GetPatientInfo()
	if info == nil {
		info = &model.PatientInfo{}
	}

	row := model.ClaimRow{
		CaseNumber:             caseNumber,
		PatientNumber:          enc.PatientNumber.String(),
		PatientName:            enc.PatientName.String(),
		PatientPhone:           enc.PrimaryPhone(),
		PatientAddress:         PrimaryAddress(enc),
		PatientDOB:             enc.PatientDOB.String(),
		PatientGender:          enc.Gender.String(),
		CarePlanID:             enc.CarePlanID.String(),
		CarePlanCode:           enc.CarePlanCode.String(),
		AdmissionDate:          claim.AdmissionDate.String(),
		DischargeDate:          claim.DischargeDate.String(),
		SurgeryDate:            claim.SurgeryDate.String(),
		RegistrationDate:       claim.RegistrationDate.String(),
		TotalAmount:            amount.TotalAmount.String(),
		AmountApproved:         amount.AmountApproved.String(),
		PackageAmount:          amount.PackageAmount.String(),
		TotalPackageAmount:     amount.TotalPackageAmount.String(),
		LineItemDeductions:     LineItemDeductions(amount),
		ReducedLineItems:       strconv.Itoa(ReducedLineItems(amount)),
		NumQueries:             strconv.Itoa(fold.numQueries),
		ProviderName:           enc.ProviderName.String(),
		PayerName:              enc.PayerName.String(),
		FinalCPDRecommendation: claim.FinalCPDRecommendation.String(),
		FinalACORecommendation: claim.FinalACORecommendation.String(),
		SourceName:             info.Name.String(),
		SourcePage:             info.Page.String(),
	}

	row.Deduction, row.DeductionPercentage = Deduction(amount)
	row.BaseDeduction, row.BaseDeductionPercentage = BaseDeduction(amount)

	if fold.hasTDS {
		row.TDSAmount = fold.tds.TransactionAmount.String()
		row.TDSDate = fold.tds.TransactionDate.String()
		row.TDSStatus = fold.tds.Status.String()
	}

	if opts.DateLayout != "" {
		admitted, okA := normalize.ParseDate(claim.AdmissionDate.String(), opts.DateLayout)
		discharged, okD := normalize.ParseDate(claim.DischargeDate.String(), opts.DateLayout)
		if okA && okD {
			row.LengthOfStayDays = strconv.Itoa(normalize.ElapsedDays(admitted, discharged))
		}
		paid, okP := normalize.ParseDate(row.TDSDate, opts.DateLayout)
		if okD && okP {
			row.PaymentTATDays = strconv.Itoa(normalize.ElapsedDays(discharged, paid))
		}
	}

	return row
}
