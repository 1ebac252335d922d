package model

// Table names one of the relational outputs. Each is written as <name>.csv
// (and optionally <name>.parquet).
type Table string

const (
	TableClaims     Table = "claims"
	TablePayments   Table = "payments"
	TableLogs       Table = "logs"
	TableDiagnoses  Table = "diagnoses"
	TableTreatments Table = "treatments"
	TableDocuments  Table = "documents"
	TableAddresses  Table = "addresses"

	TableLineItems          Table = "line_items"
	TableLineItemDeductions Table = "line_item_deductions"
)

// AllTables lists the default outputs in canonical order.
var AllTables = []Table{
	TableClaims,
	TablePayments,
	TableLogs,
	TableDiagnoses,
	TableTreatments,
	TableDocuments,
	TableAddresses,
}

// OptionalTables break calculatedamount down per line item. They are
// written only when selected by name.
var OptionalTables = []Table{
	TableLineItems,
	TableLineItemDeductions,
}

// KnownTables is AllTables followed by OptionalTables.
var KnownTables = append(append([]Table{}, AllTables...), OptionalTables...)

// TableByName returns the Table for the given name, or ok=false.
func TableByName(name string) (Table, bool) {
	for _, t := range KnownTables {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Row is one output row; Values is ordered like Columns for its table.
type Row interface {
	Values() []string
}

// Columns returns the header for the given table.
func Columns(t Table) []string {
	switch t {
	case TableClaims:
		return claimColumns
	case TablePayments:
		return paymentColumns
	case TableLogs:
		return logColumns
	case TableDiagnoses:
		return diagnosisColumns
	case TableTreatments:
		return treatmentColumns
	case TableDocuments:
		return documentColumns
	case TableAddresses:
		return addressColumns
	case TableLineItems:
		return lineItemColumns
	case TableLineItemDeductions:
		return lineItemDeductionColumns
	}
	return nil
}

var claimColumns = []string{
	"casenumber",
	"patient_number",
	"patient_name",
	"patient_phone",
	"patient_address",
	"patient_dob",
	"patient_gender",
	"careplan_id",
	"careplan_code",
	"admission_date",
	"discharge_date",
	"surgery_date",
	"registration_date",
	"total_amount",
	"amount_approved",
	"deduction",
	"deduction_percentage",
	"package_amount",
	"total_package_amount",
	"base_deduction",
	"base_deduction_percentage",
	"line_item_deductions",
	"reduced_line_items",
	"tds_amount",
	"tds_date",
	"tds_status",
	"num_queries",
	"length_of_stay_days",
	"payment_tat_days",
	"provider_name",
	"payer_name",
	"final_cpd_recommendation",
	"final_aco_recommendation",
	"source_name",
	"source_page",
}

// ClaimRow is the one-per-record summary row.
type ClaimRow struct {
	CaseNumber              string `parquet:"casenumber"`
	PatientNumber           string `parquet:"patient_number"`
	PatientName             string `parquet:"patient_name"`
	PatientPhone            string `parquet:"patient_phone"`
	PatientAddress          string `parquet:"patient_address"`
	PatientDOB              string `parquet:"patient_dob"`
	PatientGender           string `parquet:"patient_gender"`
	CarePlanID              string `parquet:"careplan_id"`
	CarePlanCode            string `parquet:"careplan_code"`
	AdmissionDate           string `parquet:"admission_date"`
	DischargeDate           string `parquet:"discharge_date"`
	SurgeryDate             string `parquet:"surgery_date"`
	RegistrationDate        string `parquet:"registration_date"`
	TotalAmount             string `parquet:"total_amount"`
	AmountApproved          string `parquet:"amount_approved"`
	Deduction               string `parquet:"deduction"`
	DeductionPercentage     string `parquet:"deduction_percentage"`
	PackageAmount           string `parquet:"package_amount"`
	TotalPackageAmount      string `parquet:"total_package_amount"`
	BaseDeduction           string `parquet:"base_deduction"`
	BaseDeductionPercentage string `parquet:"base_deduction_percentage"`
	LineItemDeductions      string `parquet:"line_item_deductions"`
	ReducedLineItems        string `parquet:"reduced_line_items"`
	TDSAmount               string `parquet:"tds_amount"`
	TDSDate                 string `parquet:"tds_date"`
	TDSStatus               string `parquet:"tds_status"`
	NumQueries              string `parquet:"num_queries"`
	LengthOfStayDays        string `parquet:"length_of_stay_days"`
	PaymentTATDays          string `parquet:"payment_tat_days"`
	ProviderName            string `parquet:"provider_name"`
	PayerName               string `parquet:"payer_name"`
	FinalCPDRecommendation  string `parquet:"final_cpd_recommendation"`
	FinalACORecommendation  string `parquet:"final_aco_recommendation"`
	SourceName              string `parquet:"source_name"`
	SourcePage              string `parquet:"source_page"`
}

func (r ClaimRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.PatientNumber,
		r.PatientName,
		r.PatientPhone,
		r.PatientAddress,
		r.PatientDOB,
		r.PatientGender,
		r.CarePlanID,
		r.CarePlanCode,
		r.AdmissionDate,
		r.DischargeDate,
		r.SurgeryDate,
		r.RegistrationDate,
		r.TotalAmount,
		r.AmountApproved,
		r.Deduction,
		r.DeductionPercentage,
		r.PackageAmount,
		r.TotalPackageAmount,
		r.BaseDeduction,
		r.BaseDeductionPercentage,
		r.LineItemDeductions,
		r.ReducedLineItems,
		r.TDSAmount,
		r.TDSDate,
		r.TDSStatus,
		r.NumQueries,
		r.LengthOfStayDays,
		r.PaymentTATDays,
		r.ProviderName,
		r.PayerName,
		r.FinalCPDRecommendation,
		r.FinalACORecommendation,
		r.SourceName,
		r.SourcePage,
	}
}

var paymentColumns = []string{
	"casenumber",
	"payment_status",
	"remarks",
	"payment_type",
	"transaction_amount",
	"transaction_date",
	"paid_date",
	"payment_unique_id",
}

type PaymentRow struct {
	CaseNumber        string `parquet:"casenumber"`
	PaymentStatus     string `parquet:"payment_status"`
	Remarks           string `parquet:"remarks"`
	PaymentType       string `parquet:"payment_type"`
	TransactionAmount string `parquet:"transaction_amount"`
	TransactionDate   string `parquet:"transaction_date"`
	PaidDate          string `parquet:"paid_date"`
	PaymentUniqueID   string `parquet:"payment_unique_id"`
}

func (r PaymentRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.PaymentStatus,
		r.Remarks,
		r.PaymentType,
		r.TransactionAmount,
		r.TransactionDate,
		r.PaidDate,
		r.PaymentUniqueID,
	}
}

var logColumns = []string{
	"casenumber",
	"sno",
	"process",
	"raised_date",
	"updated_date",
	"type",
	"status",
	"remarks",
	"user",
	"amount",
}

type LogRow struct {
	CaseNumber  string `parquet:"casenumber"`
	SNo         string `parquet:"sno"`
	Process     string `parquet:"process"`
	RaisedDate  string `parquet:"raised_date"`
	UpdatedDate string `parquet:"updated_date"`
	Type        string `parquet:"type"`
	Status      string `parquet:"status"`
	Remarks     string `parquet:"remarks"`
	User        string `parquet:"user"`
	Amount      string `parquet:"amount"`
}

func (r LogRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.SNo,
		r.Process,
		r.RaisedDate,
		r.UpdatedDate,
		r.Type,
		r.Status,
		r.Remarks,
		r.User,
		r.Amount,
	}
}

var diagnosisColumns = []string{
	"casenumber",
	"sno",
	"type",
	"code",
	"display",
	"package_code",
	"package_name",
	"amount",
	"status",
}

type DiagnosisRow struct {
	CaseNumber  string `parquet:"casenumber"`
	SNo         string `parquet:"sno"`
	Type        string `parquet:"type"`
	Code        string `parquet:"code"`
	Display     string `parquet:"display"`
	PackageCode string `parquet:"package_code"`
	PackageName string `parquet:"package_name"`
	Amount      string `parquet:"amount"`
	Status      string `parquet:"status"`
}

func (r DiagnosisRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.SNo,
		r.Type,
		r.Code,
		r.Display,
		r.PackageCode,
		r.PackageName,
		r.Amount,
		r.Status,
	}
}

var treatmentColumns = []string{
	"casenumber",
	"sno",
	"procedure_type",
	"procedure_name",
	"type_desc",
	"amount",
	"package_code",
	"package_name",
	"status",
}

type TreatmentRow struct {
	CaseNumber    string `parquet:"casenumber"`
	SNo           string `parquet:"sno"`
	ProcedureType string `parquet:"procedure_type"`
	ProcedureName string `parquet:"procedure_name"`
	TypeDesc      string `parquet:"type_desc"`
	Amount        string `parquet:"amount"`
	PackageCode   string `parquet:"package_code"`
	PackageName   string `parquet:"package_name"`
	Status        string `parquet:"status"`
}

func (r TreatmentRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.SNo,
		r.ProcedureType,
		r.ProcedureName,
		r.TypeDesc,
		r.Amount,
		r.PackageCode,
		r.PackageName,
		r.Status,
	}
}

var documentColumns = []string{
	"casenumber",
	"sno",
	"doc_type",
	"doc_name",
	"doc_path",
	"provider_doc_name",
	"provider_doc_path",
	"is_verified",
}

type DocumentRow struct {
	CaseNumber      string `parquet:"casenumber"`
	SNo             string `parquet:"sno"`
	DocType         string `parquet:"doc_type"`
	DocName         string `parquet:"doc_name"`
	DocPath         string `parquet:"doc_path"`
	ProviderDocName string `parquet:"provider_doc_name"`
	ProviderDocPath string `parquet:"provider_doc_path"`
	IsVerified      string `parquet:"is_verified"`
}

func (r DocumentRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.SNo,
		r.DocType,
		r.DocName,
		r.DocPath,
		r.ProviderDocName,
		r.ProviderDocPath,
		r.IsVerified,
	}
}

var addressColumns = []string{
	"casenumber",
	"address",
	"city",
	"district",
	"state",
	"pincode",
	"patient_phone",
}

type AddressRow struct {
	CaseNumber   string `parquet:"casenumber"`
	Address      string `parquet:"address"`
	City         string `parquet:"city"`
	District     string `parquet:"district"`
	State        string `parquet:"state"`
	Pincode      string `parquet:"pincode"`
	PatientPhone string `parquet:"patient_phone"`
}

func (r AddressRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.Address,
		r.City,
		r.District,
		r.State,
		r.Pincode,
		r.PatientPhone,
	}
}

var lineItemColumns = []string{
	"casenumber",
	"line_no",
	"package_cost",
	"quantity",
	"approved_factor",
	"amount",
	"net_amount",
	"status",
}

// LineItemRow is one amount.calculatedamount entry. LineNo is its 1-based
// position within the claim.
type LineItemRow struct {
	CaseNumber     string `parquet:"casenumber"`
	LineNo         string `parquet:"line_no"`
	PackageCost    string `parquet:"package_cost"`
	Quantity       string `parquet:"quantity"`
	ApprovedFactor string `parquet:"approved_factor"`
	Amount         string `parquet:"amount"`
	NetAmount      string `parquet:"net_amount"`
	Status         string `parquet:"status"`
}

func (r LineItemRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.LineNo,
		r.PackageCost,
		r.Quantity,
		r.ApprovedFactor,
		r.Amount,
		r.NetAmount,
		r.Status,
	}
}

var lineItemDeductionColumns = []string{
	"casenumber",
	"line_no",
	"deducted_amount",
	"deduction_description",
}

// LineItemDeductionRow is one deduction applied to a line item; LineNo
// joins it to line_items.
type LineItemDeductionRow struct {
	CaseNumber           string `parquet:"casenumber"`
	LineNo               string `parquet:"line_no"`
	DeductedAmount       string `parquet:"deducted_amount"`
	DeductionDescription string `parquet:"deduction_description"`
}

func (r LineItemDeductionRow) Values() []string {
	return []string{
		r.CaseNumber,
		r.LineNo,
		r.DeductedAmount,
		r.DeductionDescription,
	}
}
