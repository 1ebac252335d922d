package model

// InterceptedRecord is one patient/claim encounter as captured from the
// portal's claim, activity-log and payment endpoints. Every part is optional.
type InterceptedRecord struct {
	Claim       *Claim         `json:"claim"`
	Payment     List[Payment]  `json:"payment"`
	Log         List[LogEntry] `json:"log"`
	Document    List[Document] `json:"document"`
	PatientInfo *PatientInfo   `json:"patientInfo"`
}

// Claim mirrors the claim/info response.
type Claim struct {
	CaseNumber             Scalar          `json:"casenumber"`
	Encounter              *Encounter      `json:"encounter"`
	Amount                 *Amount         `json:"amount"`
	Diagnosis              List[Diagnosis] `json:"diagnosis"`
	Treatments             List[Treatment] `json:"treatments"`
	AdmissionDate          Scalar          `json:"admissiondate"`
	DischargeDate          Scalar          `json:"dischargedate"`
	SurgeryDate            Scalar          `json:"surgerydate"`
	RegistrationDate       Scalar          `json:"registrationdate"`
	FinalCPDRecommendation Scalar          `json:"finalCPDRecommendation"`
	FinalACORecommendation Scalar          `json:"finalACORecommendation"`
}

// Encounter holds patient and provider demographics.
type Encounter struct {
	PatientNumber Scalar         `json:"patientnumber"`
	PatientName   Scalar         `json:"patientname"`
	PatientDOB    Scalar         `json:"patientdob"`
	Gender        Scalar         `json:"gender"`
	CarePlanID    Scalar         `json:"careplanid"`
	CarePlanCode  Scalar         `json:"careplancode"`
	ProviderName  Scalar         `json:"providername"`
	PayerName     Scalar         `json:"payername"`
	Contacts      List[Contact]  `json:"patientcontacts"`
	Addresses     List[Address]  `json:"patientaddress"`
	Documents     List[Document] `json:"documents"`
}

type Contact struct {
	ContactNumber Scalar `json:"contactnumber"`
}

type Address struct {
	Line1    Scalar `json:"addressline1"`
	Line2    Scalar `json:"addressline2"`
	City     Scalar `json:"city"`
	District Scalar `json:"district"`
	State    Scalar `json:"state"`
	Pincode  Scalar `json:"pincode"`
}

// Amount carries claimed/approved totals and the per-package breakup.
type Amount struct {
	TotalAmount        Scalar                 `json:"totalamount"`
	AmountApproved     Scalar                 `json:"amountapproved"`
	PackageAmount      Scalar                 `json:"packageamount"`
	TotalPackageAmount Scalar                 `json:"totalpackageamount"`
	Calculated         List[CalculatedAmount] `json:"calculatedamount"`
}

// CalculatedAmount is one package/procedure line contributing to the
// approved total.
type CalculatedAmount struct {
	PackageCost    Scalar          `json:"packagecost"`
	Quantity       Scalar          `json:"quantity"`
	ApprovedFactor Scalar          `json:"approvedfactor"`
	Amount         Scalar          `json:"amount"`
	NetAmount      Scalar          `json:"netamount"`
	Status         Scalar          `json:"status"`
	Deductions     List[Deduction] `json:"deductions"`
}

type Deduction struct {
	DeductedAmount Scalar `json:"deductedamount"`
	Description    Scalar `json:"deductiondescription"`
}

type Diagnosis struct {
	SNo         Scalar `json:"sno"`
	Type        Scalar `json:"type"`
	Code        Scalar `json:"code"`
	Display     Scalar `json:"display"`
	PackageCode Scalar `json:"packagecode"`
	PackageName Scalar `json:"packagename"`
	Amount      Scalar `json:"amount"`
	Status      Scalar `json:"status"`
}

type Treatment struct {
	SNo           Scalar `json:"sno"`
	ProcedureType Scalar `json:"proceduretype"`
	ProcedureName Scalar `json:"procedurename"`
	TypeDesc      Scalar `json:"typedesc"`
	Amount        Scalar `json:"amount"`
	PackageCode   Scalar `json:"packagecode"`
	PackageName   Scalar `json:"packagename"`
	Status        Scalar `json:"status"`
}

// Payment is one entry of the fetch/paymentDtls response.
type Payment struct {
	Status            Scalar `json:"paymentstatus"`
	Remarks           Scalar `json:"remarks"`
	Type              Scalar `json:"paymenttype"`
	TransactionAmount Scalar `json:"transactionamount"`
	TransactionDate   Scalar `json:"transactiondate"`
	PaidDate          Scalar `json:"paiddate"`
	UniqueID          Scalar `json:"paymentuniqueId"`
}

// LogEntry is one entry of the activity/log response.
type LogEntry struct {
	SNo         Scalar `json:"sno"`
	Process     Scalar `json:"process"`
	RaisedDate  Scalar `json:"raiseddate"`
	UpdatedDate Scalar `json:"updateddate"`
	Type        Scalar `json:"type"`
	Status      Scalar `json:"status"`
	Remarks     Scalar `json:"remarks"`
	User        Scalar `json:"user"`
	Amount      Scalar `json:"amount"`
}

type Document struct {
	SNo             Scalar `json:"sno"`
	DocType         Scalar `json:"doctype"`
	DocName         Scalar `json:"docname"`
	DocPath         Scalar `json:"docpath"`
	ProviderDocName Scalar `json:"providerdocname"`
	ProviderDocPath Scalar `json:"providerdocpath"`
	Verified        Scalar `json:"isverified"`
}

// PatientInfo is scrape provenance attached by the scraper, not portal data.
type PatientInfo struct {
	Name        Scalar `json:"name"`
	GlobalIndex Scalar `json:"globalIndex"`
	Page        Scalar `json:"page"`
	IndexOnPage Scalar `json:"indexOnPage"`
}

// Nil-safe accessors. Each returns the zero value when any link in the
// chain is missing.

func (r *InterceptedRecord) GetClaim() *Claim {
	if r == nil {
		return nil
	}
	return r.Claim
}

func (r *InterceptedRecord) GetPatientInfo() *PatientInfo {
	if r == nil {
		return nil
	}
	return r.PatientInfo
}

// CaseNumber returns claim.casenumber, or "" when absent.
func (r *InterceptedRecord) CaseNumber() string {
	return r.GetClaim().GetCaseNumber()
}

// Documents returns the record's document list, falling back to the
// documents embedded in the claim encounter when the scraper did not
// capture a separate list. A captured but empty list has no fallback.
func (r *InterceptedRecord) Documents() []Document {
	if r == nil {
		return nil
	}
	if r.Document != nil {
		return r.Document
	}
	return r.GetClaim().GetEncounter().GetDocuments()
}

// GetCaseNumber returns "" when the case number is missing, empty, or a
// JSON false or zero.
func (c *Claim) GetCaseNumber() string {
	if c == nil || !c.CaseNumber.Truthy() {
		return ""
	}
	return c.CaseNumber.String()
}

func (c *Claim) GetEncounter() *Encounter {
	if c == nil {
		return nil
	}
	return c.Encounter
}

func (c *Claim) GetAmount() *Amount {
	if c == nil {
		return nil
	}
	return c.Amount
}

func (c *Claim) GetDiagnosis() []Diagnosis {
	if c == nil {
		return nil
	}
	return c.Diagnosis
}

func (c *Claim) GetTreatments() []Treatment {
	if c == nil {
		return nil
	}
	return c.Treatments
}

func (e *Encounter) GetContacts() []Contact {
	if e == nil {
		return nil
	}
	return e.Contacts
}

func (e *Encounter) GetAddresses() []Address {
	if e == nil {
		return nil
	}
	return e.Addresses
}

func (e *Encounter) GetDocuments() []Document {
	if e == nil {
		return nil
	}
	return e.Documents
}

// PrimaryPhone returns the first contact number, or "".
func (e *Encounter) PrimaryPhone() string {
	contacts := e.GetContacts()
	if len(contacts) == 0 {
		return ""
	}
	return contacts[0].ContactNumber.String()
}

func (a *Amount) GetCalculated() []CalculatedAmount {
	if a == nil {
		return nil
	}
	return a.Calculated
}
