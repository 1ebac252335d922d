package model

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// decodeObject unmarshals data into v only when it is a JSON object. The
// portal sends "", [] or a message string in place of sections it has no
// data for; those leave v at its zero value.
func decodeObject(data []byte, v any) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Each section type decodes through a method-less copy of itself so the
// custom UnmarshalJSON does not recurse.

func (c *Claim) UnmarshalJSON(data []byte) error {
	type plain Claim
	return decodeObject(data, (*plain)(c))
}

func (e *Encounter) UnmarshalJSON(data []byte) error {
	type plain Encounter
	return decodeObject(data, (*plain)(e))
}

func (c *Contact) UnmarshalJSON(data []byte) error {
	type plain Contact
	return decodeObject(data, (*plain)(c))
}

func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	return decodeObject(data, (*plain)(a))
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	type plain Amount
	return decodeObject(data, (*plain)(a))
}

func (c *CalculatedAmount) UnmarshalJSON(data []byte) error {
	type plain CalculatedAmount
	return decodeObject(data, (*plain)(c))
}

func (d *Deduction) UnmarshalJSON(data []byte) error {
	type plain Deduction
	return decodeObject(data, (*plain)(d))
}

func (d *Diagnosis) UnmarshalJSON(data []byte) error {
	type plain Diagnosis
	return decodeObject(data, (*plain)(d))
}

func (t *Treatment) UnmarshalJSON(data []byte) error {
	type plain Treatment
	return decodeObject(data, (*plain)(t))
}

func (p *Payment) UnmarshalJSON(data []byte) error {
	type plain Payment
	return decodeObject(data, (*plain)(p))
}

func (l *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry
	return decodeObject(data, (*plain)(l))
}

func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	return decodeObject(data, (*plain)(d))
}

func (p *PatientInfo) UnmarshalJSON(data []byte) error {
	type plain PatientInfo
	return decodeObject(data, (*plain)(p))
}
