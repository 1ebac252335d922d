package model

import (
	"bytes"

	json "github.com/goccy/go-json"

	"github.com/gyeh/claimflat/internal/normalize"
)

// Scalar is a JSON leaf carried as the text it renders to in an output cell.
// The portal returns numbers and strings interchangeably for the same field,
// so nothing is typed beyond "present or not".
type Scalar struct {
	text    string
	present bool
	falsy   bool // JSON false or a numeric zero
}

// NewScalar returns a present Scalar holding s.
func NewScalar(s string) Scalar {
	return Scalar{text: s, present: true}
}

// UnmarshalJSON accepts any JSON value. null leaves the Scalar absent;
// numbers are rendered in shortest decimal form; objects and arrays are
// kept as compact JSON.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = Scalar{}
		return nil
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = NewScalar(v)
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return err
		}
		*s = NewScalar(buf.String())
	case 't', 'f':
		*s = NewScalar(string(data))
		s.falsy = data[0] == 'f'
	default:
		*s = NewScalar(normalize.NumberText(string(data)))
		s.falsy = s.text == "0"
	}
	return nil
}

// String returns the cell text, or "" when absent.
func (s Scalar) String() string {
	return s.text
}

// Present reports whether the field appeared with a non-null value.
func (s Scalar) Present() bool {
	return s.present
}

// Truthy reports whether the value is present, non-empty, and not JSON
// false or a numeric zero. The string "0" is truthy.
func (s Scalar) Truthy() bool {
	return s.present && s.text != "" && !s.falsy
}

// Float parses the value as a number. Absent and non-numeric values
// report ok=false.
func (s Scalar) Float() (float64, bool) {
	if !s.present {
		return 0, false
	}
	return normalize.ParseAmount(s.text)
}

// List is a sub-collection that tolerates the portal sending null, an
// object, or a scalar where an array is expected; all of those decode as
// a nil list. A JSON [] decodes as an empty, non-nil list.
type List[T any] []T

func (l *List[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		*l = nil
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}
	*l = items
	return nil
}
