package normalize

import (
	"math"
	"strconv"
	"strings"
)

// NumberText renders a JSON number literal in shortest decimal form
// ("1000.0" → "1000", "1e3" → "1000"). Plain integers are kept verbatim so
// long identifiers do not lose digits. Literals that do not parse are
// returned unchanged.
func NumberText(raw string) string {
	if isInteger(raw) && raw != "-0" {
		return raw
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return FormatNumber(f)
}

func isInteger(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// FormatNumber renders f without exponent or padding. Negative zero prints as "0".
func FormatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseAmount parses a money or quantity value that may arrive as a JSON
// number or a numeric string. Empty and non-finite values report ok=false.
func ParseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Difference returns a - b when both parse.
func Difference(a, b string) (float64, bool) {
	x, ok := ParseAmount(a)
	if !ok {
		return 0, false
	}
	y, ok := ParseAmount(b)
	if !ok {
		return 0, false
	}
	return x - y, true
}

// Percentage returns part / whole * 100. A zero whole has no percentage.
func Percentage(part, whole float64) (float64, bool) {
	if whole == 0 {
		return 0, false
	}
	p := part / whole * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0, false
	}
	return p, true
}

// FactorBelowFull reports whether an approved factor such as "80%" is a
// percentage under 100. Values without a '%' are not factors.
func FactorBelowFull(factor string) bool {
	pct, _, found := strings.Cut(factor, "%")
	if !found {
		return false
	}
	f, ok := ParseAmount(pct)
	return ok && f < 100
}
