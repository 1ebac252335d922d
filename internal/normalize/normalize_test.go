package normalize

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNumberText(t *testing.T) {
	cases := map[string]string{
		"1000":                 "1000",
		"1000.0":               "1000",
		"1e3":                  "1000",
		"0.5":                  "0.5",
		"-12.50":               "-12.5",
		"-0":                   "0",
		"12345678901234567890": "12345678901234567890",
		"not-a-number":         "not-a-number",
	}
	for in, want := range cases {
		if got := NumberText(in); got != want {
			t.Errorf("NumberText(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	if v, ok := ParseAmount(" 800 "); !ok || v != 800 {
		t.Errorf("ParseAmount(800) = %v, %v", v, ok)
	}
	for _, s := range []string{"", "  ", "abc", "NaN", "Inf"} {
		if _, ok := ParseAmount(s); ok {
			t.Errorf("ParseAmount(%q) should fail", s)
		}
	}
}

func TestDifferenceAndPercentage(t *testing.T) {
	d, ok := Difference("1000", "800")
	if !ok || d != 200 {
		t.Fatalf("Difference = %v, %v", d, ok)
	}
	p, ok := Percentage(d, 1000)
	if !ok || FormatNumber(p) != "20" {
		t.Errorf("Percentage = %v, %v", p, ok)
	}
	if _, ok := Difference("", "800"); ok {
		t.Error("Difference with missing minuend should fail")
	}
	if _, ok := Percentage(200, 0); ok {
		t.Error("Percentage over zero should fail")
	}
}

func TestFactorBelowFull(t *testing.T) {
	cases := map[string]bool{
		"80%":   true,
		"99.9%": true,
		"100%":  false,
		"120%":  false,
		"80":    false,
		"":      false,
		"x%":    false,
	}
	for in, want := range cases {
		if got := FactorBelowFull(in); got != want {
			t.Errorf("FactorBelowFull(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseDateRequiresLayout(t *testing.T) {
	if _, ok := ParseDate("05/03/2024", ""); ok {
		t.Error("empty layout must not parse")
	}
	d, ok := ParseDate("05/03/2024", "02/01/2006")
	if !ok {
		t.Fatal("expected parse")
	}
	if d.Month() != time.March || d.Day() != 5 {
		t.Errorf("parsed %v", d)
	}
	if _, ok := ParseDate("31/31/2024", "02/01/2006"); ok {
		t.Error("invalid date should not parse")
	}
}

func TestElapsedDays(t *testing.T) {
	a := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := ElapsedDays(a, a.AddDate(0, 0, 4)); got != 4 {
		t.Errorf("ElapsedDays = %d, want 4", got)
	}
	if got := ElapsedDays(a, a.Add(25*time.Hour)); got != 2 {
		t.Errorf("partial day should round up, got %d", got)
	}
}

func TestJoinPresent(t *testing.T) {
	if got := JoinPresent(" ", "12 Main St", "", "Block B"); got != "12 Main St Block B" {
		t.Errorf("JoinPresent = %q", got)
	}
	if got := JoinPresent(" ", "", ""); got != "" {
		t.Errorf("JoinPresent of empties = %q", got)
	}
}

func TestHashes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.json")
	if err := os.WriteFile(path, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}
	fh, err := FileHash(path)
	if err != nil {
		t.Fatalf("FileHash: %v", err)
	}
	if fh != TextHash("[]") {
		t.Errorf("file hash %s != text hash %s", fh, TextHash("[]"))
	}
	if _, err := FileHash(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
