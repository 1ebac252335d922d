package flatten

import (
	"github.com/gyeh/claimflat/internal/model"
	"github.com/gyeh/claimflat/internal/normalize"
)

// AddressLine joins addressline1 and addressline2.
func AddressLine(a model.Address) string {
	return normalize.JoinPresent(addressSeparator, a.Line1.String(), a.Line2.String())
}

// PrimaryAddress is the first patient address, or "".
func PrimaryAddress(enc *model.Encounter) string {
	addrs := enc.GetAddresses()
	if len(addrs) == 0 {
		return ""
	}
	return AddressLine(addrs[0])
}

// Deduction returns totalamount - amountapproved and that difference as a
// percentage of totalamount. Either cell is blank when it cannot be computed.
func Deduction(a *model.Amount) (amount, percentage string) {
	if a == nil {
		return "", ""
	}
	return deductionPair(a.TotalAmount, a.AmountApproved)
}

// BaseDeduction returns packageamount - totalpackageamount and its
// percentage of packageamount.
func BaseDeduction(a *model.Amount) (amount, percentage string) {
	if a == nil {
		return "", ""
	}
	return deductionPair(a.PackageAmount, a.TotalPackageAmount)
}

func deductionPair(whole, kept model.Scalar) (string, string) {
	d, ok := normalize.Difference(whole.String(), kept.String())
	if !ok {
		return "", ""
	}
	w, _ := whole.Float()
	p, ok := normalize.Percentage(d, w)
	if !ok {
		return normalize.FormatNumber(d), ""
	}
	return normalize.FormatNumber(d), normalize.FormatNumber(p)
}

// LineItemDeductions sums deductedamount over every line item's
// deductions. Blank when no deduction carries an amount.
func LineItemDeductions(a *model.Amount) string {
	var sum float64
	var seen bool
	for _, item := range a.GetCalculated() {
		for _, d := range item.Deductions {
			if v, ok := d.DeductedAmount.Float(); ok {
				sum += v
				seen = true
			}
		}
	}
	if !seen {
		return ""
	}
	return normalize.FormatNumber(sum)
}

// ReducedLineItems counts line items approved at less than 100%.
func ReducedLineItems(a *model.Amount) int {
	n := 0
	for _, item := range a.GetCalculated() {
		if normalize.FactorBelowFull(item.ApprovedFactor.String()) {
			n++
		}
	}
	return n
}
