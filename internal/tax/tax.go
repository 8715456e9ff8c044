// Package tax computes net annual income under the three-band progressive
// schedule. Amounts are integer cents so results are exact at the boundaries.
package tax

import "math"

const (
	// TaxFreeAllowance is band A: income up to this amount is untaxed.
	TaxFreeAllowance int64 = 5000_00
	// BandBWidth is the slice of income above the allowance taxed at BandBRatePercent.
	BandBWidth       int64 = 15000_00
	BandBRatePercent int64 = 20
	// BandCRatePercent applies to everything above allowance + band B.
	BandCRatePercent int64 = 40

	// MaxGrossCents is the largest gross salary accepted for ingestion
	// (one trillion currency units).
	MaxGrossCents int64 = 1_000_000_000_000_00
)

// NetAnnualIncome returns gross minus tax paid. Negative input is treated as
// zero income.
func NetAnnualIncome(grossCents int64) int64 {
	if grossCents <= 0 {
		return 0
	}
	return grossCents - TaxPaid(grossCents)
}

// TaxPaid applies bands B and C to gross minus the tax-free allowance. The
// remainder may go negative; bands are simply skipped while it is not positive.
func TaxPaid(grossCents int64) int64 {
	var paid int64

	taxable := grossCents - TaxFreeAllowance
	if taxable > 0 {
		paid += percentOf(min(taxable, BandBWidth), BandBRatePercent)
	}
	taxable -= BandBWidth
	if taxable > 0 {
		paid += percentOf(taxable, BandCRatePercent)
	}

	return paid
}

// percentOf rounds half-up to the cent. Whole hundreds are scaled before the
// remainder so the product cannot overflow for any non-negative amount.
func percentOf(amountCents, percent int64) int64 {
	return amountCents/100*percent + (amountCents%100*percent+50)/100
}

// ToCents converts a decimal currency amount to cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
