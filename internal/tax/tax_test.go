package tax_test

import (
	"math"
	"testing"

	"go-hris-etl/internal/tax"

	"github.com/stretchr/testify/assert"
)

func TestNetAnnualIncome(t *testing.T) {
	tests := []struct {
		name  string
		gross float64
		want  float64
	}{
		{name: "zero", gross: 0, want: 0},
		{name: "below allowance", gross: 3000, want: 3000},
		{name: "at allowance", gross: 5000, want: 5000},
		{name: "inside band B", gross: 7000, want: 6600},
		{name: "band B fully consumed", gross: 20000, want: 17000},
		{name: "into band C", gross: 25000, want: 20000},
		{name: "sample employee", gross: 60000, want: 41000},
		{name: "fractional cents", gross: 5000.03, want: 5000.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.NetAnnualIncome(tax.ToCents(tt.gross))
			assert.Equal(t, tax.ToCents(tt.want), got)
		})
	}
}

func TestNetAnnualIncome_Negative(t *testing.T) {
	assert.Equal(t, int64(0), tax.NetAnnualIncome(-100))
}

func TestNetAnnualIncome_Monotonic(t *testing.T) {
	prev := tax.NetAnnualIncome(0)
	for gross := int64(0); gross <= 30000_00; gross += 37 {
		got := tax.NetAnnualIncome(gross)
		assert.GreaterOrEqual(t, got, prev, "gross=%d", gross)
		prev = got
	}
}

func TestTaxPaid_BandBoundaries(t *testing.T) {
	assert.Equal(t, int64(0), tax.TaxPaid(tax.TaxFreeAllowance))
	assert.Equal(t, int64(3000_00), tax.TaxPaid(tax.TaxFreeAllowance+tax.BandBWidth))
	assert.Equal(t, int64(3000_00+40), tax.TaxPaid(tax.TaxFreeAllowance+tax.BandBWidth+100))
}

func TestCentsConversion(t *testing.T) {
	assert.Equal(t, int64(4100000), tax.ToCents(41000))
	assert.Equal(t, int64(1), tax.ToCents(0.005))
	assert.Equal(t, 41000.0, tax.FromCents(4100000))
}

func TestNetAnnualIncome_LargeSalaries(t *testing.T) {
	// 5e15 units: 300000.00 of band B plus 40% of everything above 20000.00
	gross := int64(5e17)
	assert.Equal(t, int64(199999999999500000), tax.TaxPaid(gross))
	assert.Equal(t, int64(300000000000500000), tax.NetAnnualIncome(gross))

	assert.Equal(t, tax.MaxGrossCents-tax.TaxPaid(tax.MaxGrossCents), tax.NetAnnualIncome(tax.MaxGrossCents))
	assert.Less(t, tax.NetAnnualIncome(tax.MaxGrossCents), tax.MaxGrossCents)

	paid := tax.TaxPaid(math.MaxInt64)
	assert.Positive(t, paid)
	assert.Less(t, paid, int64(math.MaxInt64))
}
