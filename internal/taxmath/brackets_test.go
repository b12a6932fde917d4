package taxmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
)

// A small three-rate schedule in cents: 10% to $10,000, 20% to $40,000,
// 30% above.
func testBrackets() []taxmath.Bracket {
	return taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 1_000_000, Rate: 0.10},
		{Max: 4_000_000, Rate: 0.20},
		{Max: 0, Rate: 0.30},
	})
}

func TestTaxFromBrackets(t *testing.T) {
	brackets := testBrackets()

	tests := []struct {
		name    string
		taxable int64
		want    int64
	}{
		{"zero income", 0, 0},
		{"negative income", -500, 0},
		{"within first bracket", 500_000, 50_000},
		{"exactly on boundary stays in lower bracket", 1_000_000, 100_000},
		{"spanning two brackets", 2_000_000, 300_000},
		{"spanning all brackets", 5_000_000, 1_000_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, taxmath.TaxFromBrackets(tt.taxable, brackets))
		})
	}
}

func TestTaxIsMonotonic(t *testing.T) {
	brackets := testBrackets()
	prev := int64(-1)
	for income := int64(0); income <= 6_000_000; income += 12_345 {
		tax := taxmath.TaxFromBrackets(income, brackets)
		assert.GreaterOrEqual(t, tax, prev, "tax decreased at income %d", income)
		prev = tax
	}
}

func TestPerBracketRounding(t *testing.T) {
	// A slice of 5 cents at 10% is 0.5 cents, which rounds up per bracket.
	brackets := taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 5, Rate: 0.10},
		{Max: 0, Rate: 0.10},
	})
	assert.Equal(t, int64(2), taxmath.TaxFromBrackets(10, brackets))
}

func TestMarginalRate(t *testing.T) {
	brackets := testBrackets()

	assert.Equal(t, 0.10, taxmath.MarginalRate(0, brackets))
	assert.Equal(t, 0.10, taxmath.MarginalRate(999_999, brackets))
	assert.Equal(t, 0.10, taxmath.MarginalRate(1_000_000, brackets))
	assert.Equal(t, 0.20, taxmath.MarginalRate(1_000_001, brackets))
	assert.Equal(t, 0.30, taxmath.MarginalRate(100_000_000, brackets))
}

func TestConvertToFullBracketsValidation(t *testing.T) {
	assert.Panics(t, func() {
		taxmath.ConvertToFullBrackets(nil)
	})

	// Non-increasing bounds are a rule-table defect.
	assert.Panics(t, func() {
		taxmath.ConvertToFullBrackets([]taxmath.RateRow{
			{Max: 2_000_000, Rate: 0.10},
			{Max: 1_000_000, Rate: 0.20},
			{Max: 0, Rate: 0.30},
		})
	})

	// Unbounded row anywhere but last.
	assert.Panics(t, func() {
		taxmath.ConvertToFullBrackets([]taxmath.RateRow{
			{Max: 0, Rate: 0.10},
			{Max: 1_000_000, Rate: 0.20},
		})
	})

	// Missing unbounded top bracket.
	assert.Panics(t, func() {
		taxmath.ConvertToFullBrackets([]taxmath.RateRow{
			{Max: 1_000_000, Rate: 0.10},
			{Max: 2_000_000, Rate: 0.20},
		})
	})
}
