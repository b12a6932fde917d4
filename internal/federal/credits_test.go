package federal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ustaxcalc/ustax-api/internal/federal"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

func TestCTCPhaseOut(t *testing.T) {
	tests := []struct {
		name       string
		status     types.FilingStatus
		wagesCents int64
		want       int64
	}{
		{"single below threshold", types.Single, 19_000_000, 200_000},
		{"single at threshold", types.Single, 20_000_000, 200_000},
		{"single $1 over loses a full $50 step", types.Single, 20_000_100, 195_000},
		{"single $10k over", types.Single, 21_000_000, 150_000},
		{"MFJ uses the higher threshold", types.MarriedJointly, 21_000_000, 200_000},
		{"single fully phased out", types.Single, 24_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := singleFiler(tt.wagesCents)
			input.FilingStatus = tt.status
			if tt.status == types.MarriedJointly {
				spouse := types.PersonFacts{BirthDate: birthDate(1986, 4, 2), HasSSN: true}
				input.Spouse = &spouse
			}
			input.QualifyingChildren = []types.QualifyingChild{
				{BirthDate: birthDate(2016, 5, 5), MonthsWithTaxpayer: 12, HasSSN: true},
			}

			result := federal.ComputeFederal(input)
			got := result.Credits.CTC.Amount + result.Credits.CTC.RefundableAmount
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCTCChildEligibility(t *testing.T) {
	input := singleFiler(6_000_000)
	input.QualifyingChildren = []types.QualifyingChild{
		{Name: "ok", BirthDate: birthDate(2012, 1, 1), MonthsWithTaxpayer: 12, HasSSN: true},
		{Name: "too old", BirthDate: birthDate(2007, 1, 1), MonthsWithTaxpayer: 12, HasSSN: true},
		{Name: "short residency", BirthDate: birthDate(2018, 1, 1), MonthsWithTaxpayer: 4, HasSSN: true},
		{Name: "self supporting", BirthDate: birthDate(2010, 1, 1), MonthsWithTaxpayer: 12, ProvidedOwnSupport: true, HasSSN: true},
		{Name: "no ssn", BirthDate: birthDate(2019, 1, 1), MonthsWithTaxpayer: 12},
	}

	result := federal.ComputeFederal(input)

	require.Len(t, result.Credits.CTC.Details, 5)
	assert.True(t, result.Credits.CTC.Details[0].Eligible)
	for _, detail := range result.Credits.CTC.Details[1:] {
		assert.False(t, detail.Eligible, "%s should be ineligible", detail.Subject)
		assert.NotEmpty(t, detail.IneligibilityReason)
	}
	// Only one eligible child: $2,000 total.
	assert.Equal(t, int64(200_000), result.Credits.CTC.Amount)
}

func TestACTCRequiresEarnedIncome(t *testing.T) {
	// Interest-only income: no earned income, so no refundable portion even
	// though tax before credits is zero.
	input := singleFiler(0)
	input.Income.Interest = 1_200_000
	input.QualifyingChildren = []types.QualifyingChild{
		{BirthDate: birthDate(2016, 5, 5), MonthsWithTaxpayer: 12, HasSSN: true},
	}

	result := federal.ComputeFederal(input)
	assert.Equal(t, int64(0), result.Credits.CTC.RefundableAmount)
}

func TestACTCFifteenPercentOfEarnedIncome(t *testing.T) {
	// $12,500 of wages: no regular tax after the standard deduction, so the
	// whole credit flows through the ACTC at 15% of (12,500 - 2,500).
	input := singleFiler(1_250_000)
	input.QualifyingChildren = []types.QualifyingChild{
		{BirthDate: birthDate(2016, 5, 5), MonthsWithTaxpayer: 12, HasSSN: true},
	}

	result := federal.ComputeFederal(input)

	assert.Equal(t, int64(0), result.Credits.CTC.Amount)
	assert.Equal(t, int64(150_000), result.Credits.CTC.RefundableAmount)
}

func TestEITCChildlessAgeTest(t *testing.T) {
	young := singleFiler(1_000_000)
	young.Primary.BirthDate = birthDate(2003, 6, 1) // 22 at year end

	result := federal.ComputeFederal(young)
	assert.Equal(t, int64(0), result.Credits.EITC.RefundableAmount)
	require.NotEmpty(t, result.Credits.EITC.Details)
	assert.Contains(t, result.Credits.EITC.Details[0].IneligibilityReason, "age 25-64")

	eligible := singleFiler(1_000_000)
	eligible.Primary.BirthDate = birthDate(1990, 6, 1)
	result = federal.ComputeFederal(eligible)
	assert.Positive(t, result.Credits.EITC.RefundableAmount)
}

func TestEITCInvestmentIncomeCap(t *testing.T) {
	input := singleFiler(2_000_000)
	input.QualifyingChildren = []types.QualifyingChild{
		{BirthDate: birthDate(2017, 2, 10), MonthsWithTaxpayer: 12, HasSSN: true},
	}
	input.Income.Interest = 1_300_000 // $13,000 > $11,950 cap

	result := federal.ComputeFederal(input)
	assert.Equal(t, int64(0), result.Credits.EITC.RefundableAmount)
}

func TestEITCMFSIneligible(t *testing.T) {
	input := singleFiler(2_000_000)
	input.FilingStatus = types.MarriedSeparate

	result := federal.ComputeFederal(input)
	assert.Equal(t, int64(0), result.Credits.EITC.RefundableAmount)
}

func TestEITCStricterChildAgeRules(t *testing.T) {
	input := singleFiler(2_000_000)
	input.QualifyingChildren = []types.QualifyingChild{
		// 20-year-old non-student fails EITC but is also past CTC age.
		{Name: "adult", BirthDate: birthDate(2005, 3, 1), MonthsWithTaxpayer: 12, HasSSN: true},
		// 20-year-old full-time student qualifies for EITC.
		{Name: "student", BirthDate: birthDate(2005, 4, 1), MonthsWithTaxpayer: 12, IsStudent: true, HasSSN: true},
		// Disabled child qualifies at any age.
		{Name: "disabled", BirthDate: birthDate(1995, 1, 1), MonthsWithTaxpayer: 12, IsDisabled: true, HasSSN: true},
	}

	result := federal.ComputeFederal(input)

	eligible := 0
	for _, detail := range result.Credits.EITC.Details {
		if detail.Eligible {
			eligible++
		}
	}
	assert.Equal(t, 2, eligible)
	// Two qualifying children select the 40% phase-in row: $20,000 x 40%
	// capped at the two-child maximum of $7,152.
	assert.Equal(t, int64(715_200), result.Credits.EITC.RefundableAmount)
}

func TestAOTCTieredCredit(t *testing.T) {
	input := singleFiler(6_000_000)
	input.EducationExpenses = []types.EducationExpense{
		{
			StudentName:        "undergrad",
			QualifiedExpenses:  400_000, // $4,000
			IsAccreditedSchool: true,
			IsAtLeastHalfTime:  true,
		},
	}

	result := federal.ComputeFederal(input)

	// 100% of $2,000 + 25% of $2,000 = $2,500; 40% ($1,000) refundable.
	total := result.Credits.AOTC.Amount + result.Credits.AOTC.RefundableAmount
	assert.Equal(t, int64(250_000), total)
	assert.Equal(t, int64(100_000), result.Credits.AOTC.RefundableAmount)
	assert.Equal(t, int64(0), result.Credits.LLC.Amount, "LLC suppressed when AOTC claimed")
}

func TestLLCWhenAOTCIneligible(t *testing.T) {
	input := singleFiler(6_000_000)
	input.EducationExpenses = []types.EducationExpense{
		{
			StudentName:        "part-timer",
			QualifiedExpenses:  800_000, // $8,000
			IsAccreditedSchool: true,
			IsAtLeastHalfTime:  false, // fails AOTC, fine for LLC
		},
	}

	result := federal.ComputeFederal(input)

	assert.Equal(t, int64(0), result.Credits.AOTC.Amount+result.Credits.AOTC.RefundableAmount)
	// 20% of $8,000.
	assert.Equal(t, int64(160_000), result.Credits.LLC.Amount)
	assert.Equal(t, int64(0), result.Credits.LLC.RefundableAmount, "LLC is never refundable")
}

func TestLLCAggregatesAcrossStudents(t *testing.T) {
	input := singleFiler(6_000_000)
	input.EducationExpenses = []types.EducationExpense{
		{StudentName: "a", QualifiedExpenses: 700_000, IsAccreditedSchool: true},
		{StudentName: "b", QualifiedExpenses: 700_000, IsAccreditedSchool: true},
	}

	result := federal.ComputeFederal(input)

	// $14,000 combined is capped at the $10,000 ceiling before the 20%.
	assert.Equal(t, int64(200_000), result.Credits.LLC.Amount)
}

func TestEducationCreditPhaseOutBoundary(t *testing.T) {
	expenses := []types.EducationExpense{
		{QualifiedExpenses: 400_000, IsAccreditedSchool: true, IsAtLeastHalfTime: true},
	}

	atEnd := singleFiler(9_000_000) // MAGI exactly at the $90,000 completion point
	atEnd.EducationExpenses = expenses
	result := federal.ComputeFederal(atEnd)
	assert.Equal(t, int64(0), result.Credits.AOTC.Amount+result.Credits.AOTC.RefundableAmount)

	midway := singleFiler(8_500_000)
	midway.EducationExpenses = expenses
	result = federal.ComputeFederal(midway)
	assert.Equal(t, int64(125_000), result.Credits.AOTC.Amount+result.Credits.AOTC.RefundableAmount)
}

func TestAdoptionCredit(t *testing.T) {
	t.Run("special needs gets full maximum without expenses", func(t *testing.T) {
		input := singleFiler(8_000_000)
		input.AdoptionExpenses = []types.AdoptionExpense{
			{ChildName: "child", IsSpecialNeeds: true},
		}

		result := federal.ComputeFederal(input)
		total := result.Credits.Adoption.Amount + result.Credits.Adoption.RefundableAmount
		assert.Equal(t, int64(1_728_000), total)
		// $5,000 of the credit is refundable per return.
		assert.Equal(t, int64(500_000), result.Credits.Adoption.RefundableAmount)
	})

	t.Run("foreign adoption requires finalization", func(t *testing.T) {
		input := singleFiler(8_000_000)
		input.AdoptionExpenses = []types.AdoptionExpense{
			{ChildName: "pending", QualifiedExpenses: 900_000, IsForeign: true, IsFinalized: false},
		}

		result := federal.ComputeFederal(input)
		assert.Equal(t, int64(0), result.Credits.Adoption.Amount+result.Credits.Adoption.RefundableAmount)
		require.Len(t, result.Credits.Adoption.Details, 1)
		assert.Contains(t, result.Credits.Adoption.Details[0].IneligibilityReason, "not yet finalized")
	})

	t.Run("employer assistance reduces eligible expenses", func(t *testing.T) {
		input := singleFiler(8_000_000)
		input.AdoptionExpenses = []types.AdoptionExpense{
			{ChildName: "domestic", QualifiedExpenses: 1_000_000, EmployerAssistance: 400_000},
		}

		result := federal.ComputeFederal(input)
		total := result.Credits.Adoption.Amount + result.Credits.Adoption.RefundableAmount
		assert.Equal(t, int64(600_000), total)
	})

	t.Run("prior year credits reduce the lifetime cap", func(t *testing.T) {
		input := singleFiler(8_000_000)
		input.AdoptionExpenses = []types.AdoptionExpense{
			{ChildName: "second year", QualifiedExpenses: 1_700_000, PriorYearCredits: 1_500_000},
		}

		result := federal.ComputeFederal(input)
		total := result.Credits.Adoption.Amount + result.Credits.Adoption.RefundableAmount
		assert.Equal(t, int64(228_000), total)
	})
}
