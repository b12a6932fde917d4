package states_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ustaxcalc/ustax-api/internal/diag"
	"github.com/ustaxcalc/ustax-api/internal/federal"
	"github.com/ustaxcalc/ustax-api/internal/states"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

func taxpayer(wagesCents int64) *types.TaxpayerInput {
	return &types.TaxpayerInput{
		FilingStatus: types.Single,
		Primary: types.PersonFacts{
			BirthDate: time.Date(1985, time.March, 15, 0, 0, 0, 0, time.UTC),
			HasSSN:    true,
		},
		Income: types.Income{Wages: wagesCents},
	}
}

func stateInput(t *testing.T, code string, wagesCents int64) *types.StateTaxInput {
	t.Helper()
	tp := taxpayer(wagesCents)
	return &types.StateTaxInput{
		Federal:   federal.ComputeFederal(tp),
		Taxpayer:  tp,
		StateCode: code,
	}
}

func TestLookup(t *testing.T) {
	assert.Nil(t, states.Lookup("XX"), "unknown code")
	assert.Nil(t, states.Lookup(""), "empty code")

	require.NotNil(t, states.Lookup("CA"))
	assert.NotNil(t, states.Lookup("ca"), "lookup is case-insensitive")
	assert.NotNil(t, states.Lookup(" tx "), "lookup trims whitespace")
}

func TestRegistryCoversAllJurisdictions(t *testing.T) {
	codes := states.Codes()
	assert.Len(t, codes, 51, "50 states plus DC")

	seen := map[string]bool{}
	for _, code := range codes {
		assert.Len(t, code, 2)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}

func TestNoTaxStateRefundsWithholding(t *testing.T) {
	entry := states.Lookup("TX")
	require.NotNil(t, entry)
	assert.False(t, entry.Config.HasIncomeTax)

	in := stateInput(t, "TX", 6_000_000)
	in.StateWithholding = 100_000 // $1,000 withheld in error

	result := entry.Calculate(in)

	assert.Equal(t, int64(0), result.StateTax)
	assert.Equal(t, int64(0), result.TotalLiability)
	assert.Equal(t, int64(100_000), result.RefundOrOwe)

	require.NotEmpty(t, result.Diagnostics.Warnings)
	assert.Equal(t, diag.FormNoTaxState, result.Diagnostics.Warnings[0].Code)
}

func TestFlatRateIllinois(t *testing.T) {
	entry := states.Lookup("IL")
	require.NotNil(t, entry)

	result := entry.Calculate(stateInput(t, "IL", 6_000_000))

	assert.Equal(t, int64(6_000_000), result.StateAGI)
	assert.Equal(t, int64(285_000), result.Exemptions)
	assert.Equal(t, int64(5_715_000), result.StateTaxableIncome)
	// 4.95% flat, half-up on the half cent.
	assert.Equal(t, int64(282_893), result.StateTax)
	assert.Equal(t, result.StateTax, result.TotalLiability)
}

func TestGraduatedVirginia(t *testing.T) {
	entry := states.Lookup("VA")
	require.NotNil(t, entry)

	result := entry.Calculate(stateInput(t, "VA", 6_000_000))

	assert.Equal(t, int64(850_000), result.Deduction)
	assert.Equal(t, int64(93_000), result.Exemptions)
	assert.Equal(t, int64(5_057_000), result.StateTaxableIncome)
	// 2% / 3% / 5% tiers plus 5.75% on the remainder.
	assert.Equal(t, int64(265_028), result.StateTax)
}

func TestColoradoStartsFromFederalTaxableIncome(t *testing.T) {
	entry := states.Lookup("CO")
	require.NotNil(t, entry)

	in := stateInput(t, "CO", 10_000_000)
	result := entry.Calculate(in)

	assert.Equal(t, in.Federal.TaxableIncome, result.StateAGI)
	assert.Equal(t, int64(8_500_000), result.StateTaxableIncome)
	assert.Equal(t, int64(374_000), result.StateTax)
}

func TestMassachusettsMillionaireSurtax(t *testing.T) {
	entry := states.Lookup("MA")
	require.NotNil(t, entry)

	below := entry.Calculate(stateInput(t, "MA", 6_000_000))
	assert.Empty(t, below.Notes)

	result := entry.Calculate(stateInput(t, "MA", 200_000_000))
	assert.Equal(t, int64(199_560_000), result.StateTaxableIncome)
	// 5% base plus 4% of the excess over the threshold.
	assert.Equal(t, int64(9_978_000+3_649_800), result.StateTax)
	assert.NotEmpty(t, result.Notes)
}

func TestNewYorkCityResidentTax(t *testing.T) {
	entry := states.Lookup("NY")
	require.NotNil(t, entry)

	commuter := entry.Calculate(stateInput(t, "NY", 10_000_000))
	assert.Equal(t, int64(0), commuter.LocalTax)

	in := stateInput(t, "NY", 10_000_000)
	in.StateSpecific = map[string]string{"nyc_resident": "true"}
	resident := entry.Calculate(in)

	assert.Equal(t, int64(9_200_000), resident.StateTaxableIncome)
	assert.Equal(t, int64(495_175), resident.StateTax)
	assert.Equal(t, int64(344_109), resident.LocalTax)
	assert.Equal(t, resident.StateTax+resident.LocalTax, resident.TotalLiability)
}

func TestMarylandCountyTaxDefaultsToStatewideRate(t *testing.T) {
	entry := states.Lookup("MD")
	require.NotNil(t, entry)

	result := entry.Calculate(stateInput(t, "MD", 6_000_000))
	assert.Positive(t, result.LocalTax)

	in := stateInput(t, "MD", 6_000_000)
	in.StateSpecific = map[string]string{"county_rate": "0.0275"}
	lower := entry.Calculate(in)
	assert.Less(t, lower.LocalTax, result.LocalTax)
}

func TestStateEITCPiggybacksOnFederal(t *testing.T) {
	tp := taxpayer(2_500_000)
	tp.QualifyingChildren = []types.QualifyingChild{{
		BirthDate:          time.Date(2015, time.June, 1, 0, 0, 0, 0, time.UTC),
		MonthsWithTaxpayer: 12,
		HasSSN:             true,
	}}
	fed := federal.ComputeFederal(tp)
	require.Positive(t, fed.Credits.EITC.RefundableAmount)

	entry := states.Lookup("IL")
	require.NotNil(t, entry)
	result := entry.Calculate(&types.StateTaxInput{Federal: fed, Taxpayer: tp, StateCode: "IL"})

	// Illinois pays 20% of the federal credit.
	assert.Equal(t, int64(81_287), result.Credits.EITC)
	assert.Equal(t, result.Credits.EITC, result.TotalPayments, "refundable credit rides on payments")
}

func TestCaliforniaExemptionIsACredit(t *testing.T) {
	entry := states.Lookup("CA")
	require.NotNil(t, entry)

	result := entry.Calculate(stateInput(t, "CA", 6_000_000))

	assert.Equal(t, int64(0), result.Exemptions, "exemption does not reduce income")
	assert.Equal(t, int64(14_900), result.Credits.ExemptionCredit)
	assert.Equal(t, int64(5_446_000), result.StateTaxableIncome)
}

func TestMarriedSeparateBracketsAreHalved(t *testing.T) {
	entry := states.Lookup("MN")
	require.NotNil(t, entry)

	tp := taxpayer(6_000_000)
	tp.FilingStatus = types.MarriedSeparate
	fed := federal.ComputeFederal(tp)
	mfs := entry.Calculate(&types.StateTaxInput{Federal: fed, Taxpayer: tp, StateCode: "MN"})

	single := entry.Calculate(stateInput(t, "MN", 6_000_000))

	// Half the joint widths push more income into higher brackets.
	assert.Greater(t, mfs.StateTax, single.StateTax)
}

func TestStateResultEchoesFederalIdentity(t *testing.T) {
	entry := states.Lookup("OR")
	require.NotNil(t, entry)

	result := entry.Calculate(stateInput(t, "OR", 6_000_000))
	assert.Equal(t, "OR", result.StateCode)
	assert.Equal(t, 2025, result.TaxYear)
	assert.Equal(t, types.Single, result.FilingStatus)
}
