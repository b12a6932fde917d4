// Package federal implements the 2025 federal income-tax computation
// pipeline. Every function here is pure: results depend only on the input
// record, never on call order, and the rule tables below are read-only after
// package initialization.
package federal

import (
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// All amounts in this file are integer cents keyed to tax year 2025
// (Rev. Proc. 2024-40 inflation adjustments).
const taxYear = 2025

// ordinaryBrackets holds the regular rate schedules per filing status.
var ordinaryBrackets = map[types.FilingStatus][]taxmath.Bracket{
	types.Single: taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 1_192_500, Rate: 0.10},
		{Max: 4_847_500, Rate: 0.12},
		{Max: 10_335_000, Rate: 0.22},
		{Max: 19_730_000, Rate: 0.24},
		{Max: 25_052_500, Rate: 0.32},
		{Max: 62_635_000, Rate: 0.35},
		{Max: 0, Rate: 0.37},
	}),
	types.MarriedJointly: taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 2_385_000, Rate: 0.10},
		{Max: 9_695_000, Rate: 0.12},
		{Max: 20_670_000, Rate: 0.22},
		{Max: 39_460_000, Rate: 0.24},
		{Max: 50_105_000, Rate: 0.32},
		{Max: 75_160_000, Rate: 0.35},
		{Max: 0, Rate: 0.37},
	}),
	types.MarriedSeparate: taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 1_192_500, Rate: 0.10},
		{Max: 4_847_500, Rate: 0.12},
		{Max: 10_335_000, Rate: 0.22},
		{Max: 19_730_000, Rate: 0.24},
		{Max: 25_052_500, Rate: 0.32},
		{Max: 37_580_000, Rate: 0.35},
		{Max: 0, Rate: 0.37},
	}),
	types.HeadOfHousehold: taxmath.ConvertToFullBrackets([]taxmath.RateRow{
		{Max: 1_700_000, Rate: 0.10},
		{Max: 6_485_000, Rate: 0.12},
		{Max: 10_335_000, Rate: 0.22},
		{Max: 19_730_000, Rate: 0.24},
		{Max: 25_052_500, Rate: 0.32},
		{Max: 62_635_000, Rate: 0.35},
		{Max: 0, Rate: 0.37},
	}),
}

// standardDeduction is the base standard deduction per filing status.
var standardDeduction = map[types.FilingStatus]int64{
	types.Single:          1_500_000,
	types.MarriedJointly:  3_000_000,
	types.MarriedSeparate: 1_500_000,
	types.HeadOfHousehold: 2_250_000,
}

// ageBlindAddOn is the extra standard deduction per age-65/blindness box.
func ageBlindAddOn(status types.FilingStatus) int64 {
	if status == types.MarriedJointly || status == types.MarriedSeparate {
		return 160_000
	}
	return 200_000
}

// ltcgBreakpoints are the taxable-income ceilings of the 0% and 15%
// preferential-rate brackets.
type ltcgBreakpoints struct {
	ZeroRateMax    int64
	FifteenRateMax int64
}

var ltcgTable = map[types.FilingStatus]ltcgBreakpoints{
	types.Single:          {ZeroRateMax: 4_835_000, FifteenRateMax: 53_340_000},
	types.MarriedJointly:  {ZeroRateMax: 9_670_000, FifteenRateMax: 60_005_000},
	types.MarriedSeparate: {ZeroRateMax: 4_835_000, FifteenRateMax: 30_000_000},
	types.HeadOfHousehold: {ZeroRateMax: 6_475_000, FifteenRateMax: 56_670_000},
}

// Schedule A limits.
const (
	saltCap            int64 = 1_000_000
	saltCapMFS         int64 = 500_000
	medicalAGIFloor          = 0.075
	capitalLossCap     int64 = 300_000
	capitalLossCapMFS  int64 = 150_000
	studentLoanIntCap  int64 = 250_000
	educatorExpenseCap int64 = 30_000
)

// Child Tax Credit.
const (
	ctcPerChild          int64 = 200_000
	ctcRefundableCap     int64 = 170_000
	ctcPhaseOutStep      int64 = 100_000
	ctcPhaseOutPerStep   int64 = 5_000
	ctcEarnedIncomeFloor int64 = 250_000
	ctcRefundableRate          = 0.15
	ctcMaxChildAge             = 16
)

func ctcPhaseOutThreshold(status types.FilingStatus) int64 {
	if status == types.MarriedJointly {
		return 40_000_000
	}
	return 20_000_000
}

// eitcRow is one row of the EITC parameter table, indexed by number of
// qualifying children (capped at 3).
type eitcRow struct {
	PhaseInRate      float64
	EarnedAmount     int64 // income at which the credit reaches its maximum
	MaxCredit        int64
	PhaseOutRate     float64
	PhaseOutStart    int64 // single / HOH
	PhaseOutStartMFJ int64
}

var eitcTable = [4]eitcRow{
	{PhaseInRate: 0.0765, EarnedAmount: 849_000, MaxCredit: 64_900, PhaseOutRate: 0.0765, PhaseOutStart: 1_062_000, PhaseOutStartMFJ: 1_773_000},
	{PhaseInRate: 0.34, EarnedAmount: 1_273_000, MaxCredit: 432_800, PhaseOutRate: 0.1598, PhaseOutStart: 2_335_000, PhaseOutStartMFJ: 3_047_000},
	{PhaseInRate: 0.40, EarnedAmount: 1_788_000, MaxCredit: 715_200, PhaseOutRate: 0.2106, PhaseOutStart: 2_335_000, PhaseOutStartMFJ: 3_047_000},
	{PhaseInRate: 0.45, EarnedAmount: 1_788_000, MaxCredit: 804_600, PhaseOutRate: 0.2106, PhaseOutStart: 2_335_000, PhaseOutStartMFJ: 3_047_000},
}

const (
	eitcInvestmentIncomeCap int64 = 1_195_000
	eitcChildlessMinAge           = 25
	eitcChildlessMaxAge           = 64
	eitcChildMaxAge               = 18
	eitcStudentMaxAge             = 23
	eitcMinResidencyMonths        = 7
)

// Education credits.
const (
	aotcTier1Cap      int64 = 200_000
	aotcTier2Cap      int64 = 200_000
	aotcTier2Rate           = 0.25
	aotcMaxPerStudent int64 = 250_000
	aotcRefundableRate      = 0.40
	aotcMaxPriorYears       = 4

	llcRate       = 0.20
	llcExpenseCap int64 = 1_000_000
)

func educationPhaseOut(status types.FilingStatus) (start, end int64) {
	if status == types.MarriedJointly {
		return 16_000_000, 18_000_000
	}
	return 8_000_000, 9_000_000
}

// Adoption credit.
const (
	adoptionMaxPerChild         int64 = 1_728_000
	adoptionRefundablePerReturn int64 = 500_000
	adoptionPhaseOutStart       int64 = 25_919_000
	adoptionPhaseOutEnd         int64 = 29_919_000
)

// AMT.
const (
	amtLowRate               = 0.26
	amtHighRate              = 0.28
	amtExemptionPhaseOutRate = 0.25
)

type amtParams struct {
	Exemption         int64
	PhaseOutStart     int64
	HighRateThreshold int64
}

var amtTable = map[types.FilingStatus]amtParams{
	types.Single:          {Exemption: 8_810_000, PhaseOutStart: 62_635_000, HighRateThreshold: 23_910_000},
	types.MarriedJointly:  {Exemption: 13_700_000, PhaseOutStart: 125_270_000, HighRateThreshold: 23_910_000},
	types.MarriedSeparate: {Exemption: 6_850_000, PhaseOutStart: 62_635_000, HighRateThreshold: 11_955_000},
	types.HeadOfHousehold: {Exemption: 8_810_000, PhaseOutStart: 62_635_000, HighRateThreshold: 23_910_000},
}

// QBI.
const (
	qbiRate            = 0.20
	qbiW2WageLimitRate = 0.50
	qbiAltWageRate     = 0.25
	qbiUBIARate        = 0.025
)

func qbiThresholds(status types.FilingStatus) (lower, upper int64) {
	if status == types.MarriedJointly {
		return 39_460_000, 49_460_000
	}
	return 19_730_000, 24_730_000
}

// Self-employment tax and surtaxes.
const (
	seNetEarningsFactor        = 0.9235
	seSocialSecurityRate       = 0.124
	seMedicareRate             = 0.029
	seWageBase           int64 = 17_610_000

	niitRate           = 0.038
	medicareSurtaxRate = 0.009
)

func niitThreshold(status types.FilingStatus) int64 {
	switch status {
	case types.MarriedJointly:
		return 25_000_000
	case types.MarriedSeparate:
		return 12_500_000
	default:
		return 20_000_000
	}
}

func medicareSurtaxThreshold(status types.FilingStatus) int64 {
	// Same statutory thresholds as the NIIT.
	return niitThreshold(status)
}
