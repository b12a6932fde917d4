package federal

import (
	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// computeAMT runs the parallel minimum-tax system.
//
// AMTI starts from regular taxable income and adds back the standard
// deduction (when used), the SALT deduction (when itemized), and preference
// items (private-activity-bond interest, ISO exercise spread). The exemption
// phases out at 25 cents per dollar of AMTI over the threshold. Tentative
// minimum tax is 26% up to the rate threshold and 28% above; AMT owed is
// the excess of TMT over regular tax, reduced by any usable prior-year
// minimum-tax credit.
func computeAMT(input *types.TaxpayerInput, taxableIncome, regularTax, saltDeducted, standardUsed int64) types.AmtDetails {
	params := amtTable[input.FilingStatus]

	amti := taxableIncome + standardUsed + saltDeducted +
		input.Income.PrivateActivityBondInterest + input.Income.ISOExerciseSpread

	// Exemption phase-out: fully eliminated once AMTI reaches
	// phaseOutStart + exemption/rate.
	exemption := params.Exemption
	if amti > params.PhaseOutStart {
		reduction := money.MulRate(amti-params.PhaseOutStart, amtExemptionPhaseOutRate)
		exemption = money.SubFloor(exemption, reduction)
	}

	base := money.SubFloor(amti, exemption)

	var tmt int64
	if base <= params.HighRateThreshold {
		tmt = money.MulRate(base, amtLowRate)
	} else {
		tmt = money.MulRate(params.HighRateThreshold, amtLowRate) +
			money.MulRate(base-params.HighRateThreshold, amtHighRate)
	}

	owed := money.SubFloor(tmt, regularTax)

	creditUsed := int64(0)
	if owed > 0 && input.Payments.PriorYearMinTaxCredit > 0 {
		creditUsed = money.Min(owed, input.Payments.PriorYearMinTaxCredit)
		owed -= creditUsed
	}

	return types.AmtDetails{
		AMTI:                amti,
		Exemption:           exemption,
		TentativeMinimumTax: tmt,
		RegularTaxForAMT:    regularTax,
		AMTOwed:             owed,
		MinTaxCreditUsed:    creditUsed,
	}
}
