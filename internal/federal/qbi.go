package federal

import (
	"math"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// computeQBI evaluates the qualified-business-income deduction.
//
// Per trade/business: tentative deduction is 20% of QBI. Below the lower
// taxable-income threshold it applies as-is. Above the upper threshold the
// W-2 wage/UBIA limitation fully applies (greater of 50% of W-2 wages or
// 25% of wages + 2.5% of UBIA) and SSTBs lose eligibility entirely. Between
// the thresholds both the SSTB applicable percentage and the wage limit
// phase in linearly.
//
// The REIT/PTP component is 20% of qualifying dividends with no wage or
// SSTB limitation. A final overall cap limits the whole deduction to 20% of
// taxable income less net capital gains.
func computeQBI(input *types.TaxpayerInput, taxableBeforeQBI, netCapitalGains int64) types.QbiDetails {
	details := types.QbiDetails{ApplicablePercent: 1.0}
	if len(input.Businesses) == 0 && input.Income.REITPTPDividends == 0 {
		return details
	}

	lower, upper := qbiThresholds(input.FilingStatus)
	// Fraction of the phase-in range consumed; 0 below lower, 1 above upper.
	phaseInPct := 1.0 - taxmath.RemainingFraction(boundedIncome(taxableBeforeQBI, lower, upper), lower, upper)

	var component int64
	for _, biz := range input.Businesses {
		if biz.QualifiedIncome <= 0 {
			continue
		}

		applicable := 1.0
		if biz.IsSSTB {
			if taxableBeforeQBI >= upper {
				// SSTBs are fully excluded above the upper threshold.
				details.ApplicablePercent = 0
				continue
			}
			applicable = taxmath.RemainingFraction(taxableBeforeQBI, lower, upper)
			details.ApplicablePercent = applicable
		}

		qbi := money.MulRate(biz.QualifiedIncome, applicable)
		wages := money.MulRate(biz.W2Wages, applicable)
		ubia := money.MulRate(biz.UBIA, applicable)

		tentative := money.MulRate(qbi, qbiRate)
		if taxableBeforeQBI <= lower {
			component += tentative
			continue
		}

		wageLimit := money.Max(
			money.MulRate(wages, qbiW2WageLimitRate),
			money.MulRate(wages, qbiAltWageRate)+money.MulRate(ubia, qbiUBIARate),
		)

		if tentative <= wageLimit {
			component += tentative
			continue
		}

		details.WageLimited = true
		if taxableBeforeQBI >= upper {
			component += wageLimit
		} else {
			// Phase the excess reduction in across the threshold range.
			excess := tentative - wageLimit
			reduction := int64(math.Floor(float64(excess)*phaseInPct + 0.5))
			component += tentative - reduction
		}
	}

	details.TentativeDeduction = component

	if input.Income.REITPTPDividends > 0 {
		details.REITPTPComponent = money.MulRate(input.Income.REITPTPDividends, qbiRate)
	}

	// Overall limitation: 20% of (taxable income - net capital gains).
	details.OverallLimit = money.MulRate(money.SubFloor(taxableBeforeQBI, netCapitalGains), qbiRate)
	details.FinalDeduction = money.Min(component+details.REITPTPComponent, details.OverallLimit)
	return details
}

func boundedIncome(income, lower, upper int64) int64 {
	if income < lower {
		return lower
	}
	if income > upper {
		return upper
	}
	return income
}
