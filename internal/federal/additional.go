package federal

import (
	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// computeSETax computes self-employment tax on net self-employment income
// (Schedule C net plus K-1 ordinary income subject to SE tax). Social
// Security applies at 12.4% on the portion of net earnings under the wage
// base not already covered by W-2 wages; Medicare applies at 2.9% with no
// cap. Returns the tax and the half that is deductible above the line.
func computeSETax(input *types.TaxpayerInput) (seTax, halfDeduction int64) {
	netSE := input.Income.ScheduleCNet + input.Income.K1OrdinaryIncome
	if netSE <= 0 {
		return 0, 0
	}

	base := money.MulRate(netSE, seNetEarningsFactor)

	ssRoom := money.SubFloor(seWageBase, input.Income.Wages)
	ssBase := money.Min(base, ssRoom)

	seTax = money.MulRate(ssBase, seSocialSecurityRate) + money.MulRate(base, seMedicareRate)
	halfDeduction = seTax / 2
	return seTax, halfDeduction
}

// computeNIIT computes net investment income tax: 3.8% of the lesser of net
// investment income or the AGI excess over the filing-status threshold.
func computeNIIT(input *types.TaxpayerInput, agi, netCapitalGains int64) int64 {
	investment := input.Income.Interest + input.Income.OrdinaryDividends +
		input.Income.QualifiedDividends + input.Income.K1PassiveIncome +
		input.Income.REITPTPDividends + money.Max(0, netCapitalGains)

	excess := money.SubFloor(agi, niitThreshold(input.FilingStatus))
	if excess == 0 || investment <= 0 {
		return 0
	}
	return money.MulRate(money.Min(investment, excess), niitRate)
}

// computeMedicareSurtax computes the Additional Medicare Tax: 0.9% of
// Medicare wages and self-employment earnings over the threshold.
func computeMedicareSurtax(input *types.TaxpayerInput) int64 {
	earnings := input.Income.Wages
	if netSE := input.Income.ScheduleCNet + input.Income.K1OrdinaryIncome; netSE > 0 {
		earnings += money.MulRate(netSE, seNetEarningsFactor)
	}

	excess := money.SubFloor(earnings, medicareSurtaxThreshold(input.FilingStatus))
	if excess == 0 {
		return 0
	}
	return money.MulRate(excess, medicareSurtaxRate)
}
