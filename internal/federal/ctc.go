package federal

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// computeCTC evaluates the Child Tax Credit and its refundable Additional
// CTC portion. Pure function of the inputs; eligibility outcomes are
// recorded per child, never raised as errors.
func computeCTC(input *types.TaxpayerInput, agi, taxBeforeCredits, earnedIncome int64) types.CreditResult {
	var result types.CreditResult

	eligible := 0
	for i, child := range input.QualifyingChildren {
		subject := child.Name
		if subject == "" {
			subject = fmt.Sprintf("child %d", i+1)
		}
		detail := types.EligibilityDetail{Subject: subject, Eligible: true}

		age := child.AgeAtYearEnd(taxYear)
		switch {
		case age > ctcMaxChildAge:
			detail.Eligible = false
			detail.IneligibilityReason = fmt.Sprintf("age %d exceeds the under-17 limit", age)
		case child.MonthsWithTaxpayer < 6:
			detail.Eligible = false
			detail.IneligibilityReason = "lived with taxpayer fewer than 6 months"
		case child.ProvidedOwnSupport:
			detail.Eligible = false
			detail.IneligibilityReason = "child provided more than half of own support"
		case !child.HasSSN:
			detail.Eligible = false
			detail.IneligibilityReason = "child has no SSN"
		}

		if detail.Eligible {
			eligible++
		}
		result.Details = append(result.Details, detail)
	}

	if eligible == 0 {
		return result
	}

	base := ctcPerChild * int64(eligible)
	phased := taxmath.ReduceByExcess(base, agi, ctcPhaseOutThreshold(input.FilingStatus),
		ctcPhaseOutStep, ctcPhaseOutPerStep)

	// Nonrefundable portion is limited by tax before credits.
	nonrefundable := money.Min(phased, taxBeforeCredits)

	// Additional CTC: 15% of earned income over $2,500, capped at the
	// statutory per-child refundable limit and at the credit left unused by
	// the nonrefundable portion. No refundable credit below the earned
	// income floor.
	var refundable int64
	if earnedIncome > ctcEarnedIncomeFloor {
		refundable = money.MulRate(earnedIncome-ctcEarnedIncomeFloor, ctcRefundableRate)
		refundable = money.Min(refundable, ctcRefundableCap*int64(eligible))
		refundable = money.Min(refundable, phased-nonrefundable)
	}

	result.Amount = nonrefundable
	result.RefundableAmount = refundable
	return result
}
