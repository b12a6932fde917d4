package federal

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// computeAdoption evaluates the adoption credit.
//
// Per-child rules: special-needs adoptions receive the full statutory
// maximum regardless of expenses; foreign adoptions count expenses only once
// finalized; domestic adoptions may count expenses while still pending.
// Employer assistance reduces eligible expenses, and credits claimed in
// prior years reduce the remaining per-child lifetime cap.
//
// A fixed amount is refundable per return - not per child - regardless of
// tax liability; the remainder is nonrefundable.
func computeAdoption(input *types.TaxpayerInput, agi int64) types.CreditResult {
	var result types.CreditResult
	if len(input.AdoptionExpenses) == 0 {
		return result
	}

	var total int64
	for i, exp := range input.AdoptionExpenses {
		subject := exp.ChildName
		if subject == "" {
			subject = fmt.Sprintf("child %d", i+1)
		}
		detail := types.EligibilityDetail{Subject: subject, Eligible: true}

		remainingCap := money.SubFloor(adoptionMaxPerChild, exp.PriorYearCredits)
		if remainingCap == 0 {
			detail.Eligible = false
			detail.IneligibilityReason = "lifetime maximum already claimed for this child"
			result.Details = append(result.Details, detail)
			continue
		}

		var credit int64
		if exp.IsSpecialNeeds {
			// Full remaining maximum regardless of actual expenses.
			credit = remainingCap
		} else {
			if exp.IsForeign && !exp.IsFinalized {
				detail.Eligible = false
				detail.IneligibilityReason = "foreign adoption not yet finalized"
				result.Details = append(result.Details, detail)
				continue
			}
			eligible := money.SubFloor(exp.QualifiedExpenses, exp.EmployerAssistance)
			credit = money.Min(eligible, remainingCap)
		}

		if credit == 0 {
			detail.Eligible = false
			detail.IneligibilityReason = "no eligible expenses"
		}
		total += credit
		result.Details = append(result.Details, detail)
	}

	if total == 0 {
		return result
	}

	// MAGI ratio phase-out applies to the combined credit.
	total = taxmath.ApplyRemainingFraction(total, agi, adoptionPhaseOutStart, adoptionPhaseOutEnd)
	if total == 0 {
		return result
	}

	refundable := money.Min(total, adoptionRefundablePerReturn)
	result.RefundableAmount = refundable
	result.Amount = total - refundable
	return result
}
