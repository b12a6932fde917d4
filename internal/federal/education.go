package federal

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// educationCredits evaluates the AOTC and the LLC.
//
// Policy: the two credits cannot both apply to one student's expenses. This
// engine prefers the AOTC globally - if any student qualifies for it, the
// AOTC is claimed for every qualifying student and the LLC is suppressed
// entirely for the return. That is a deliberate simplification of the IRS
// per-student election (documented in DESIGN.md), not incidental ordering.
func educationCredits(input *types.TaxpayerInput, agi int64) (aotc, llc types.CreditResult, llcSuppressed bool) {
	if len(input.EducationExpenses) == 0 {
		return aotc, llc, false
	}

	// MFS may claim neither education credit.
	if input.FilingStatus == types.MarriedSeparate {
		detail := types.EligibilityDetail{
			Subject:             "taxpayer",
			IneligibilityReason: "married filing separately may not claim education credits",
		}
		aotc.Details = append(aotc.Details, detail)
		llc.Details = append(llc.Details, detail)
		return aotc, llc, false
	}

	phaseOutStart, phaseOutEnd := educationPhaseOut(input.FilingStatus)

	var aotcTotal int64
	anyAOTC := false
	for i, exp := range input.EducationExpenses {
		subject := exp.StudentName
		if subject == "" {
			subject = fmt.Sprintf("student %d", i+1)
		}
		detail := types.EligibilityDetail{Subject: subject, Eligible: true}

		switch {
		case !exp.IsAccreditedSchool:
			detail.Eligible = false
			detail.IneligibilityReason = "institution is not accredited"
		case !exp.IsAtLeastHalfTime:
			detail.Eligible = false
			detail.IneligibilityReason = "student not enrolled at least half-time"
		case exp.YearsOfPostSecondary > aotcMaxPriorYears:
			detail.Eligible = false
			detail.IneligibilityReason = "more than 4 years of post-secondary education completed"
		case exp.PriorAOTCClaims >= aotcMaxPriorYears:
			detail.Eligible = false
			detail.IneligibilityReason = "AOTC already claimed 4 times for this student"
		case exp.HasFelonyDrugConviction:
			detail.Eligible = false
			detail.IneligibilityReason = "felony drug conviction disqualifies the student"
		}
		aotc.Details = append(aotc.Details, detail)

		if !detail.Eligible {
			continue
		}
		anyAOTC = true

		// 100% of the first $2,000 plus 25% of the next $2,000, per student.
		tier1 := money.Min(exp.QualifiedExpenses, aotcTier1Cap)
		tier2 := money.MulRate(money.Min(money.SubFloor(exp.QualifiedExpenses, aotcTier1Cap), aotcTier2Cap), aotcTier2Rate)
		aotcTotal += money.Min(tier1+tier2, aotcMaxPerStudent)
	}

	if anyAOTC {
		phased := taxmath.ApplyRemainingFraction(aotcTotal, agi, phaseOutStart, phaseOutEnd)
		// 40% of the allowed AOTC is refundable.
		refundable := money.MulRate(phased, aotcRefundableRate)
		aotc.Amount = phased - refundable
		aotc.RefundableAmount = refundable
		return aotc, llc, true
	}

	// LLC aggregates expenses across all students at a flat 20% up to a
	// combined expense ceiling. Only the accreditation test applies; the
	// LLC has no half-time or 4-year requirements.
	var combined int64
	for _, exp := range input.EducationExpenses {
		if exp.IsAccreditedSchool {
			combined += exp.QualifiedExpenses
		}
	}
	combined = money.Min(combined, llcExpenseCap)
	if combined == 0 {
		return aotc, llc, false
	}

	llcAmount := money.MulRate(combined, llcRate)
	llc.Amount = taxmath.ApplyRemainingFraction(llcAmount, agi, phaseOutStart, phaseOutEnd)
	return aotc, llc, false
}
