package federal

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// eitcQualifyingChildren counts children under the EITC's stricter tests:
// under 19 at year end, under 24 if a full-time student, any age if
// permanently disabled; residency more than half the year.
func eitcQualifyingChildren(input *types.TaxpayerInput, details *[]types.EligibilityDetail) int {
	count := 0
	for i, child := range input.QualifyingChildren {
		subject := child.Name
		if subject == "" {
			subject = fmt.Sprintf("child %d", i+1)
		}
		detail := types.EligibilityDetail{Subject: subject, Eligible: true}

		age := child.AgeAtYearEnd(taxYear)
		ageOK := age <= eitcChildMaxAge ||
			(child.IsStudent && age <= eitcStudentMaxAge) ||
			child.IsDisabled

		switch {
		case !ageOK:
			detail.Eligible = false
			detail.IneligibilityReason = fmt.Sprintf("age %d fails the EITC age/student/disability test", age)
		case child.MonthsWithTaxpayer < eitcMinResidencyMonths:
			detail.Eligible = false
			detail.IneligibilityReason = "did not live with taxpayer more than half the year"
		case !child.HasSSN:
			detail.Eligible = false
			detail.IneligibilityReason = "child has no SSN"
		}

		if detail.Eligible {
			count++
		}
		*details = append(*details, detail)
	}
	return count
}

// computeEITC evaluates the Earned Income Tax Credit. The credit is fully
// refundable; Amount is always zero and RefundableAmount carries the value.
func computeEITC(input *types.TaxpayerInput, agi, earnedIncome, investmentIncome int64) types.CreditResult {
	var result types.CreditResult

	if input.FilingStatus == types.MarriedSeparate {
		result.Details = append(result.Details, types.EligibilityDetail{
			Subject:             "taxpayer",
			IneligibilityReason: "married filing separately is not eligible for the EITC",
		})
		return result
	}

	if investmentIncome > eitcInvestmentIncomeCap {
		result.Details = append(result.Details, types.EligibilityDetail{
			Subject: "taxpayer",
			IneligibilityReason: fmt.Sprintf("investment income %s exceeds the %s limit",
				money.FormatDollars(investmentIncome), money.FormatDollars(eitcInvestmentIncomeCap)),
		})
		return result
	}

	children := eitcQualifyingChildren(input, &result.Details)
	if children > 3 {
		// The table tops out at three children.
		children = 3
	}

	// Childless claimants (and MFJ spouses) must satisfy the 25-64 age test.
	if children == 0 {
		if !ageInRange(input.Primary, eitcChildlessMinAge, eitcChildlessMaxAge) {
			result.Details = append(result.Details, types.EligibilityDetail{
				Subject:             "taxpayer",
				IneligibilityReason: "childless EITC requires taxpayer age 25-64",
			})
			return result
		}
		if input.FilingStatus == types.MarriedJointly && input.Spouse != nil &&
			!ageInRange(*input.Spouse, eitcChildlessMinAge, eitcChildlessMaxAge) {
			result.Details = append(result.Details, types.EligibilityDetail{
				Subject:             "spouse",
				IneligibilityReason: "childless EITC requires spouse age 25-64",
			})
			return result
		}
	}

	if earnedIncome <= 0 {
		result.Details = append(result.Details, types.EligibilityDetail{
			Subject:             "taxpayer",
			IneligibilityReason: "no earned income",
		})
		return result
	}

	row := eitcTable[children]
	phaseOutStart := row.PhaseOutStart
	if input.FilingStatus == types.MarriedJointly {
		phaseOutStart = row.PhaseOutStartMFJ
	}

	// Phase-in on earned income, capped at the maximum credit.
	credit := money.Min(money.MulRate(earnedIncome, row.PhaseInRate), row.MaxCredit)

	// Phase-out uses the higher of AGI and earned income, so the reduction
	// is the larger of the two computed from each figure.
	phaseOutIncome := money.Max(agi, earnedIncome)
	if phaseOutIncome > phaseOutStart {
		reduction := money.MulRate(phaseOutIncome-phaseOutStart, row.PhaseOutRate)
		credit = money.SubFloor(row.MaxCredit, reduction)
		if credit == 0 {
			result.Details = append(result.Details, types.EligibilityDetail{
				Subject:             "taxpayer",
				IneligibilityReason: "income fully phases out the credit",
			})
			return result
		}
		// Inside the phase-out region the credit can never exceed the
		// phase-in value.
		credit = money.Min(credit, money.MulRate(earnedIncome, row.PhaseInRate))
		credit = money.Min(credit, row.MaxCredit)
	}

	result.RefundableAmount = credit
	return result
}

func ageInRange(p types.PersonFacts, min, max int) bool {
	age := p.Age(taxYear)
	return age >= min && age <= max
}
