package federal

import (
	"github.com/ustaxcalc/ustax-api/internal/diag"
	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// ComputeFederal runs the full 2025 federal pipeline over one taxpayer
// record and returns a fully itemized result. It never returns an error:
// malformed business data becomes diagnostics on the result, and identical
// input always produces identical output.
//
// The stages run strictly in order - AGI, deduction choice, taxable income,
// tax before credits, credits, additional taxes, totals - and no stage reads
// a later stage's output.
func ComputeFederal(input *types.TaxpayerInput) *types.FederalResult {
	result := &types.FederalResult{
		TaxYear:      taxYear,
		FilingStatus: input.FilingStatus,
	}
	d := &result.Diagnostics

	if !input.FilingStatus.Valid() {
		// Default rather than abort; the caller still gets a full result.
		result.FilingStatus = types.Single
		input = withFilingStatus(input, types.Single)
		d.AddWarning(diag.InputBadFilingStatus, diag.PhaseInputValidation, "filing_status",
			"unknown filing status, defaulting to single")
	}
	if input.Primary.BirthDate.IsZero() {
		d.AddWarning(diag.InputMissingBirthDay, diag.PhaseInputValidation, "primary.birth_date",
			"primary taxpayer birth date missing; age-based rules assume under 65")
	}

	// --- Self-employment tax (needed before AGI for the half-SE deduction).
	seTax, halfSE := computeSETax(input)

	// --- Capital gain netting with the statutory loss cap.
	netCapital := input.Income.ShortTermCapitalGains + input.Income.LongTermCapitalGains
	lossCap := capitalLossCap
	if input.FilingStatus == types.MarriedSeparate {
		lossCap = capitalLossCapMFS
	}
	if netCapital < -lossCap {
		d.AddWarning(diag.CalcCapitalLossCapped, diag.PhaseAGI, "",
			"net capital loss limited to %s; the remainder carries forward",
			money.FormatDollars(lossCap))
		netCapital = -lossCap
	}

	// --- Stage 1: AGI.
	totalIncome := input.Income.Wages + input.Income.Interest +
		input.Income.OrdinaryDividends + input.Income.QualifiedDividends +
		netCapital + input.Income.ScheduleCNet +
		input.Income.K1OrdinaryIncome + input.Income.K1PassiveIncome +
		input.Income.REITPTPDividends + input.Income.Other
	result.TotalIncome = totalIncome

	adjustments := money.Min(input.Adjustments.StudentLoanInterest, studentLoanIntCap) +
		input.Adjustments.HSAContributions +
		input.Adjustments.IRAContributions +
		money.Min(input.Adjustments.EducatorExpenses, educatorExpenseCap) +
		input.Adjustments.EarlyWithdrawalPenalty +
		input.Adjustments.SelfEmployedRetirement +
		input.Adjustments.SelfEmployedHealthIns +
		halfSE
	if input.Adjustments.AlimonyPaid > 0 && input.Adjustments.AlimonyPre2019Decree {
		// Alimony is deductible only for divorce decrees executed before 2019.
		adjustments += input.Adjustments.AlimonyPaid
	}

	agi := totalIncome - adjustments
	if agi < 0 {
		d.AddWarning(diag.CalcNegativeAGI, diag.PhaseAGI, "",
			"adjustments exceed total income; AGI floored at zero")
		agi = 0
	}
	result.AGI = agi

	// --- Stage 2: deduction choice.
	standard := computeStandardDeduction(input)
	itemized, saltDeducted := computeItemizedDeduction(input, agi, d)

	useItemized := itemized > standard
	if input.ForceItemize && !useItemized {
		d.AddWarning(diag.CalcItemizedForced, diag.PhaseDeductions, "",
			"itemizing %s despite larger standard deduction %s (spouse itemizes)",
			money.FormatDollars(itemized), money.FormatDollars(standard))
		useItemized = true
	}
	deduction := standard
	if useItemized {
		deduction = itemized
	}
	result.DeductionUsed = deduction
	result.UsedItemized = useItemized

	// --- QBI (needs taxable income before the QBI deduction itself).
	taxableBeforeQBI := money.SubFloor(agi, deduction)
	// "Net capital gain" for the QBI overall limit includes qualified
	// dividends.
	netCapGainForQBI := money.Max(0, netCapital) + input.Income.QualifiedDividends
	qbi := computeQBI(input, taxableBeforeQBI, netCapGainForQBI)
	if qbi.FinalDeduction > 0 || len(input.Businesses) > 0 {
		result.QbiDetails = &qbi
		result.QBIDeduction = qbi.FinalDeduction
		if qbi.WageLimited {
			d.AddWarning(diag.CalcQBILimited, diag.PhaseQBI, "",
				"QBI deduction limited by the W-2 wage/UBIA test")
		}
		if qbi.ApplicablePercent == 0 {
			d.AddWarning(diag.CalcSSTBPhasedOut, diag.PhaseQBI, "",
				"specified service business excluded from QBI above the income threshold")
		}
	}

	// --- Stage 3: taxable income.
	taxable := money.SubFloor(taxableBeforeQBI, result.QBIDeduction)
	result.TaxableIncome = taxable

	// --- Stage 4: tax before credits.
	// Preferential income (qualified dividends plus net long-term gains
	// surviving the netting) is taxed on its own rate stack, not blended
	// into the ordinary brackets.
	preferential := input.Income.QualifiedDividends + preferentialGains(input, netCapital)
	preferential = money.Min(preferential, taxable)
	ordinaryTaxable := taxable - preferential

	result.OrdinaryTax = taxmath.TaxFromBrackets(ordinaryTaxable, ordinaryBrackets[result.FilingStatus])
	result.PreferentialTax = preferentialTax(result.FilingStatus, taxable, ordinaryTaxable, preferential)
	result.TaxBeforeCredits = result.OrdinaryTax + result.PreferentialTax

	// --- Stage 5: credits.
	result.EarnedIncome = earnedIncome(input, halfSE)
	investmentIncome := input.Income.Interest + input.Income.OrdinaryDividends +
		input.Income.QualifiedDividends + money.Max(0, netCapital)

	result.Credits.CTC = computeCTC(input, agi, result.TaxBeforeCredits, result.EarnedIncome)
	result.Credits.EITC = computeEITC(input, agi, result.EarnedIncome, investmentIncome)
	if investmentIncome > eitcInvestmentIncomeCap && len(input.QualifyingChildren) > 0 {
		d.AddWarning(diag.CreditEITCInvestmentCap, diag.PhaseCredits, "",
			"EITC denied: investment income exceeds %s", money.FormatDollars(eitcInvestmentIncomeCap))
	}

	aotc, llc, llcSuppressed := educationCredits(input, agi)
	result.Credits.AOTC = aotc
	result.Credits.LLC = llc
	if llcSuppressed {
		d.AddWarning(diag.CreditAOTCPreferred, diag.PhaseCredits, "",
			"AOTC claimed; Lifetime Learning Credit suppressed for all students")
	}

	result.Credits.Adoption = computeAdoption(input, agi)

	nonrefundable := result.Credits.CTC.Amount + result.Credits.AOTC.Amount +
		result.Credits.LLC.Amount + result.Credits.Adoption.Amount
	refundable := result.Credits.CTC.RefundableAmount + result.Credits.EITC.RefundableAmount +
		result.Credits.AOTC.RefundableAmount + result.Credits.Adoption.RefundableAmount
	result.Credits.TotalNonrefundable = nonrefundable
	result.Credits.TotalRefundable = refundable

	if nonrefundable > result.TaxBeforeCredits && result.Credits.Adoption.Amount > 0 {
		d.AddWarning(diag.CreditAdoptionCarryover, diag.PhaseCredits, "",
			"nonrefundable credits exceed tax; unused adoption credit carries forward")
	}

	// --- Stage 6: additional taxes, computed against the regular figures.
	saltForAMT := int64(0)
	standardForAMT := int64(0)
	if useItemized {
		saltForAMT = saltDeducted
	} else {
		standardForAMT = deduction
	}
	amt := computeAMT(input, taxable, result.TaxBeforeCredits, saltForAMT, standardForAMT)
	result.AmtDetails = &amt
	if amt.AMTOwed > 0 {
		d.AddWarning(diag.CalcAMTApplies, diag.PhaseAdditionalTaxes, "",
			"alternative minimum tax of %s applies", money.FormatDollars(amt.AMTOwed))
	}

	result.AdditionalTaxes = types.AdditionalTaxes{
		SelfEmploymentTax: seTax,
		NIIT:              computeNIIT(input, agi, netCapital),
		MedicareSurtax:    computeMedicareSurtax(input),
		AMT:               amt.AMTOwed,
	}
	result.AdditionalTaxes.Total = result.AdditionalTaxes.SelfEmploymentTax +
		result.AdditionalTaxes.NIIT + result.AdditionalTaxes.MedicareSurtax +
		result.AdditionalTaxes.AMT

	// --- Stage 7: total tax.
	result.TotalTax = money.SubFloor(result.TaxBeforeCredits, nonrefundable) +
		result.AdditionalTaxes.Total

	// --- Stage 8: payments and refund. Positive means refund.
	result.TotalPayments = input.Payments.FederalWithholding +
		input.Payments.EstimatedPayments + refundable
	result.RefundOrOwe = result.TotalPayments - result.TotalTax

	return result
}

// computeStandardDeduction returns the base standard deduction plus the
// age-65/blindness add-ons for the taxpayer and, on a joint return, the
// spouse.
func computeStandardDeduction(input *types.TaxpayerInput) int64 {
	deduction := standardDeduction[input.FilingStatus]
	addOn := ageBlindAddOn(input.FilingStatus)

	if input.Primary.Is65OrOlder(taxYear) {
		deduction += addOn
	}
	if input.Primary.IsBlind {
		deduction += addOn
	}
	if input.FilingStatus == types.MarriedJointly && input.Spouse != nil {
		if input.Spouse.Is65OrOlder(taxYear) {
			deduction += addOn
		}
		if input.Spouse.IsBlind {
			deduction += addOn
		}
	}
	return deduction
}

// computeItemizedDeduction totals Schedule A, returning the total and the
// SALT amount actually deducted (the AMT add-back needs it).
func computeItemizedDeduction(input *types.TaxpayerInput, agi int64, d *diag.Diagnostics) (total, saltDeducted int64) {
	cap := saltCap
	if input.FilingStatus == types.MarriedSeparate {
		cap = saltCapMFS
	}
	saltDeducted = money.Min(input.Itemized.StateLocalTaxes, cap)
	if input.Itemized.StateLocalTaxes > cap {
		d.AddWarning(diag.CalcSALTCapped, diag.PhaseDeductions, "",
			"state and local tax deduction capped at %s", money.FormatDollars(cap))
	}

	// Medical expenses count only above 7.5% of AGI.
	medical := money.SubFloor(input.Itemized.MedicalExpenses, money.MulRate(agi, medicalAGIFloor))

	total = saltDeducted + input.Itemized.MortgageInterest +
		input.Itemized.Charitable + medical + input.Itemized.Other
	return total, saltDeducted
}

// preferentialGains returns the long-term gains that survive netting and
// qualify for preferential rates.
func preferentialGains(input *types.TaxpayerInput, netCapital int64) int64 {
	lt := input.Income.LongTermCapitalGains
	if lt <= 0 {
		return 0
	}
	// Short-term losses in excess of short-term gains offset long-term
	// gains first; the capped net figure is the binding total.
	return money.Max(0, money.Min(lt, netCapital))
}

// preferentialTax computes tax on the preferential stack using the 0/15/20%
// breakpoints, stacking preferential income on top of ordinary income.
func preferentialTax(status types.FilingStatus, taxable, ordinaryTaxable, preferential int64) int64 {
	if preferential <= 0 {
		return 0
	}
	bp := ltcgTable[status]

	taxedAtZero := money.Max(0, money.Min(taxable, bp.ZeroRateMax)-ordinaryTaxable)
	taxedAtZero = money.Min(taxedAtZero, preferential)

	taxedAtFifteen := money.Max(0, money.Min(taxable, bp.FifteenRateMax)-ordinaryTaxable-taxedAtZero)
	taxedAtFifteen = money.Min(taxedAtFifteen, preferential-taxedAtZero)

	taxedAtTwenty := preferential - taxedAtZero - taxedAtFifteen

	return money.MulRate(taxedAtFifteen, 0.15) + money.MulRate(taxedAtTwenty, 0.20)
}

// earnedIncome is wages plus net self-employment earnings after the half
// self-employment-tax deduction. Both the EITC and the refundable CTC
// consume this figure.
func earnedIncome(input *types.TaxpayerInput, halfSE int64) int64 {
	se := input.Income.ScheduleCNet + input.Income.K1OrdinaryIncome - halfSE
	return input.Income.Wages + money.Max(0, se)
}

// withFilingStatus returns a shallow copy with the status replaced, keeping
// the caller's record untouched.
func withFilingStatus(input *types.TaxpayerInput, status types.FilingStatus) *types.TaxpayerInput {
	copied := *input
	copied.FilingStatus = status
	return &copied
}
