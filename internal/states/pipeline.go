package states

import (
	"strconv"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// schedule is a state's rate table in compact form. MFJ brackets default to
// double the single widths and HOH to the single table, which is how most
// states publish theirs; states that deviate set the explicit rows.
type schedule struct {
	single []taxmath.RateRow
	mfj    []taxmath.RateRow
	hoh    []taxmath.RateRow
}

func (s *schedule) forStatus(status types.FilingStatus) []taxmath.Bracket {
	switch status {
	case types.MarriedJointly:
		if s.mfj != nil {
			return taxmath.ConvertToFullBrackets(s.mfj)
		}
		return taxmath.ConvertToFullBrackets(scaleRows(s.single, 2))
	case types.MarriedSeparate:
		// Separate filers get half the joint widths.
		if s.mfj != nil {
			return taxmath.ConvertToFullBrackets(scaleRows(s.mfj, 0.5))
		}
		return taxmath.ConvertToFullBrackets(s.single)
	case types.HeadOfHousehold:
		if s.hoh != nil {
			return taxmath.ConvertToFullBrackets(s.hoh)
		}
		return taxmath.ConvertToFullBrackets(s.single)
	default:
		return taxmath.ConvertToFullBrackets(s.single)
	}
}

func scaleRows(rows []taxmath.RateRow, factor float64) []taxmath.RateRow {
	scaled := make([]taxmath.RateRow, len(rows))
	for i, row := range rows {
		scaled[i] = row
		if row.Max > 0 {
			scaled[i].Max = money.MulRate(row.Max, factor)
		}
	}
	return scaled
}

// ruleTable parameterizes the shared state pipeline. A state is its config
// plus rates, deduction and exemption amounts, and optional hooks for the
// behavioral deviations that a table alone cannot express.
type ruleTable struct {
	config Config

	// Exactly one of flatRate / rates is set.
	flatRate float64
	rates    *schedule

	standardDeduction  map[types.FilingStatus]int64
	personalExemption  int64
	dependentExemption int64
	// exemptionAsCredit states subtract the exemption from tax, not income.
	exemptionAsCredit bool

	// adjustBase overrides the starting income figure (default: federal AGI).
	adjustBase func(in *types.StateTaxInput, res *types.StateResult) int64
	// adjustDeduction rewrites the standard deduction for this return.
	adjustDeduction func(in *types.StateTaxInput, deduction int64, res *types.StateResult) int64
	// extraTax returns a surtax added to state tax and a local/county tax.
	extraTax func(in *types.StateTaxInput, res *types.StateResult, stateTax int64) (surtax, local int64)
}

// compute runs the shared pipeline over one rule table. Pure function of the
// input; all state calculators except the no-tax group are closures over a
// ruleTable calling this.
func (r *ruleTable) compute(in *types.StateTaxInput) *types.StateResult {
	fed := in.Federal
	res := &types.StateResult{
		StateCode:    r.config.Code,
		TaxYear:      fed.TaxYear,
		FilingStatus: fed.FilingStatus,
	}

	base := fed.AGI
	if r.adjustBase != nil {
		base = r.adjustBase(in, res)
	}
	res.StateAGI = base

	deduction := r.standardDeduction[res.FilingStatus]
	if r.adjustDeduction != nil {
		deduction = r.adjustDeduction(in, deduction, res)
	}
	res.Deduction = deduction

	filers := int64(1)
	if res.FilingStatus == types.MarriedJointly {
		filers = 2
	}
	dependents := int64(0)
	if in.Taxpayer != nil {
		dependents = int64(len(in.Taxpayer.QualifyingChildren) + len(in.Taxpayer.QualifyingRelatives))
	}
	exemption := r.personalExemption*filers + r.dependentExemption*dependents
	if r.exemptionAsCredit {
		res.Credits.ExemptionCredit = exemption
	} else {
		res.Exemptions = exemption
	}

	taxable := money.SubFloor(base, res.Deduction+res.Exemptions)
	res.StateTaxableIncome = taxable

	var tax int64
	if r.rates != nil {
		tax = taxmath.TaxFromBrackets(taxable, r.rates.forStatus(res.FilingStatus))
	} else {
		tax = money.MulRate(taxable, r.flatRate)
	}

	if r.extraTax != nil {
		surtax, local := r.extraTax(in, res, tax)
		tax += surtax
		res.LocalTax = local
	}
	res.StateTax = tax

	if r.config.EITCPercent > 0 {
		res.Credits.EITC = money.MulRate(fed.Credits.EITC.RefundableAmount, r.config.EITCPercent)
	}
	res.Credits.Total = res.Credits.EITC + res.Credits.ChildCredit +
		res.Credits.ExemptionCredit + res.Credits.Other

	// The exemption credit and any other nonrefundable credits reduce tax to
	// zero at most; the state EITC is refundable and rides on the payments
	// side like its federal counterpart.
	nonrefundable := res.Credits.ExemptionCredit + res.Credits.ChildCredit + res.Credits.Other
	res.TotalLiability = money.SubFloor(res.StateTax, nonrefundable) + res.LocalTax

	res.Withholding = in.StateWithholding
	res.TotalPayments = in.StateWithholding + in.EstimatedPayments + res.Credits.EITC
	res.RefundOrOwe = res.TotalPayments - res.TotalLiability
	return res
}

// registerTable installs a rule-table state; called from the table files'
// init functions.
func registerTable(table *ruleTable) {
	register(table.config, table.compute)
}

// federalParityDeduction is the 2025 federal standard deduction, used by the
// states that conform to it.
var federalParityDeduction = map[types.FilingStatus]int64{
	types.Single:          1_500_000,
	types.MarriedJointly:  3_000_000,
	types.MarriedSeparate: 1_500_000,
	types.HeadOfHousehold: 2_250_000,
}

// deductionBySingle builds a deduction table from the single amount: joint
// filers get double, everyone else the single figure.
func deductionBySingle(single int64) map[types.FilingStatus]int64 {
	return map[types.FilingStatus]int64{
		types.Single:          single,
		types.MarriedJointly:  single * 2,
		types.MarriedSeparate: single,
		types.HeadOfHousehold: single,
	}
}

// countyRate reads a decimal local-tax rate from the state-specific bag,
// e.g. "0.032". Malformed or missing values mean no local tax.
func countyRate(in *types.StateTaxInput, key string) (float64, bool) {
	raw, ok := in.StateSpecific[key]
	if !ok || raw == "" {
		return 0, false
	}
	rate, err := strconv.ParseFloat(raw, 64)
	if err != nil || rate <= 0 || rate >= 1 {
		return 0, false
	}
	return rate, true
}
