package states

import (
	"fmt"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// Flat-rate jurisdictions. Each is the shared pipeline plus a rate and its
// own deduction/exemption amounts; behavioral quirks ride on hooks.
func init() {
	registerTable(&ruleTable{
		config:            Config{Code: "AZ", Name: "Arizona", HasIncomeTax: true, HasStandardDeduction: true},
		flatRate:          0.025,
		standardDeduction: federalParityDeduction,
		adjustDeduction:   arizonaDeduction,
	})

	registerTable(&ruleTable{
		config:     Config{Code: "CO", Name: "Colorado", HasIncomeTax: true, EITCPercent: 0.35},
		flatRate:   0.044,
		adjustBase: coloradoBase,
	})

	registerTable(&ruleTable{
		config:             Config{Code: "GA", Name: "Georgia", HasIncomeTax: true, HasStandardDeduction: true},
		flatRate:           0.0539,
		standardDeduction:  deductionBySingle(1_200_000),
		dependentExemption: 400_000,
	})

	registerTable(&ruleTable{
		config:            Config{Code: "ID", Name: "Idaho", HasIncomeTax: true, HasStandardDeduction: true},
		flatRate:          0.05695,
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config:             Config{Code: "IL", Name: "Illinois", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.20},
		flatRate:           0.0495,
		personalExemption:  285_000,
		dependentExemption: 285_000,
	})

	registerTable(&ruleTable{
		config:             Config{Code: "IN", Name: "Indiana", HasIncomeTax: true, HasLocalTax: true, HasPersonalExemption: true, EITCPercent: 0.10},
		flatRate:           0.03,
		personalExemption:  100_000,
		dependentExemption: 150_000,
		extraTax:           indianaCountyTax,
	})

	registerTable(&ruleTable{
		config:            Config{Code: "IA", Name: "Iowa", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.15},
		flatRate:          0.038,
		standardDeduction: federalParityDeduction,
	})

	registerTable(&ruleTable{
		config:            Config{Code: "KY", Name: "Kentucky", HasIncomeTax: true, HasStandardDeduction: true},
		flatRate:          0.04,
		standardDeduction: deductionBySingle(327_000),
	})

	registerTable(&ruleTable{
		config:            Config{Code: "LA", Name: "Louisiana", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.05},
		flatRate:          0.03,
		standardDeduction: deductionBySingle(1_250_000),
	})

	registerTable(&ruleTable{
		config:            Config{Code: "MA", Name: "Massachusetts", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.40},
		flatRate:          0.05,
		personalExemption: 440_000,
		extraTax:          massachusettsSurtax,
	})

	registerTable(&ruleTable{
		config:             Config{Code: "MI", Name: "Michigan", HasIncomeTax: true, HasPersonalExemption: true, EITCPercent: 0.30},
		flatRate:           0.0425,
		personalExemption:  580_000,
		dependentExemption: 580_000,
	})

	registerTable(&ruleTable{
		config:            Config{Code: "NC", Name: "North Carolina", HasIncomeTax: true, HasStandardDeduction: true},
		flatRate:          0.0425,
		standardDeduction: deductionBySingle(1_275_000),
	})

	registerTable(&ruleTable{
		config:   Config{Code: "PA", Name: "Pennsylvania", HasIncomeTax: true},
		flatRate: 0.0307,
	})

	registerTable(&ruleTable{
		config:            Config{Code: "UT", Name: "Utah", HasIncomeTax: true, HasStandardDeduction: true, EITCPercent: 0.20},
		flatRate:          0.0455,
		standardDeduction: federalParityDeduction,
	})
}

// arizonaDeduction applies Arizona's standard-deduction increase of 33% of
// charitable contributions and the age-65 exemption, both claimable on top
// of the regular standard deduction.
func arizonaDeduction(in *types.StateTaxInput, deduction int64, res *types.StateResult) int64 {
	if in.Taxpayer == nil {
		return deduction
	}
	if charitable := in.Taxpayer.Itemized.Charitable; charitable > 0 {
		boost := money.MulRate(charitable, 0.33)
		deduction += boost
		res.Notes = append(res.Notes,
			fmt.Sprintf("standard deduction increased by %s for charitable contributions",
				money.FormatDollars(boost)))
	}
	if in.Taxpayer.Primary.Is65OrOlder(in.Federal.TaxYear) {
		deduction += 210_000
	}
	if in.Federal.FilingStatus == types.MarriedJointly && in.Taxpayer.Spouse != nil &&
		in.Taxpayer.Spouse.Is65OrOlder(in.Federal.TaxYear) {
		deduction += 210_000
	}
	return deduction
}

// coloradoBase starts from federal taxable income rather than AGI, then adds
// back itemized deductions over the high-earner cap for AGI above $300,000.
func coloradoBase(in *types.StateTaxInput, res *types.StateResult) int64 {
	base := in.Federal.TaxableIncome
	if in.Federal.AGI <= 30_000_000 || !in.Federal.UsedItemized {
		return base
	}
	cap := int64(1_200_000)
	if in.Federal.FilingStatus == types.MarriedJointly {
		cap = 1_600_000
	}
	addback := money.SubFloor(in.Federal.DeductionUsed, cap)
	if addback > 0 {
		base += addback
		res.Notes = append(res.Notes,
			fmt.Sprintf("itemized deductions over %s added back for high earners",
				money.FormatDollars(cap)))
	}
	return base
}

// massachusettsSurtax adds the 4% surtax on taxable income over the
// voter-approved millionaire threshold.
func massachusettsSurtax(in *types.StateTaxInput, res *types.StateResult, _ int64) (surtax, local int64) {
	const threshold int64 = 108_315_000
	excess := money.SubFloor(res.StateTaxableIncome, threshold)
	if excess == 0 {
		return 0, 0
	}
	res.Notes = append(res.Notes, "4% surtax applies to taxable income over the millionaire threshold")
	return money.MulRate(excess, 0.04), 0
}

// indianaCountyTax applies the resident county's rate when the caller
// supplies one; Indiana counties all levy a local income tax.
func indianaCountyTax(in *types.StateTaxInput, res *types.StateResult, _ int64) (surtax, local int64) {
	rate, ok := countyRate(in, "county_rate")
	if !ok {
		return 0, 0
	}
	res.Notes = append(res.Notes, fmt.Sprintf("county income tax at %.2f%%", rate*100))
	return 0, money.MulRate(res.StateTaxableIncome, rate)
}
