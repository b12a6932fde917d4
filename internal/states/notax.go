package states

import (
	"github.com/ustaxcalc/ustax-api/internal/diag"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// The no-income-tax jurisdictions share one calculator: every tax field is
// zero and anything withheld comes straight back as a refund.
var noTaxStates = map[string]string{
	"AK": "Alaska",
	"FL": "Florida",
	"NH": "New Hampshire",
	"NV": "Nevada",
	"SD": "South Dakota",
	"TN": "Tennessee",
	"TX": "Texas",
	"WA": "Washington",
	"WY": "Wyoming",
}

func init() {
	for code, name := range noTaxStates {
		cfg := Config{Code: code, Name: name}
		register(cfg, noTaxCalculator(cfg))
	}
}

func noTaxCalculator(cfg Config) Calculator {
	return func(in *types.StateTaxInput) *types.StateResult {
		res := &types.StateResult{
			StateCode:    cfg.Code,
			TaxYear:      in.Federal.TaxYear,
			FilingStatus: in.Federal.FilingStatus,
			StateAGI:     in.Federal.AGI,
		}
		res.Diagnostics.AddWarning(diag.FormNoTaxState, diag.PhaseState, "",
			"%s has no individual income tax", cfg.Name)
		if in.StateWithholding > 0 || in.EstimatedPayments > 0 {
			res.Notes = append(res.Notes,
				"amounts withheld or paid to a no-tax state are refunded in full")
		}
		res.Withholding = in.StateWithholding
		res.TotalPayments = in.StateWithholding + in.EstimatedPayments
		res.RefundOrOwe = res.TotalPayments
		return res
	}
}
