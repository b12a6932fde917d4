package types

import "github.com/ustaxcalc/ustax-api/internal/diag"

// EligibilityDetail records why one person, student, or child was or was not
// counted for a credit. These are expected outcomes of applying tax law,
// never errors.
type EligibilityDetail struct {
	Subject             string `json:"subject"`
	Eligible            bool   `json:"eligible"`
	IneligibilityReason string `json:"ineligibility_reason,omitempty"`
}

// CreditResult is the output of one credit calculator.
type CreditResult struct {
	Amount           int64               `json:"amount_cents"`
	RefundableAmount int64               `json:"refundable_amount_cents"`
	Details          []EligibilityDetail `json:"details,omitempty"`
}

// Credits collects every federal credit on the return.
type Credits struct {
	CTC      CreditResult `json:"ctc"`
	EITC     CreditResult `json:"eitc"`
	AOTC     CreditResult `json:"aotc"`
	LLC      CreditResult `json:"llc"`
	Adoption CreditResult `json:"adoption"`

	TotalNonrefundable int64 `json:"total_nonrefundable_cents"`
	TotalRefundable    int64 `json:"total_refundable_cents"`
}

// AdditionalTaxes collects the taxes added on top of regular bracket tax.
type AdditionalTaxes struct {
	SelfEmploymentTax int64 `json:"self_employment_tax_cents"`
	NIIT              int64 `json:"niit_cents"`
	MedicareSurtax    int64 `json:"medicare_surtax_cents"`
	AMT               int64 `json:"amt_cents"`
	Total             int64 `json:"total_cents"`
}

// AmtDetails is the parallel minimum-tax computation, populated whenever the
// AMT worksheet was run.
type AmtDetails struct {
	AMTI                int64 `json:"amti_cents"`
	Exemption           int64 `json:"exemption_cents"`
	TentativeMinimumTax int64 `json:"tentative_minimum_tax_cents"`
	RegularTaxForAMT    int64 `json:"regular_tax_for_amt_cents"`
	AMTOwed             int64 `json:"amt_owed_cents"`
	MinTaxCreditUsed    int64 `json:"min_tax_credit_used_cents"`
}

// QbiDetails is the qualified-business-income deduction computation.
type QbiDetails struct {
	TentativeDeduction int64   `json:"tentative_deduction_cents"`
	WageLimited        bool    `json:"wage_limited"`
	ApplicablePercent  float64 `json:"applicable_percent"`
	REITPTPComponent   int64   `json:"reit_ptp_component_cents"`
	OverallLimit       int64   `json:"overall_limit_cents"`
	FinalDeduction     int64   `json:"final_deduction_cents"`
}

// FederalResult is the fully itemized outcome of one federal computation.
// It is created once per ComputeFederal call and never mutated afterwards.
type FederalResult struct {
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`

	TotalIncome      int64 `json:"total_income_cents"`
	AGI              int64 `json:"agi_cents"`
	DeductionUsed    int64 `json:"deduction_used_cents"`
	UsedItemized     bool  `json:"used_itemized"`
	QBIDeduction     int64 `json:"qbi_deduction_cents"`
	TaxableIncome    int64 `json:"taxable_income_cents"`
	OrdinaryTax      int64 `json:"ordinary_tax_cents"`
	PreferentialTax  int64 `json:"preferential_tax_cents"`
	TaxBeforeCredits int64 `json:"tax_before_credits_cents"`

	Credits         Credits         `json:"credits"`
	AdditionalTaxes AdditionalTaxes `json:"additional_taxes"`

	TotalTax      int64 `json:"total_tax_cents"`
	TotalPayments int64 `json:"total_payments_cents"`
	// RefundOrOwe is signed: positive means refund, negative means owed.
	RefundOrOwe int64 `json:"refund_or_owe_cents"`

	// Earned income is carried on the result because the state calculators
	// and the refundable-credit math both need it.
	EarnedIncome int64 `json:"earned_income_cents"`

	AmtDetails *AmtDetails `json:"amt_details,omitempty"`
	QbiDetails *QbiDetails `json:"qbi_details,omitempty"`

	Diagnostics diag.Diagnostics `json:"diagnostics"`
}

// StateCredits collects state-level credits.
type StateCredits struct {
	EITC            int64 `json:"eitc_cents"`
	ChildCredit     int64 `json:"child_credit_cents"`
	ExemptionCredit int64 `json:"exemption_credit_cents"`
	Other           int64 `json:"other_cents"`
	Total           int64 `json:"total_cents"`
}

// StateTaxInput wraps the completed federal result with the state-specific
// facts a jurisdiction needs.
type StateTaxInput struct {
	Federal   *FederalResult `json:"federal"`
	Taxpayer  *TaxpayerInput `json:"taxpayer"`
	StateCode string         `json:"state_code"`

	StateWithholding  int64 `json:"state_withholding_cents"`
	EstimatedPayments int64 `json:"estimated_payments_cents"`

	// StateSpecific carries jurisdiction-particular flags (spouse itemizing,
	// charitable add-ons, county of residence) without widening the shared
	// input shape for every state.
	StateSpecific map[string]string `json:"state_specific,omitempty"`
}

// StateResult mirrors FederalResult's shape for one state return.
type StateResult struct {
	StateCode    string       `json:"state_code"`
	TaxYear      int          `json:"tax_year"`
	FilingStatus FilingStatus `json:"filing_status"`

	StateAGI           int64 `json:"state_agi_cents"`
	Deduction          int64 `json:"deduction_cents"`
	Exemptions         int64 `json:"exemptions_cents"`
	StateTaxableIncome int64 `json:"state_taxable_income_cents"`
	StateTax           int64 `json:"state_tax_cents"`
	LocalTax           int64 `json:"local_tax_cents"`
	TotalLiability     int64 `json:"total_liability_cents"`

	Credits StateCredits `json:"credits"`

	Withholding   int64 `json:"withholding_cents"`
	TotalPayments int64 `json:"total_payments_cents"`
	// RefundOrOwe is signed: positive means refund, negative means owed.
	RefundOrOwe int64 `json:"refund_or_owe_cents"`

	// Notes are human-readable and explanatory only; nothing downstream may
	// branch on them.
	Notes []string `json:"notes,omitempty"`

	Diagnostics diag.Diagnostics `json:"diagnostics"`
}
