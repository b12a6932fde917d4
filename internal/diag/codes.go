package diag

// Code is a stable diagnostic identifier. The set below is a closed
// enumeration: UI layers key messaging off these strings, so existing codes
// are never renamed or reused. Adding a code means appending here and to the
// severity table.
type Code string

// Input codes cover malformed or suspicious caller data.
const (
	InputInvalidAmount   Code = "INPUT_INVALID_AMOUNT"
	InputNegativeAmount  Code = "INPUT_NEGATIVE_AMOUNT"
	InputAmountTooLarge  Code = "INPUT_AMOUNT_TOO_LARGE"
	InputMissingBirthDay Code = "INPUT_MISSING_BIRTH_DATE"
	InputUnknownState    Code = "INPUT_UNKNOWN_STATE"
	InputBadFilingStatus Code = "INPUT_INVALID_FILING_STATUS"
)

// Calculation codes cover arithmetic-stage conditions worth surfacing.
const (
	CalcNegativeAGI       Code = "CALC_NEGATIVE_AGI"
	CalcItemizedForced    Code = "CALC_ITEMIZED_FORCED"
	CalcSALTCapped        Code = "CALC_SALT_CAPPED"
	CalcAMTApplies        Code = "CALC_AMT_APPLIES"
	CalcQBILimited        Code = "CALC_QBI_LIMITED"
	CalcSSTBPhasedOut     Code = "CALC_SSTB_PHASED_OUT"
	CalcCapitalLossCapped Code = "CALC_CAPITAL_LOSS_CAPPED"
)

// Credit codes cover eligibility and phase-out outcomes.
const (
	CreditCTCPhasedOut      Code = "CREDIT_CTC_PHASED_OUT"
	CreditEITCIneligible    Code = "CREDIT_EITC_INELIGIBLE"
	CreditEITCInvestmentCap Code = "CREDIT_EITC_INVESTMENT_CAP"
	CreditAOTCPreferred     Code = "CREDIT_AOTC_PREFERRED"
	CreditEducationPhased   Code = "CREDIT_EDUCATION_PHASED_OUT"
	CreditAdoptionCarryover Code = "CREDIT_ADOPTION_CARRYFORWARD"
)

// Form codes cover return-level conditions.
const (
	FormStateNotSupported Code = "FORM_STATE_NOT_SUPPORTED"
	FormNoTaxState        Code = "FORM_NO_TAX_STATE"
)

// severities fixes each code's severity at registration. add() validates
// against this table and panics on mismatch: a wrong-severity call site is a
// coding defect, not a taxpayer-data problem.
var severities = map[Code]Severity{
	InputInvalidAmount:   SeverityWarning,
	InputNegativeAmount:  SeverityWarning,
	InputAmountTooLarge:  SeverityError,
	InputMissingBirthDay: SeverityWarning,
	InputUnknownState:    SeverityError,
	InputBadFilingStatus: SeverityWarning,

	CalcNegativeAGI:       SeverityWarning,
	CalcItemizedForced:    SeverityWarning,
	CalcSALTCapped:        SeverityWarning,
	CalcAMTApplies:        SeverityWarning,
	CalcQBILimited:        SeverityWarning,
	CalcSSTBPhasedOut:     SeverityWarning,
	CalcCapitalLossCapped: SeverityWarning,

	CreditCTCPhasedOut:      SeverityWarning,
	CreditEITCIneligible:    SeverityWarning,
	CreditEITCInvestmentCap: SeverityWarning,
	CreditAOTCPreferred:     SeverityWarning,
	CreditEducationPhased:   SeverityWarning,
	CreditAdoptionCarryover: SeverityWarning,

	FormStateNotSupported: SeverityError,
	FormNoTaxState:        SeverityWarning,
}
