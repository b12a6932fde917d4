// Package types defines the input and result records exchanged with the tax
// engine. All monetary fields are int64 cents; fields documented as signed
// (net capital gains, refund-or-owe) are the only ones that may go negative.
package types

import "time"

// FilingStatus enumerates the federal filing statuses.
type FilingStatus string

const (
	Single          FilingStatus = "single"
	MarriedJointly  FilingStatus = "marriedJointly"
	MarriedSeparate FilingStatus = "marriedSeparately"
	HeadOfHousehold FilingStatus = "headOfHousehold"
)

// Valid reports whether s is a known filing status.
func (s FilingStatus) Valid() bool {
	switch s {
	case Single, MarriedJointly, MarriedSeparate, HeadOfHousehold:
		return true
	default:
		return false
	}
}

// PersonFacts holds the age and disability facts for the primary taxpayer or
// spouse that feed the standard-deduction add-ons and EITC age tests.
type PersonFacts struct {
	BirthDate time.Time `json:"birth_date"`
	IsBlind   bool      `json:"is_blind"`
	// SSN placeholder. The engine never validates or stores real SSNs; the
	// field exists because several credits require one to be present.
	HasSSN bool `json:"has_ssn"`
}

// Age returns the person's age at the end of the tax year.
func (p PersonFacts) Age(taxYear int) int {
	if p.BirthDate.IsZero() {
		return 0
	}
	yearEnd := time.Date(taxYear, time.December, 31, 0, 0, 0, 0, time.UTC)
	age := yearEnd.Year() - p.BirthDate.Year()
	if p.BirthDate.AddDate(age, 0, 0).After(yearEnd) {
		age--
	}
	return age
}

// Is65OrOlder reports the age-65 standard-deduction test. The IRS treats a
// taxpayer born on January 1 as 65 on December 31 of the prior year.
func (p PersonFacts) Is65OrOlder(taxYear int) bool {
	if p.BirthDate.IsZero() {
		return false
	}
	cutoff := time.Date(taxYear+1, time.January, 2, 0, 0, 0, 0, time.UTC)
	return p.BirthDate.AddDate(65, 0, 0).Before(cutoff)
}

// QualifyingChild holds the per-child facts consumed by the CTC and EITC
// eligibility tests.
type QualifyingChild struct {
	Name               string    `json:"name,omitempty"`
	BirthDate          time.Time `json:"birth_date"`
	MonthsWithTaxpayer int       `json:"months_with_taxpayer"`
	IsStudent          bool      `json:"is_student"`
	IsDisabled         bool      `json:"is_disabled"`
	ProvidedOwnSupport bool      `json:"provided_own_support"`
	HasSSN             bool      `json:"has_ssn"`
}

// AgeAtYearEnd returns the child's age on December 31 of the tax year.
func (c QualifyingChild) AgeAtYearEnd(taxYear int) int {
	p := PersonFacts{BirthDate: c.BirthDate}
	return p.Age(taxYear)
}

// QualifyingRelative is a dependent who is not a qualifying child (credit
// for other dependents, head-of-household support tests).
type QualifyingRelative struct {
	Name            string `json:"name,omitempty"`
	GrossIncome     int64  `json:"gross_income_cents"`
	SupportProvided int64  `json:"support_provided_cents"`
}

// EducationExpense is one student's qualified education spending plus the
// facts the AOTC eligibility tests need.
type EducationExpense struct {
	StudentName             string `json:"student_name,omitempty"`
	QualifiedExpenses       int64  `json:"qualified_expenses_cents"`
	IsAccreditedSchool      bool   `json:"is_accredited_school"`
	IsAtLeastHalfTime       bool   `json:"is_at_least_half_time"`
	YearsOfPostSecondary    int    `json:"years_of_post_secondary"`
	PriorAOTCClaims         int    `json:"prior_aotc_claims"`
	HasFelonyDrugConviction bool   `json:"has_felony_drug_conviction"`
}

// AdoptionExpense is one child's adoption facts for the adoption credit.
type AdoptionExpense struct {
	ChildName          string `json:"child_name,omitempty"`
	QualifiedExpenses  int64  `json:"qualified_expenses_cents"`
	EmployerAssistance int64  `json:"employer_assistance_cents"`
	IsSpecialNeeds     bool   `json:"is_special_needs"`
	IsForeign          bool   `json:"is_foreign"`
	IsFinalized        bool   `json:"is_finalized"`
	PriorYearCredits   int64  `json:"prior_year_credits_cents"`
}

// BusinessIncome is one trade or business for the QBI deduction.
type BusinessIncome struct {
	Name            string `json:"name,omitempty"`
	QualifiedIncome int64  `json:"qualified_income_cents"`
	W2Wages         int64  `json:"w2_wages_cents"`
	UBIA            int64  `json:"ubia_cents"`
	IsSSTB          bool   `json:"is_sstb"`
}

// Income is the taxpayer's full income breakdown.
type Income struct {
	Wages              int64 `json:"wages_cents"`
	Interest           int64 `json:"interest_cents"`
	OrdinaryDividends  int64 `json:"ordinary_dividends_cents"`
	QualifiedDividends int64 `json:"qualified_dividends_cents"`
	// Capital gains are signed: losses arrive as negative amounts and are
	// capped at the statutory net-loss limit by the pipeline.
	ShortTermCapitalGains int64 `json:"short_term_capital_gains_cents"`
	LongTermCapitalGains  int64 `json:"long_term_capital_gains_cents"`
	ScheduleCNet          int64 `json:"schedule_c_net_cents"`
	K1OrdinaryIncome      int64 `json:"k1_ordinary_income_cents"`
	K1PassiveIncome       int64 `json:"k1_passive_income_cents"`
	REITPTPDividends      int64 `json:"reit_ptp_dividends_cents"`
	Other                 int64 `json:"other_cents"`
	// AMT preference items.
	PrivateActivityBondInterest int64 `json:"private_activity_bond_interest_cents"`
	ISOExerciseSpread           int64 `json:"iso_exercise_spread_cents"`
}

// Adjustments are the above-the-line deductions subtracted to reach AGI.
type Adjustments struct {
	StudentLoanInterest    int64 `json:"student_loan_interest_cents"`
	HSAContributions       int64 `json:"hsa_contributions_cents"`
	IRAContributions       int64 `json:"ira_contributions_cents"`
	EducatorExpenses       int64 `json:"educator_expenses_cents"`
	AlimonyPaid            int64 `json:"alimony_paid_cents"`
	AlimonyPre2019Decree   bool  `json:"alimony_pre_2019_decree"`
	EarlyWithdrawalPenalty int64 `json:"early_withdrawal_penalty_cents"`
	SelfEmployedRetirement int64 `json:"self_employed_retirement_cents"`
	SelfEmployedHealthIns  int64 `json:"self_employed_health_insurance_cents"`
}

// ItemizedDeductions are the Schedule A components.
type ItemizedDeductions struct {
	StateLocalTaxes  int64 `json:"state_local_taxes_cents"`
	MortgageInterest int64 `json:"mortgage_interest_cents"`
	Charitable       int64 `json:"charitable_cents"`
	MedicalExpenses  int64 `json:"medical_expenses_cents"`
	Other            int64 `json:"other_cents"`
}

// Payments are federal withholding and estimated payments.
type Payments struct {
	FederalWithholding    int64 `json:"federal_withholding_cents"`
	EstimatedPayments     int64 `json:"estimated_payments_cents"`
	PriorYearMinTaxCredit int64 `json:"prior_year_min_tax_credit_cents"`
}

// TaxpayerInput is the complete input record for one federal computation.
// The engine treats it as read-only.
type TaxpayerInput struct {
	FilingStatus FilingStatus `json:"filing_status"`

	Primary PersonFacts  `json:"primary"`
	Spouse  *PersonFacts `json:"spouse,omitempty"`

	Dependents          int                  `json:"dependents"`
	QualifyingChildren  []QualifyingChild    `json:"qualifying_children,omitempty"`
	QualifyingRelatives []QualifyingRelative `json:"qualifying_relatives,omitempty"`
	EducationExpenses   []EducationExpense   `json:"education_expenses,omitempty"`
	AdoptionExpenses    []AdoptionExpense    `json:"adoption_expenses,omitempty"`
	Businesses          []BusinessIncome     `json:"businesses,omitempty"`

	Income      Income             `json:"income"`
	Adjustments Adjustments        `json:"adjustments"`
	Itemized    ItemizedDeductions `json:"itemized"`
	Payments    Payments           `json:"payments"`

	// ForceItemize covers the MFS rule: when one spouse itemizes the other
	// must itemize too even when the standard deduction is larger.
	ForceItemize bool `json:"force_itemize"`
}
