package handlers

import (
	"fmt"
	"strings"
	"time"

	"github.com/ustaxcalc/ustax-api/internal/money"
	"github.com/ustaxcalc/ustax-api/internal/types"
)

// The request DTOs accept decimal-dollar strings ("52000.00", "$1,234.56")
// and ISO dates; conversion to the engine's cents-denominated input happens
// here, at the boundary, so the engine itself never sees dollars. Amount
// parsing is lenient: an unparseable field becomes zero plus an entry in the
// returned warnings, never a rejected request.

type personRequest struct {
	BirthDate string `json:"birth_date"`
	IsBlind   bool   `json:"is_blind"`
	HasSSN    bool   `json:"has_ssn"`
}

type childRequest struct {
	Name               string `json:"name"`
	BirthDate          string `json:"birth_date"`
	MonthsWithTaxpayer int    `json:"months_with_taxpayer"`
	IsStudent          bool   `json:"is_student"`
	IsDisabled         bool   `json:"is_disabled"`
	ProvidedOwnSupport bool   `json:"provided_own_support"`
	HasSSN             bool   `json:"has_ssn"`
}

type relativeRequest struct {
	Name            string `json:"name"`
	GrossIncome     string `json:"gross_income"`
	SupportProvided string `json:"support_provided"`
}

type educationRequest struct {
	StudentName             string `json:"student_name"`
	QualifiedExpenses       string `json:"qualified_expenses"`
	IsAccreditedSchool      bool   `json:"is_accredited_school"`
	IsAtLeastHalfTime       bool   `json:"is_at_least_half_time"`
	YearsOfPostSecondary    int    `json:"years_of_post_secondary"`
	PriorAOTCClaims         int    `json:"prior_aotc_claims"`
	HasFelonyDrugConviction bool   `json:"has_felony_drug_conviction"`
}

type adoptionRequest struct {
	ChildName          string `json:"child_name"`
	QualifiedExpenses  string `json:"qualified_expenses"`
	EmployerAssistance string `json:"employer_assistance"`
	IsSpecialNeeds     bool   `json:"is_special_needs"`
	IsForeign          bool   `json:"is_foreign"`
	IsFinalized        bool   `json:"is_finalized"`
	PriorYearCredits   string `json:"prior_year_credits"`
}

type businessRequest struct {
	Name            string `json:"name"`
	QualifiedIncome string `json:"qualified_income"`
	W2Wages         string `json:"w2_wages"`
	UBIA            string `json:"ubia"`
	IsSSTB          bool   `json:"is_sstb"`
}

type incomeRequest struct {
	Wages                       string `json:"wages"`
	Interest                    string `json:"interest"`
	OrdinaryDividends           string `json:"ordinary_dividends"`
	QualifiedDividends          string `json:"qualified_dividends"`
	ShortTermCapitalGains       string `json:"short_term_capital_gains"`
	LongTermCapitalGains        string `json:"long_term_capital_gains"`
	ScheduleCNet                string `json:"schedule_c_net"`
	K1OrdinaryIncome            string `json:"k1_ordinary_income"`
	K1PassiveIncome             string `json:"k1_passive_income"`
	REITPTPDividends            string `json:"reit_ptp_dividends"`
	Other                       string `json:"other"`
	PrivateActivityBondInterest string `json:"private_activity_bond_interest"`
	ISOExerciseSpread           string `json:"iso_exercise_spread"`
}

type adjustmentsRequest struct {
	StudentLoanInterest    string `json:"student_loan_interest"`
	HSAContributions       string `json:"hsa_contributions"`
	IRAContributions       string `json:"ira_contributions"`
	EducatorExpenses       string `json:"educator_expenses"`
	AlimonyPaid            string `json:"alimony_paid"`
	AlimonyPre2019Decree   bool   `json:"alimony_pre_2019_decree"`
	EarlyWithdrawalPenalty string `json:"early_withdrawal_penalty"`
	SelfEmployedRetirement string `json:"self_employed_retirement"`
	SelfEmployedHealthIns  string `json:"self_employed_health_insurance"`
}

type itemizedRequest struct {
	StateLocalTaxes  string `json:"state_local_taxes"`
	MortgageInterest string `json:"mortgage_interest"`
	Charitable       string `json:"charitable"`
	MedicalExpenses  string `json:"medical_expenses"`
	Other            string `json:"other"`
}

type paymentsRequest struct {
	FederalWithholding    string `json:"federal_withholding"`
	EstimatedPayments     string `json:"estimated_payments"`
	PriorYearMinTaxCredit string `json:"prior_year_min_tax_credit"`
}

// TaxReturnRequest is the JSON body for the federal calculation endpoint.
type TaxReturnRequest struct {
	FilingStatus string             `json:"filing_status" binding:"required"`
	Primary      personRequest      `json:"primary"`
	Spouse       *personRequest     `json:"spouse"`
	Dependents   int                `json:"dependents"`
	Children     []childRequest     `json:"qualifying_children"`
	Relatives    []relativeRequest  `json:"qualifying_relatives"`
	Education    []educationRequest `json:"education_expenses"`
	Adoptions    []adoptionRequest  `json:"adoption_expenses"`
	Businesses   []businessRequest  `json:"businesses"`

	Income      incomeRequest      `json:"income"`
	Adjustments adjustmentsRequest `json:"adjustments"`
	Itemized    itemizedRequest    `json:"itemized"`
	Payments    paymentsRequest    `json:"payments"`

	ForceItemize bool `json:"force_itemize"`
}

// StateReturnRequest wraps the federal body with state-side payments and the
// jurisdiction-specific flag bag.
type StateReturnRequest struct {
	TaxReturnRequest
	StateWithholding       string            `json:"state_withholding"`
	StateEstimatedPayments string            `json:"state_estimated_payments"`
	StateSpecific          map[string]string `json:"state_specific"`
}

// converter accumulates per-field warnings while translating dollar strings.
type converter struct {
	warnings []string
}

func (cv *converter) amount(field, raw string) int64 {
	cents, degraded := money.ParseCentsLenient(raw)
	if degraded {
		cv.warnings = append(cv.warnings, fmt.Sprintf("%s: unparseable amount %q treated as 0", field, raw))
	}
	return cents
}

// signedAmount handles the fields documented as signed (capital gains,
// Schedule C), where a leading minus is legitimate.
func (cv *converter) signedAmount(field, raw string) int64 {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "-") {
		return -cv.amount(field, strings.TrimPrefix(trimmed, "-"))
	}
	return cv.amount(field, raw)
}

func (cv *converter) date(field, raw string) time.Time {
	if strings.TrimSpace(raw) == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		cv.warnings = append(cv.warnings, fmt.Sprintf("%s: unparseable date %q ignored", field, raw))
		return time.Time{}
	}
	return t
}

// ToEngineInput converts the request to the engine's cents input plus any
// boundary warnings.
func (r *TaxReturnRequest) ToEngineInput() (*types.TaxpayerInput, []string) {
	cv := &converter{}

	input := &types.TaxpayerInput{
		FilingStatus: types.FilingStatus(r.FilingStatus),
		Primary: types.PersonFacts{
			BirthDate: cv.date("primary.birth_date", r.Primary.BirthDate),
			IsBlind:   r.Primary.IsBlind,
			HasSSN:    r.Primary.HasSSN,
		},
		Dependents:   r.Dependents,
		ForceItemize: r.ForceItemize,
	}

	if r.Spouse != nil {
		input.Spouse = &types.PersonFacts{
			BirthDate: cv.date("spouse.birth_date", r.Spouse.BirthDate),
			IsBlind:   r.Spouse.IsBlind,
			HasSSN:    r.Spouse.HasSSN,
		}
	}

	for i, c := range r.Children {
		input.QualifyingChildren = append(input.QualifyingChildren, types.QualifyingChild{
			Name:               c.Name,
			BirthDate:          cv.date(fmt.Sprintf("qualifying_children[%d].birth_date", i), c.BirthDate),
			MonthsWithTaxpayer: c.MonthsWithTaxpayer,
			IsStudent:          c.IsStudent,
			IsDisabled:         c.IsDisabled,
			ProvidedOwnSupport: c.ProvidedOwnSupport,
			HasSSN:             c.HasSSN,
		})
	}

	for i, rel := range r.Relatives {
		prefix := fmt.Sprintf("qualifying_relatives[%d]", i)
		input.QualifyingRelatives = append(input.QualifyingRelatives, types.QualifyingRelative{
			Name:            rel.Name,
			GrossIncome:     cv.amount(prefix+".gross_income", rel.GrossIncome),
			SupportProvided: cv.amount(prefix+".support_provided", rel.SupportProvided),
		})
	}

	for i, e := range r.Education {
		prefix := fmt.Sprintf("education_expenses[%d]", i)
		input.EducationExpenses = append(input.EducationExpenses, types.EducationExpense{
			StudentName:             e.StudentName,
			QualifiedExpenses:       cv.amount(prefix+".qualified_expenses", e.QualifiedExpenses),
			IsAccreditedSchool:      e.IsAccreditedSchool,
			IsAtLeastHalfTime:       e.IsAtLeastHalfTime,
			YearsOfPostSecondary:    e.YearsOfPostSecondary,
			PriorAOTCClaims:         e.PriorAOTCClaims,
			HasFelonyDrugConviction: e.HasFelonyDrugConviction,
		})
	}

	for i, a := range r.Adoptions {
		prefix := fmt.Sprintf("adoption_expenses[%d]", i)
		input.AdoptionExpenses = append(input.AdoptionExpenses, types.AdoptionExpense{
			ChildName:          a.ChildName,
			QualifiedExpenses:  cv.amount(prefix+".qualified_expenses", a.QualifiedExpenses),
			EmployerAssistance: cv.amount(prefix+".employer_assistance", a.EmployerAssistance),
			IsSpecialNeeds:     a.IsSpecialNeeds,
			IsForeign:          a.IsForeign,
			IsFinalized:        a.IsFinalized,
			PriorYearCredits:   cv.amount(prefix+".prior_year_credits", a.PriorYearCredits),
		})
	}

	for i, b := range r.Businesses {
		prefix := fmt.Sprintf("businesses[%d]", i)
		input.Businesses = append(input.Businesses, types.BusinessIncome{
			Name:            b.Name,
			QualifiedIncome: cv.signedAmount(prefix+".qualified_income", b.QualifiedIncome),
			W2Wages:         cv.amount(prefix+".w2_wages", b.W2Wages),
			UBIA:            cv.amount(prefix+".ubia", b.UBIA),
			IsSSTB:          b.IsSSTB,
		})
	}

	input.Income = types.Income{
		Wages:                       cv.amount("income.wages", r.Income.Wages),
		Interest:                    cv.amount("income.interest", r.Income.Interest),
		OrdinaryDividends:           cv.amount("income.ordinary_dividends", r.Income.OrdinaryDividends),
		QualifiedDividends:          cv.amount("income.qualified_dividends", r.Income.QualifiedDividends),
		ShortTermCapitalGains:       cv.signedAmount("income.short_term_capital_gains", r.Income.ShortTermCapitalGains),
		LongTermCapitalGains:        cv.signedAmount("income.long_term_capital_gains", r.Income.LongTermCapitalGains),
		ScheduleCNet:                cv.signedAmount("income.schedule_c_net", r.Income.ScheduleCNet),
		K1OrdinaryIncome:            cv.signedAmount("income.k1_ordinary_income", r.Income.K1OrdinaryIncome),
		K1PassiveIncome:             cv.signedAmount("income.k1_passive_income", r.Income.K1PassiveIncome),
		REITPTPDividends:            cv.amount("income.reit_ptp_dividends", r.Income.REITPTPDividends),
		Other:                       cv.amount("income.other", r.Income.Other),
		PrivateActivityBondInterest: cv.amount("income.private_activity_bond_interest", r.Income.PrivateActivityBondInterest),
		ISOExerciseSpread:           cv.amount("income.iso_exercise_spread", r.Income.ISOExerciseSpread),
	}

	input.Adjustments = types.Adjustments{
		StudentLoanInterest:    cv.amount("adjustments.student_loan_interest", r.Adjustments.StudentLoanInterest),
		HSAContributions:       cv.amount("adjustments.hsa_contributions", r.Adjustments.HSAContributions),
		IRAContributions:       cv.amount("adjustments.ira_contributions", r.Adjustments.IRAContributions),
		EducatorExpenses:       cv.amount("adjustments.educator_expenses", r.Adjustments.EducatorExpenses),
		AlimonyPaid:            cv.amount("adjustments.alimony_paid", r.Adjustments.AlimonyPaid),
		AlimonyPre2019Decree:   r.Adjustments.AlimonyPre2019Decree,
		EarlyWithdrawalPenalty: cv.amount("adjustments.early_withdrawal_penalty", r.Adjustments.EarlyWithdrawalPenalty),
		SelfEmployedRetirement: cv.amount("adjustments.self_employed_retirement", r.Adjustments.SelfEmployedRetirement),
		SelfEmployedHealthIns:  cv.amount("adjustments.self_employed_health_insurance", r.Adjustments.SelfEmployedHealthIns),
	}

	input.Itemized = types.ItemizedDeductions{
		StateLocalTaxes:  cv.amount("itemized.state_local_taxes", r.Itemized.StateLocalTaxes),
		MortgageInterest: cv.amount("itemized.mortgage_interest", r.Itemized.MortgageInterest),
		Charitable:       cv.amount("itemized.charitable", r.Itemized.Charitable),
		MedicalExpenses:  cv.amount("itemized.medical_expenses", r.Itemized.MedicalExpenses),
		Other:            cv.amount("itemized.other", r.Itemized.Other),
	}

	input.Payments = types.Payments{
		FederalWithholding:    cv.amount("payments.federal_withholding", r.Payments.FederalWithholding),
		EstimatedPayments:     cv.amount("payments.estimated_payments", r.Payments.EstimatedPayments),
		PriorYearMinTaxCredit: cv.amount("payments.prior_year_min_tax_credit", r.Payments.PriorYearMinTaxCredit),
	}

	return input, cv.warnings
}

// ToStateInput builds the state calculator's input from the wrapped request,
// appending any new parse warnings to those already collected.
func (r *StateReturnRequest) ToStateInput(code string, fed *types.FederalResult, taxpayer *types.TaxpayerInput, warnings []string) (*types.StateTaxInput, []string) {
	cv := &converter{warnings: warnings}
	in := &types.StateTaxInput{
		Federal:           fed,
		Taxpayer:          taxpayer,
		StateCode:         code,
		StateWithholding:  cv.amount("state_withholding", r.StateWithholding),
		EstimatedPayments: cv.amount("state_estimated_payments", r.StateEstimatedPayments),
		StateSpecific:     r.StateSpecific,
	}
	return in, cv.warnings
}
