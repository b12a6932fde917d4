// Package diag collects structured calculation diagnostics. Warnings and
// errors ride alongside results instead of aborting them: a bad field or a
// failed eligibility test must never prevent computing the rest of a return.
package diag

import "fmt"

// Severity of a diagnostic entry. Each code has exactly one severity,
// registered in codes.go; attaching a code with the wrong severity is a
// programmer error and panics.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Phase names the pipeline stage that produced a diagnostic.
type Phase string

const (
	PhaseInputValidation Phase = "input-validation"
	PhaseAGI             Phase = "agi"
	PhaseDeductions      Phase = "deductions"
	PhaseIncomeTax       Phase = "income-tax"
	PhaseSelfEmployment  Phase = "self-employment"
	PhaseQBI             Phase = "qbi"
	PhaseAdditionalTaxes Phase = "additional-taxes"
	PhaseCredits         Phase = "credits"
	PhaseState           Phase = "state"
)

// Entry is a single diagnostic. External consumers key behavior off Code,
// never Message, so message text can change freely.
type Entry struct {
	Code     Code     `json:"code"`
	Message  string   `json:"message"`
	Field    string   `json:"field,omitempty"`
	Phase    Phase    `json:"phase,omitempty"`
	Severity Severity `json:"severity"`
}

// Diagnostics holds the ordered errors and warnings for one calculation.
// The zero value is ready to use.
type Diagnostics struct {
	Errors   []Entry `json:"errors"`
	Warnings []Entry `json:"warnings"`
}

// AddError appends an error-severity diagnostic. Panics if code is not
// registered as an error code.
func (d *Diagnostics) AddError(code Code, phase Phase, field string, format string, args ...interface{}) {
	d.add(code, SeverityError, phase, field, format, args...)
}

// AddWarning appends a warning-severity diagnostic. Panics if code is not
// registered as a warning code.
func (d *Diagnostics) AddWarning(code Code, phase Phase, field string, format string, args ...interface{}) {
	d.add(code, SeverityWarning, phase, field, format, args...)
}

func (d *Diagnostics) add(code Code, sev Severity, phase Phase, field string, format string, args ...interface{}) {
	registered, ok := severities[code]
	if !ok {
		panic(fmt.Sprintf("diag: unregistered diagnostic code %q", code))
	}
	if registered != sev {
		panic(fmt.Sprintf("diag: code %q is registered as %s, used as %s", code, registered, sev))
	}

	entry := Entry{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Field:    field,
		Phase:    phase,
		Severity: sev,
	}
	if sev == SeverityError {
		d.Errors = append(d.Errors, entry)
	} else {
		d.Warnings = append(d.Warnings, entry)
	}
}

// HasErrors reports whether any error-severity diagnostics were recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends all entries from other, preserving order.
func (d *Diagnostics) Merge(other *Diagnostics) {
	if other == nil {
		return
	}
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}
