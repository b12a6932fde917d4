package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ustaxcalc/ustax-api/internal/diag"
)

func TestDiagnosticsOrdering(t *testing.T) {
	var d diag.Diagnostics
	d.AddWarning(diag.InputInvalidAmount, diag.PhaseInputValidation, "wages", "could not parse %q", "abc")
	d.AddWarning(diag.CalcSALTCapped, diag.PhaseDeductions, "", "SALT deduction capped at $10,000")
	d.AddError(diag.FormStateNotSupported, diag.PhaseState, "", "state %s not supported", "ZZ")

	require.Len(t, d.Warnings, 2)
	require.Len(t, d.Errors, 1)
	assert.True(t, d.HasErrors())

	// Insertion order is preserved within each severity.
	assert.Equal(t, diag.InputInvalidAmount, d.Warnings[0].Code)
	assert.Equal(t, diag.CalcSALTCapped, d.Warnings[1].Code)
	assert.Equal(t, `could not parse "abc"`, d.Warnings[0].Message)
	assert.Equal(t, "wages", d.Warnings[0].Field)
	assert.Equal(t, diag.PhaseInputValidation, d.Warnings[0].Phase)
}

func TestSeverityMismatchPanics(t *testing.T) {
	var d diag.Diagnostics

	// InputInvalidAmount is registered as a warning; adding it as an error
	// indicates a defective call site.
	assert.Panics(t, func() {
		d.AddError(diag.InputInvalidAmount, diag.PhaseInputValidation, "", "bad")
	})

	assert.Panics(t, func() {
		d.AddWarning(diag.Code("NO_SUCH_CODE"), diag.PhaseAGI, "", "bad")
	})
}

func TestMerge(t *testing.T) {
	var a, b diag.Diagnostics
	a.AddWarning(diag.CalcAMTApplies, diag.PhaseAdditionalTaxes, "", "AMT applies")
	b.AddWarning(diag.FormNoTaxState, diag.PhaseState, "", "no income tax")
	b.AddError(diag.InputUnknownState, diag.PhaseState, "state", "unknown state")

	a.Merge(&b)
	assert.Len(t, a.Warnings, 2)
	assert.Len(t, a.Errors, 1)

	a.Merge(nil)
	assert.Len(t, a.Warnings, 2)
}
