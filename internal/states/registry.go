// Package states holds the per-jurisdiction calculator registry. Every state
// (plus DC) has one entry pairing its Config with a calculator sharing the
// federal pipeline's conceptual shape: AGI in, deduction, taxable income,
// tax, credits, payments, refund or owe.
//
// The registry is built once at init and read-only afterwards, so it is
// safely shareable across concurrent calculations without locking. Adding a
// jurisdiction is an additive registration, never an edit to another state's
// rules.
package states

import (
	"sort"
	"strings"

	"github.com/ustaxcalc/ustax-api/internal/types"
)

// Config is the static metadata for one jurisdiction.
type Config struct {
	Code                 string  `json:"code"`
	Name                 string  `json:"name"`
	HasIncomeTax         bool    `json:"has_income_tax"`
	HasLocalTax          bool    `json:"has_local_tax"`
	HasStandardDeduction bool    `json:"has_standard_deduction"`
	HasPersonalExemption bool    `json:"has_personal_exemption"`
	EITCPercent          float64 `json:"eitc_percent"`
}

// Calculator computes one state return from the shared input shape.
type Calculator func(input *types.StateTaxInput) *types.StateResult

// Entry is what a registry lookup returns.
type Entry struct {
	Config    Config
	Calculate Calculator
}

var registry = map[string]Entry{}

// register installs one jurisdiction. Called only from package init; a
// duplicate code is a defect in the rule tables.
func register(cfg Config, calc Calculator) {
	if _, exists := registry[cfg.Code]; exists {
		panic("states: duplicate registration for " + cfg.Code)
	}
	registry[cfg.Code] = Entry{Config: cfg, Calculate: calc}
}

// Lookup returns the entry for a state code, case-insensitively, or nil for
// an unknown jurisdiction. Callers must treat nil as "not supported", which
// is distinct from a no-tax state's zero-tax result.
func Lookup(code string) *Entry {
	entry, ok := registry[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil
	}
	return &entry
}

// Codes returns every registered state code, sorted.
func Codes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Configs returns every registered Config, sorted by code.
func Configs() []Config {
	configs := make([]Config, 0, len(registry))
	for _, code := range Codes() {
		configs = append(configs, registry[code].Config)
	}
	return configs
}
