// Package taxmath holds the shared numeric machinery of the engine: the
// progressive-bracket evaluator and the phase-out helpers. Federal and every
// state calculator go through these same functions.
package taxmath

import (
	"fmt"
	"math"
)

// NoLimit marks the top bracket's unbounded upper edge.
const NoLimit int64 = math.MaxInt64

// Bracket is one row of a progressive rate schedule. Max is the bracket's
// upper bound in cents (NoLimit for the top bracket); Rate is the marginal
// rate applied to income within the bracket.
type Bracket struct {
	Max  int64
	Rate float64
}

// RateRow is the compact {max, rate} form rule tables are written in.
// Max <= 0 means unbounded.
type RateRow struct {
	Max  int64
	Rate float64
}

// ConvertToFullBrackets validates a compact rate table and returns the
// bracket schedule the evaluator consumes. Bounds must be strictly
// increasing and only the last row may be unbounded. A malformed table is a
// defect in the rule data, so this panics rather than returning an error.
func ConvertToFullBrackets(rows []RateRow) []Bracket {
	if len(rows) == 0 {
		panic("taxmath: empty bracket table")
	}

	brackets := make([]Bracket, len(rows))
	prev := int64(0)
	for i, row := range rows {
		max := row.Max
		if max <= 0 {
			max = NoLimit
		}
		if i < len(rows)-1 && max == NoLimit {
			panic(fmt.Sprintf("taxmath: unbounded bracket at row %d is not last", i))
		}
		if max != NoLimit && max <= prev {
			panic(fmt.Sprintf("taxmath: bracket bounds not strictly increasing at row %d", i))
		}
		if row.Rate < 0 || row.Rate > 1 {
			panic(fmt.Sprintf("taxmath: bracket rate %v out of range at row %d", row.Rate, i))
		}
		brackets[i] = Bracket{Max: max, Rate: row.Rate}
		prev = max
	}
	if brackets[len(brackets)-1].Max != NoLimit {
		panic("taxmath: top bracket must be unbounded")
	}
	return brackets
}

// TaxFromBrackets computes progressive tax on taxable income in cents.
// The tax on each bracket's slice is rounded to the nearest cent before
// summing; rounding only the final total drifts from the IRS worksheets.
// Zero or negative income yields zero tax. Income exactly on a bracket
// boundary is taxed entirely within the lower bracket.
func TaxFromBrackets(taxable int64, brackets []Bracket) int64 {
	if taxable <= 0 {
		return 0
	}

	var tax int64
	lower := int64(0)
	for _, b := range brackets {
		if taxable <= lower {
			break
		}
		upper := b.Max
		if taxable < upper {
			upper = taxable
		}
		slice := upper - lower
		tax += int64(math.Floor(float64(slice)*b.Rate + 0.5))
		lower = b.Max
	}
	return tax
}

// MarginalRate returns the rate of the bracket containing the given income.
// Income on a boundary belongs to the lower bracket, matching
// TaxFromBrackets. Used for display and multi-year comparisons only.
func MarginalRate(taxable int64, brackets []Bracket) float64 {
	if taxable <= 0 {
		return brackets[0].Rate
	}
	for _, b := range brackets {
		if taxable <= b.Max {
			return b.Rate
		}
	}
	return brackets[len(brackets)-1].Rate
}
