// Package money provides integer-cents currency conversion and arithmetic.
//
// Every monetary quantity in the engine is an int64 number of cents;
// decimal-dollar strings exist only at the API boundary. Parsing comes in
// two modes: a strict mode returning a tagged ParseResult for callers that
// need to distinguish failure causes, and a lenient mode that maps any
// failure to zero plus a warning so one bad field never aborts a return.
package money

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCents is the largest amount the engine accepts: $10 billion in cents.
// Anything larger is almost certainly corrupted input.
const MaxCents int64 = 1_000_000_000_000

// ParseErrorCode identifies why a strict parse failed.
type ParseErrorCode string

const (
	ErrInvalidString ParseErrorCode = "INVALID_STRING"
	ErrNegativeValue ParseErrorCode = "NEGATIVE_VALUE"
	ErrInfiniteValue ParseErrorCode = "INFINITE_VALUE"
	ErrInvalidType   ParseErrorCode = "INVALID_TYPE"
	ErrExceedsMax    ParseErrorCode = "EXCEEDS_MAX"
)

// ParseResult is the tagged outcome of a strict currency parse. The original
// input is preserved so diagnostics can echo exactly what the caller sent.
type ParseResult struct {
	Cents int64
	OK    bool
	Code  ParseErrorCode
	Input string
}

// ParseCents strictly converts a currency string to cents. Accepted forms:
// "1234.56", "$1,234.56", "1234", " $42 ". Negative amounts are rejected;
// fields documented as signed parse their sign at the type layer, not here.
func ParseCents(s string) ParseResult {
	original := s
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	if s == "" {
		return ParseResult{OK: false, Code: ErrInvalidString, Input: original}
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ParseResult{OK: false, Code: ErrInvalidString, Input: original}
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return ParseResult{OK: false, Code: ErrInfiniteValue, Input: original}
	}
	if f < 0 {
		return ParseResult{OK: false, Code: ErrNegativeValue, Input: original}
	}

	cents := FromDollars(f)
	if cents > MaxCents {
		return ParseResult{OK: false, Code: ErrExceedsMax, Input: original}
	}
	return ParseResult{Cents: cents, OK: true, Input: original}
}

// ParseCentsLenient converts a currency string to cents, defaulting
// unparseable input to zero. The second return reports whether the input
// was degraded, so the caller can attach a warning diagnostic.
func ParseCentsLenient(s string) (int64, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	r := ParseCents(s)
	if !r.OK {
		return 0, true
	}
	return r.Cents, false
}

// FromDollars converts a dollar amount to cents, rounding half away from
// zero. Round-trip law: ToDollars(FromDollars(d)) == d for any amount
// exactly representable in cents.
func FromDollars(d float64) int64 {
	if d >= 0 {
		return int64(math.Floor(d*100 + 0.5))
	}
	return -int64(math.Floor(-d*100 + 0.5))
}

// ToDollars converts cents to a dollar amount.
func ToDollars(c int64) float64 {
	return float64(c) / 100
}

// FormatDollars renders cents as a plain "1234.56" decimal string.
func FormatDollars(c int64) string {
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}

// SubFloor subtracts b from a, flooring the result at zero. Tax arithmetic
// almost never goes negative; the places that do (refund vs owe) subtract
// directly.
func SubFloor(a, b int64) int64 {
	if a <= b {
		return 0
	}
	return a - b
}

// MulRate multiplies cents by a fractional rate, rounding half up to the
// nearest cent. This is the default rounding everywhere a rule does not say
// otherwise.
func MulRate(c int64, rate float64) int64 {
	return int64(math.Floor(float64(c)*rate + 0.5))
}

// MulRateBankers multiplies cents by a rate using half-to-even rounding.
// Used only where a specific rule calls for unbiased rounding.
func MulRateBankers(c int64, rate float64) int64 {
	return int64(math.RoundToEven(float64(c) * rate))
}

// Min returns the smaller of two cent amounts.
func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two cent amounts.
func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
