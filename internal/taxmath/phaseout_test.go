package taxmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ustaxcalc/ustax-api/internal/taxmath"
)

func TestReduceByExcess(t *testing.T) {
	// CTC-style: $50 per full or partial $1,000 of income over the
	// threshold. All values in cents.
	const (
		base      = 200_000   // $2,000
		threshold = 5_000_000 // $50,000
		step      = 100_000   // $1,000
		reduction = 5_000     // $50
	)

	tests := []struct {
		name   string
		income int64
		want   int64
	}{
		{"at threshold", 5_000_000, 200_000},
		{"below threshold", 4_000_000, 200_000},
		{"one dollar over rounds up to a full step", 5_000_100, 195_000},
		{"exactly one step over", 5_100_000, 195_000},
		{"fully phased out", 9_100_000, 0},
		{"far past phase-out floors at zero", 20_000_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := taxmath.ReduceByExcess(base, tt.income, threshold, step, reduction)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRemainingFraction(t *testing.T) {
	const start, end = 8_000_000, 9_000_000 // $80k–$90k

	// Exactly 1.0 at or below the threshold.
	assert.Equal(t, 1.0, taxmath.RemainingFraction(start, start, end))
	assert.Equal(t, 1.0, taxmath.RemainingFraction(0, start, end))
	// Exactly 0.0 at or above the completion point.
	assert.Equal(t, 0.0, taxmath.RemainingFraction(end, start, end))
	assert.Equal(t, 0.0, taxmath.RemainingFraction(end+1, start, end))
	// Linear in between.
	assert.InDelta(t, 0.5, taxmath.RemainingFraction(8_500_000, start, end), 1e-12)
	assert.InDelta(t, 0.25, taxmath.RemainingFraction(8_750_000, start, end), 1e-12)

	assert.Panics(t, func() {
		taxmath.RemainingFraction(0, end, start)
	})
}

func TestApplyRemainingFraction(t *testing.T) {
	const start, end = 8_000_000, 9_000_000

	assert.Equal(t, int64(250_000), taxmath.ApplyRemainingFraction(250_000, start, start, end))
	assert.Equal(t, int64(0), taxmath.ApplyRemainingFraction(250_000, end, start, end))
	assert.Equal(t, int64(125_000), taxmath.ApplyRemainingFraction(250_000, 8_500_000, start, end))
}

func TestPhaseOutByRate(t *testing.T) {
	// EITC-style continuous phase-out at 15.98%.
	base := int64(432_800)
	threshold := int64(2_335_000)

	assert.Equal(t, base, taxmath.PhaseOutByRate(base, threshold, threshold, 0.1598))
	assert.Equal(t, base, taxmath.PhaseOutByRate(base, threshold-100, threshold, 0.1598))

	got := taxmath.PhaseOutByRate(base, 2_500_000, threshold, 0.1598)
	assert.Equal(t, int64(432_800-26_367), got)

	assert.Equal(t, int64(0), taxmath.PhaseOutByRate(base, 10_000_000, threshold, 0.1598))
}
