package taxmath

import "math"

// ReduceByExcess applies a step phase-out: the benefit is reduced by
// reductionPerStep for every stepSize of income over threshold, with the
// excess rounded up to the next full step first. This is the CTC's
// $50-per-$1,000 rule. The result floors at zero.
func ReduceByExcess(base, income, threshold, stepSize, reductionPerStep int64) int64 {
	if income <= threshold || base <= 0 {
		return base
	}
	excess := income - threshold
	steps := (excess + stepSize - 1) / stepSize
	reduction := steps * reductionPerStep
	if reduction >= base {
		return 0
	}
	return base - reduction
}

// RemainingFraction is the linear ratio phase-out used by the education
// credits and the QBI applicable percentage: 1.0 at or below phaseOutStart,
// 0.0 at or above phaseOutEnd, linear in between.
func RemainingFraction(income, phaseOutStart, phaseOutEnd int64) float64 {
	if phaseOutEnd <= phaseOutStart {
		panic("taxmath: phase-out end must exceed start")
	}
	if income <= phaseOutStart {
		return 1.0
	}
	if income >= phaseOutEnd {
		return 0.0
	}
	return float64(phaseOutEnd-income) / float64(phaseOutEnd-phaseOutStart)
}

// ApplyRemainingFraction scales a cent amount by the remaining fraction,
// rounding half up.
func ApplyRemainingFraction(amount, income, phaseOutStart, phaseOutEnd int64) int64 {
	f := RemainingFraction(income, phaseOutStart, phaseOutEnd)
	if f >= 1.0 {
		return amount
	}
	if f <= 0.0 {
		return 0
	}
	return int64(math.Floor(float64(amount)*f + 0.5))
}

// PhaseOutByRate reduces base by rate times the income over threshold,
// flooring at zero. This is the EITC-style continuous phase-out.
func PhaseOutByRate(base, income, threshold int64, rate float64) int64 {
	if income <= threshold || base <= 0 {
		return base
	}
	reduction := int64(math.Floor(float64(income-threshold)*rate + 0.5))
	if reduction >= base {
		return 0
	}
	return base - reduction
}
