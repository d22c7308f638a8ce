package engine

import (
	"fmt"
	"math"
)

// Scale applies ratio-based population scaling with optional dampening and
// returns the scaled value together with an always-English arithmetic note
// that stays numerically consistent with the returned value.
func Scale(base float64, sourcePop, targetPop int64, dampening float64) (int64, string) {
	if dampening <= 0 {
		dampening = 1.0
	}
	scaled := int64(math.Round(base * float64(targetPop) / float64(sourcePop) * dampening))
	note := fmt.Sprintf("round(%s × %s / %s × %.2f) = %s",
		trimFloat(base), groupDigits(targetPop), groupDigits(sourcePop), dampening, groupDigits(scaled))
	return scaled, note
}

// Perturb applies a bounded seeded variance of ±variance to a value. The
// perturbation is deterministic: the same seed always yields the same factor.
func Perturb(seed string, value int64, variance float64) (int64, string) {
	if variance <= 0 {
		return value, ""
	}
	factor := 1 - variance + 2*variance*Fraction(seed+":variance")
	perturbed := int64(math.Round(float64(value) * factor))
	note := fmt.Sprintf("±%.0f%% variance: round(%s × %.4f) = %s",
		variance*100, groupDigits(value), factor, groupDigits(perturbed))
	return perturbed, note
}

// trimFloat formats a float without a trailing ".0" for whole values.
func trimFloat(f float64) string {
	if f == math.Trunc(f) {
		return groupDigits(int64(f))
	}
	return fmt.Sprintf("%g", f)
}

// groupDigits formats an integer with comma grouping. Scaling notes are
// always English, independent of the display language.
func groupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
