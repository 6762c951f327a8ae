package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// PercentagePlaces is the precision of the percentage reported by a grading pass.
const PercentagePlaces int32 = 2

// NormalizeAnswer lower-cases s and trims leading and trailing whitespace.
// Inner whitespace and punctuation are kept, so "True!" never equals "true".
func NormalizeAnswer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AnswersMatch is the scoring policy: equality after normalization.
func AnswersMatch(submitted, correct string) bool {
	return NormalizeAnswer(submitted) == NormalizeAnswer(correct)
}

// Percentage returns correct/total*100 rounded half away from zero to two
// decimal places, and 0 when total is 0.
func Percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(int64(correct)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(PercentagePlaces)
	return pct.InexactFloat64()
}
