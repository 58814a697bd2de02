package util

import "math"

// Round1 rounds to one decimal place. Display policy for averages and
// per-topic percentages.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Percent returns 100*part/total, or 0 when total is 0.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}

// RoundScore converts a correct/total ratio into an integer 0..100 score.
func RoundScore(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(total)))
}
