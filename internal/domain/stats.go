package domain

import "math"

// Stats is a user's learning progress
type Stats struct {
	Total   int
	Learned int
	Percent int
}

// NewStats computes the completion percentage.
// Halves round to even, so 1 of 8 is 12%.
func NewStats(total, learned int) Stats {
	if learned < 0 {
		learned = 0
	}
	if learned > total {
		learned = total
	}
	denominator := total
	if denominator < 1 {
		denominator = 1
	}
	percent := int(math.RoundToEven(float64(learned) / float64(denominator) * 100))
	return Stats{Total: total, Learned: learned, Percent: percent}
}
