// Package scoring maps a raw test percentage to a qualitative band and
// an estimated IQ figure. The mapping is a fixed lookup table, not a
// calibrated psychometric scale.
package scoring

// Band is one row of the rating table: any percentage at or above
// MinPercent (and below the previous row's) falls in this band.
type Band struct {
	MinPercent  float64
	Label       string
	IQ          int // representative estimated IQ for the band
	Description string
}

// DefaultBands returns the rating table ordered from highest threshold
// to lowest. Evaluation walks the table top-down and the first
// matching threshold wins, so the order is load-bearing.
func DefaultBands() []Band {
	return []Band{
		{95, "Very Superior", 145, "Exceptional intelligence! You're in the top 0.1% of the population."},
		{90, "Superior", 135, "Outstanding performance! You're in the top 2% of the population."},
		{80, "High Average", 125, "Excellent result! Above average intelligence."},
		{70, "Above Average", 115, "Great job! Higher than average cognitive abilities."},
		{50, "Average", 100, "Good performance. You fall within the normal range."},
		{40, "Below Average", 90, "Decent effort. Room for improvement with practice."},
		{30, "Low Average", 85, "Keep at it. Regular practice sharpens these skills."},
		{0, "Borderline", 75, "Keep practicing to improve your cognitive skills."},
	}
}

// Rating is the outcome of evaluating a score against the band table.
type Rating struct {
	Percentage float64
	Band       Band
}

// Percentage computes 100 * score / total, with a zero total mapping
// to zero rather than dividing.
func Percentage(score, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(score) * 100 / float64(total)
}

// Evaluate rates a score out of total against the band table.
func Evaluate(score, total int) Rating {
	return EvaluateWith(DefaultBands(), score, total)
}

// EvaluateWith rates a score against a caller-supplied band table,
// which must be ordered by MinPercent descending.
func EvaluateWith(bands []Band, score, total int) Rating {
	pct := Percentage(score, total)
	for _, b := range bands {
		if pct >= b.MinPercent {
			return Rating{Percentage: pct, Band: b}
		}
	}
	// Only reachable with a table whose last row has MinPercent > 0.
	last := bands[len(bands)-1]
	return Rating{Percentage: pct, Band: last}
}
