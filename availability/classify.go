package availability

// HeatLevel buckets a day's booked percentage for calendar-cell coloring.
type HeatLevel string

const (
	HeatLow  HeatLevel = "low"
	HeatMid  HeatLevel = "mid"
	HeatHigh HeatLevel = "high"
)

// Classify maps a booked fraction in [0,1] to its heat bucket. Boundaries
// are inclusive on the upper bucket: exactly 0.7 is high, exactly 0.3 is
// mid. Only "partial" days are classified; other day statuses map straight
// to their own display class.
func Classify(percentage float64) HeatLevel {
	switch {
	case percentage >= 0.7:
		return HeatHigh
	case percentage >= 0.3:
		return HeatMid
	default:
		return HeatLow
	}
}
