package analyzer

import (
	"math"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

// significantChange is the percentage-change magnitude above which a
// month-over-month move is flagged as significant.
const significantChange = 20.0

// CompareMonths compares two explicit record sets, typically the
// current and previous calendar month. Empty sets are valid and score
// a zero rate.
func CompareMonths(current, previous []habit.CompletionRecord) MonthComparison {
	cur := summarizeMonth(current)
	prev := summarizeMonth(previous)
	change := percentageChange(cur.CompletionRate, prev.CompletionRate)

	return MonthComparison{
		CurrentMonth:     cur,
		PreviousMonth:    prev,
		PercentageChange: change,
		IsSignificant:    math.Abs(change) > significantChange,
	}
}

// summarizeMonth treats every record as one scheduled day and counts
// the completed ones.
func summarizeMonth(records []habit.CompletionRecord) MonthSummary {
	s := MonthSummary{TotalScheduled: len(records)}
	for _, r := range records {
		if r.Completed() {
			s.TotalCompletions++
		}
	}
	if s.TotalScheduled > 0 {
		s.CompletionRate = float64(s.TotalCompletions) / float64(s.TotalScheduled) * 100
	}
	return s
}
