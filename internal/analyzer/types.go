// Package analyzer turns raw habit completion history into trend
// statistics, behavioral breakdowns, and confidence-scored insights.
// Every function is pure: it reads only its arguments, allocates only
// its results, and is safe to call concurrently.
package analyzer

// TrendPeriod selects the time horizon of a trend calculation.
type TrendPeriod string

const (
	Trend4Weeks  TrendPeriod = "4W"
	Trend3Months TrendPeriod = "3M"
	Trend6Months TrendPeriod = "6M"
	Trend1Year   TrendPeriod = "1Y"
)

// Direction classifies how a completion rate moved against the
// comparison window.
type Direction string

const (
	DirectionUp     Direction = "up"
	DirectionDown   Direction = "down"
	DirectionStable Direction = "stable" // change within ±5%
)

// DataPoint is one calendar day of a trend series: Value is 1 when any
// record for that day is completed, 0 otherwise.
type DataPoint struct {
	Date  string `json:"date"` // 2006-01-02
	Value int    `json:"value"`
}

// TrendData is the period-scoped trend summary.
type TrendData struct {
	Period TrendPeriod `json:"period"`

	// CompletionRate is the current-window completion percentage, 0-100.
	CompletionRate float64 `json:"completion_rate"`

	// AverageProgress is the summed progress values divided by the
	// calendar days in the window. Nil when no record carries progress.
	AverageProgress *float64 `json:"average_progress,omitempty"`

	// PercentageChange is the signed change versus the comparison
	// window. Unbounded; 100 when history starts inside the window.
	PercentageChange float64 `json:"percentage_change"`

	Direction Direction `json:"direction"`

	// DataPoints covers every calendar day of the current window, in
	// order, so callers can iterate it any number of times.
	DataPoints []DataPoint `json:"data_points"`
}

// DayStats is the completion summary for a single weekday.
type DayStats struct {
	CompletionRate   float64 `json:"completion_rate"`
	TotalCompletions int     `json:"total_completions"`
	TotalScheduled   int     `json:"total_scheduled"`
}

// DayOfWeekStats buckets completion history by weekday.
type DayOfWeekStats struct {
	// Days maps weekday name ("monday".."sunday") to its stats.
	// Iterate via Weekdays for a reproducible Monday-to-Sunday order.
	Days map[string]DayStats `json:"days"`

	BestDay  string `json:"best_day"`
	WorstDay string `json:"worst_day"`
}

// TimeDistribution buckets completions by hour of day.
type TimeDistribution struct {
	// HourlyDistribution maps hour 0-23 to completed-record count.
	// All 24 hours are present, zero counts included.
	HourlyDistribution map[int]int `json:"hourly_distribution"`

	// PeakHours are up to three hours ranked by descending count,
	// earlier hours first on ties.
	PeakHours []int `json:"peak_hours"`

	// OptimalReminderTimes suggests one hour before each peak,
	// deduplicated in first-seen order.
	OptimalReminderTimes []int `json:"optimal_reminder_times"`
}

// MonthSummary is one month's side of a month comparison.
type MonthSummary struct {
	CompletionRate   float64 `json:"completion_rate"`
	TotalCompletions int     `json:"total_completions"`
	TotalScheduled   int     `json:"total_scheduled"`
}

// MonthComparison compares two explicit record sets.
type MonthComparison struct {
	CurrentMonth     MonthSummary `json:"current_month"`
	PreviousMonth    MonthSummary `json:"previous_month"`
	PercentageChange float64      `json:"percentage_change"`

	// IsSignificant is true when the change exceeds 20% in magnitude.
	IsSignificant bool `json:"is_significant"`
}

// ConfidenceLevel is the coarse trust classification for an insight.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// InsightType identifies which detector produced an insight.
type InsightType string

const (
	InsightDayOfWeekPattern InsightType = "day-of-week-pattern"
	InsightTimeOfDayPattern InsightType = "time-of-day-pattern"
	InsightWeekendBehavior  InsightType = "weekend-behavior"
	InsightTimingImpact     InsightType = "timing-impact"

	// InsightStreakCorrelation is declared but not yet emitted by any
	// detector.
	InsightStreakCorrelation InsightType = "streak-correlation"
)

// Insight is one natural-language conclusion about completion behavior.
type Insight struct {
	// ID is opaque to callers and deterministic for identical input.
	ID string `json:"id"`

	Type    InsightType `json:"type"`
	Message string      `json:"message"`

	Confidence ConfidenceLevel `json:"confidence"`

	// DataSupport is the sample size that backed the conclusion.
	DataSupport int `json:"data_support"`

	Actionable     bool   `json:"actionable"`
	Recommendation string `json:"recommendation,omitempty"`
}
