package analyzer

import "fmt"

// InsufficientDataError reports that an analysis has less history than
// its minimum sample gate. It is an expected outcome for new habits,
// not a fault: callers should render it as "keep logging" guidance.
type InsufficientDataError struct {
	// Required is the minimum number of records the analysis needs.
	Required int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: need at least %d records", e.Required)
}

// CalculationError reports malformed input (bad date range, invalid
// period, NaN result) or an unexpected internal failure. Unlike
// InsufficientDataError it indicates a genuine defect or bad argument.
type CalculationError struct {
	Reason string
}

func (e *CalculationError) Error() string {
	return "calculation error: " + e.Reason
}

func calcErrorf(format string, args ...any) error {
	return &CalculationError{Reason: fmt.Sprintf(format, args...)}
}
