package analyzer

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/fernwood-labs/habitlens/internal/habit"
)

var trendNow = day(2025, time.June, 30)

func TestTrend_InsufficientData(t *testing.T) {
	// Exactly 6 days of records for a 4W trend: one short of the gate.
	records := dailyRecords(trendNow.AddDate(0, 0, -5), 6, func(time.Time) bool { return true })

	_, err := Trend(records, Trend4Weeks, trendNow)
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %v", err)
	}
	if insufficient.Required != 7 {
		t.Errorf("expected required minimum 7, got %d", insufficient.Required)
	}
}

func TestTrend_MinimumsPerPeriod(t *testing.T) {
	minimums := map[TrendPeriod]int{
		Trend4Weeks:  7,
		Trend3Months: 14,
		Trend6Months: 30,
		Trend1Year:   60,
	}

	for period, want := range minimums {
		_, err := Trend(nil, period, trendNow)
		var insufficient *InsufficientDataError
		if !errors.As(err, &insufficient) {
			t.Fatalf("%s: expected InsufficientDataError, got %v", period, err)
		}
		if insufficient.Required != want {
			t.Errorf("%s: expected minimum %d, got %d", period, want, insufficient.Required)
		}
	}
}

func TestTrend_UnknownPeriod(t *testing.T) {
	_, err := Trend(nil, TrendPeriod("2W"), trendNow)
	var calcErr *CalculationError
	if !errors.As(err, &calcErr) {
		t.Fatalf("expected CalculationError for unknown period, got %v", err)
	}
}

func TestTrend_NoHistoryMeansFullImprovement(t *testing.T) {
	// Records only inside the current window: previous rate is 0, any
	// current activity reads as +100%.
	records := dailyRecords(trendNow.AddDate(0, 0, -13), 14, func(time.Time) bool { return true })

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.PercentageChange != 100 {
		t.Errorf("expected +100%% with no prior history, got %.2f", td.PercentageChange)
	}
	if td.Direction != DirectionUp {
		t.Errorf("expected direction up, got %q", td.Direction)
	}
}

func TestTrend_StableWithinBand(t *testing.T) {
	// Both windows fully completed: zero change.
	start := trendNow.AddDate(0, 0, -56)
	records := dailyRecords(start, 57, func(time.Time) bool { return true })

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.Direction != DirectionStable {
		t.Errorf("expected stable direction, got %q (change %.2f)", td.Direction, td.PercentageChange)
	}
}

func TestTrend_DirectionDown(t *testing.T) {
	// Previous window fully completed, current window mostly missed.
	var records []habit.CompletionRecord
	records = append(records, dailyRecords(trendNow.AddDate(0, 0, -56), 28, func(time.Time) bool { return true })...)
	records = append(records, dailyRecords(trendNow.AddDate(0, 0, -27), 28, func(d time.Time) bool { return d.Day()%4 == 0 })...)

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.Direction != DirectionDown {
		t.Errorf("expected direction down, got %q (change %.2f)", td.Direction, td.PercentageChange)
	}
	if td.PercentageChange >= 0 {
		t.Errorf("expected negative change, got %.2f", td.PercentageChange)
	}
}

func TestTrend_DataPointsSpanWindow(t *testing.T) {
	records := dailyRecords(trendNow.AddDate(0, 0, -27), 28, func(time.Time) bool { return true })

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One point per calendar day from windowStart to now inclusive.
	if len(td.DataPoints) != 29 {
		t.Fatalf("expected 29 data points, got %d", len(td.DataPoints))
	}
	if td.DataPoints[0].Date != "2025-06-02" {
		t.Errorf("expected first point 2025-06-02, got %s", td.DataPoints[0].Date)
	}
	if last := td.DataPoints[len(td.DataPoints)-1]; last.Date != "2025-06-30" {
		t.Errorf("expected last point 2025-06-30, got %s", last.Date)
	}

	// The first day has no record: value 0. Every recorded day: 1.
	if td.DataPoints[0].Value != 0 {
		t.Errorf("expected 0 for unrecorded day, got %d", td.DataPoints[0].Value)
	}
	for _, p := range td.DataPoints[1:] {
		if p.Value != 1 {
			t.Errorf("expected 1 for completed day %s, got %d", p.Date, p.Value)
		}
	}
}

func TestTrend_AverageProgressPerCalendarDay(t *testing.T) {
	records := dailyRecords(trendNow.AddDate(0, 0, -27), 28, func(time.Time) bool { return true })
	// Only two records carry progress; the divisor is still the 29
	// calendar days of the window.
	p1, p2 := 10.0, 19.0
	records[0].Progress = &p1
	records[1].Progress = &p2

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.AverageProgress == nil {
		t.Fatal("expected average progress to be set")
	}
	if *td.AverageProgress != 1.0 {
		t.Errorf("expected 29/29 days = 1.0, got %.4f", *td.AverageProgress)
	}
}

func TestTrend_NoProgressOmitted(t *testing.T) {
	records := dailyRecords(trendNow.AddDate(0, 0, -27), 28, func(time.Time) bool { return true })

	td, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if td.AverageProgress != nil {
		t.Errorf("expected nil average progress, got %.2f", *td.AverageProgress)
	}
}

func TestTrend_Deterministic(t *testing.T) {
	records := dailyRecords(trendNow.AddDate(0, 0, -27), 28, func(d time.Time) bool { return d.Day()%3 != 0 })

	first, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Trend(records, Trend4Weeks, trendNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs must produce identical trend output")
	}
}

func TestClassifyDirection_Band(t *testing.T) {
	cases := []struct {
		change float64
		want   Direction
	}{
		{0, DirectionStable},
		{5, DirectionStable},
		{-5, DirectionStable},
		{5.01, DirectionUp},
		{-5.01, DirectionDown},
		{100, DirectionUp},
	}
	for _, tc := range cases {
		if got := classifyDirection(tc.change); got != tc.want {
			t.Errorf("change %.2f: expected %q, got %q", tc.change, tc.want, got)
		}
	}
}

func TestPercentageChange_ZeroPrevious(t *testing.T) {
	if got := percentageChange(0, 0); got != 0 {
		t.Errorf("expected 0 for no activity either side, got %.2f", got)
	}
	if got := percentageChange(40, 0); got != 100 {
		t.Errorf("expected 100 for fresh activity, got %.2f", got)
	}
	if got := percentageChange(80, 50); got != 60 {
		t.Errorf("expected 60, got %.2f", got)
	}
}
