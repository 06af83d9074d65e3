package engine

import (
	"math"
	"testing"
	"time"

	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
)

func testLocations() domain.Locations {
	return domain.Locations{
		Current: domain.Location{Name: "Origin", Lat: 34.0, Lng: -118.0},
		Pickup:  domain.Location{Name: "Pickup", Lat: 35.0, Lng: -117.0},
		Dropoff: domain.Location{Name: "Dropoff", Lat: 36.0, Lng: -116.0},
	}
}

func startDate(t *testing.T) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", "2025-01-01")
	if err != nil {
		t.Fatalf("parse fixed start date: %v", err)
	}
	return d
}

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func countStopsByType(result *domain.TripResult, stopType domain.StopType) int {
	n := 0
	for _, s := range result.Stops {
		if s.Type == stopType {
			n++
		}
	}
	return n
}

// Scenario 1: short trip, no break needed.
func TestPlan_ShortTripNoBreak(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 100, DurationHours: 1.54},
			{DistanceMiles: 80, DurationHours: 1.23},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if result.TotalDays != 1 {
		t.Errorf("expected 1 day, got %d", result.TotalDays)
	}
	if n := countStopsByType(result, domain.StopFuel); n != 0 {
		t.Errorf("expected no fuel stops, got %d", n)
	}
	if n := countStopsByType(result, domain.StopRest); n != 0 {
		t.Errorf("expected no rest stops, got %d", n)
	}

	want := 1.54 + 1.23 + 0.5 + 1 + 1
	if !almostEqual(result.CycleSummary.OnDutyThisTrip, want, 0.05) {
		t.Errorf("on_duty_this_trip = %v, want ~%v", result.CycleSummary.OnDutyThisTrip, want)
	}
}

// Scenario 2: a single 30-minute break after 8 hours of cumulative driving.
func TestPlan_SingleBreak(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 400, DurationHours: 6.15},
			{DistanceMiles: 200, DurationHours: 3.08},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	breakSegments := 0
	for _, day := range result.DailyLogs {
		for _, seg := range day.Segments {
			if seg.Status == domain.StatusOffDuty && seg.Note == "30-min break" {
				breakSegments++
			}
		}
	}
	if breakSegments != 1 {
		t.Errorf("expected exactly one 30-min break segment, got %d", breakSegments)
	}
	if result.TotalDays != 1 {
		t.Errorf("expected 1 day, got %d", result.TotalDays)
	}
}

// Scenario 3: a 10-hour rest is forced mid-leg by the shift driving cap.
func TestPlan_RequiresTenHourRest(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 700, DurationHours: 10.77},
			{DistanceMiles: 100, DurationHours: 1.54},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if result.TotalDays < 2 {
		t.Errorf("expected at least 2 days, got %d", result.TotalDays)
	}
	restStops := 0
	for _, s := range result.Stops {
		if s.Type == domain.StopRest && s.DurationHrs != nil && *s.DurationHrs == 10 {
			restStops++
		}
	}
	if restStops != 1 {
		t.Errorf("expected exactly one 10-hour rest stop, got %d", restStops)
	}
}

// Scenario 4: a long first leg forces a fuel stop before mile 1001.
func TestPlan_RequiresFuelStop(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 1100, DurationHours: 16.92},
			{DistanceMiles: 50, DurationHours: 0.77},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if n := countStopsByType(result, domain.StopFuel); n < 1 {
		t.Errorf("expected at least one fuel stop, got %d", n)
	}
	if n := countStopsByType(result, domain.StopRest); n < 1 {
		t.Errorf("expected at least one rest stop, got %d", n)
	}
}

// Scenario 5: a near-exhausted cycle forces a 34-hour restart mid-trip.
func TestPlan_ForcesCycleRestart(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 2000, DurationHours: 30.77},
			{DistanceMiles: 500, DurationHours: 7.69},
		},
		CycleUsed: 65,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if result.CycleSummary.CycleAfter > 70.0+epsilon {
		t.Errorf("cycle_after = %v, want <= 70", result.CycleSummary.CycleAfter)
	}

	restarts := 0
	for _, s := range result.Stops {
		if s.Type == domain.StopRest && s.Location == "En route (34hr restart)" {
			restarts++
		}
	}
	if restarts != 1 {
		t.Errorf("expected exactly one 34hr restart stop, got %d", restarts)
	}
}

// Scenario 6: a long day forces a midnight crossover into a second
// calendar day.
func TestPlan_MidnightCrossover(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 650, DurationHours: 10.0},
			{DistanceMiles: 650, DurationHours: 10.0},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if len(result.DailyLogs) < 2 {
		t.Fatalf("expected at least 2 daily logs, got %d", len(result.DailyLogs))
	}
	if result.DailyLogs[0].Date != "2025-01-01" {
		t.Errorf("day 0 date = %s, want 2025-01-01", result.DailyLogs[0].Date)
	}
	if result.DailyLogs[1].Date != "2025-01-02" {
		t.Errorf("day 1 date = %s, want 2025-01-02", result.DailyLogs[1].Date)
	}
	lastSegOfDay0 := result.DailyLogs[0].Segments[len(result.DailyLogs[0].Segments)-1]
	if lastSegOfDay0.End != 24.0 {
		t.Errorf("day 0 last segment end = %v, want 24.0", lastSegOfDay0.End)
	}
	if result.DailyLogs[1].Segments[0].Start != 0.0 {
		t.Errorf("day 1 first segment start = %v, want 0.0", result.DailyLogs[1].Segments[0].Start)
	}
}

// P1: day coverage — every day's segments are contiguous and span exactly
// [0, 24].
func TestPlan_DayCoverage(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 900, DurationHours: 13.0},
			{DistanceMiles: 600, DurationHours: 9.0},
		},
		CycleUsed: 10,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	for _, day := range result.DailyLogs {
		var total float64
		for i, seg := range day.Segments {
			total += seg.Duration()
			if i > 0 && seg.Start != day.Segments[i-1].End {
				t.Errorf("day %d: segment %d not contiguous with previous", day.Day, i)
			}
		}
		if !almostEqual(total, 24.0, 0.01) {
			t.Errorf("day %d: segments sum to %v, want 24.0", day.Day, total)
		}
		if day.Segments[0].Start != 0 {
			t.Errorf("day %d: first segment starts at %v, want 0", day.Day, day.Segments[0].Start)
		}
		if day.Segments[len(day.Segments)-1].End != 24.0 {
			t.Errorf("day %d: last segment ends at %v, want 24.0", day.Day, day.Segments[len(day.Segments)-1].End)
		}
	}
}

// P2: limit compliance, cycle part — a long multi-day trip never leaves
// cycle_after above the 70-hour bound.
func TestPlan_LimitCompliance(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 2500, DurationHours: 38.0},
			{DistanceMiles: 1200, DurationHours: 18.0},
		},
		CycleUsed: 20,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if result.CycleSummary.CycleAfter > 70.0+epsilon {
		t.Errorf("cycle_after = %v exceeds 70", result.CycleSummary.CycleAfter)
	}
}

// P6: cycle accounting ties cycle_before + on_duty_this_trip = cycle_after.
func TestPlan_CycleAccounting(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 300, DurationHours: 5.0},
			{DistanceMiles: 150, DurationHours: 2.5},
		},
		CycleUsed: 12,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	cs := result.CycleSummary
	if !almostEqual(cs.CycleBefore+cs.OnDutyThisTrip, cs.CycleAfter, 0.1) {
		t.Errorf("cycle_before(%v) + on_duty_this_trip(%v) != cycle_after(%v)", cs.CycleBefore, cs.OnDutyThisTrip, cs.CycleAfter)
	}
}

// P8: determinism — identical inputs produce identical outputs.
func TestPlan_Deterministic(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 430, DurationHours: 6.6},
			{DistanceMiles: 310, DurationHours: 4.8},
		},
		CycleUsed: 15,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	r1, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	r2, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if len(r1.DailyLogs) != len(r2.DailyLogs) || r1.TotalMiles != r2.TotalMiles ||
		r1.TotalDrivingHours != r2.TotalDrivingHours || r1.CycleSummary != r2.CycleSummary {
		t.Errorf("two Plan calls on identical input diverged: %+v vs %+v", r1.CycleSummary, r2.CycleSummary)
	}
}

// P9: clock formatting.
func TestFormatTime(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0.0, "12:00 AM"},
		{12.0, "12:00 PM"},
		{13.5, "1:30 PM"},
		{23.75, "11:45 PM"},
	}
	for _, c := range cases {
		if got := formatTime(c.hours); got != c.want {
			t.Errorf("formatTime(%v) = %q, want %q", c.hours, got, c.want)
		}
	}
}

// Invalid leg counts or malformed requests are the validation package's
// job, not the engine's — Plan trusts its input and a zero-length leg
// simply contributes no driving, exercised here as a boundary case.
func TestPlan_ZeroDurationLegsStillProducesOneDay(t *testing.T) {
	req := domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 0, DurationHours: 0},
			{DistanceMiles: 0, DurationHours: 0},
		},
		CycleUsed: 0,
		Locations: testLocations(),
		StartDate: startDate(t),
	}

	result, err := Plan(req, config.DefaultHOSRules())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if result.TotalDays != 1 {
		t.Errorf("expected 1 day, got %d", result.TotalDays)
	}
}
