package config

import "fmt"

// HOSRules is the set of FMCSA regulatory constants the engine plans
// against. A carrier may run an internal policy stricter than the federal
// floor; HOSRules.Validate enforces that an override can only tighten
// these numbers, never loosen them.
type HOSRules struct {
	MaxDrivingPerShift   float64 // hours, federal floor 11.0
	MaxDutyWindow        float64 // hours, federal floor 14.0
	DrivingBeforeBreak   float64 // hours, federal floor 8.0
	BreakDuration        float64 // hours, federal floor 0.5
	RestDuration         float64 // hours, federal floor 10.0
	MaxCycleHours        float64 // hours, federal floor 70.0
	CycleRestartDuration float64 // hours, federal floor 34.0
	FuelIntervalMiles    float64 // miles, federal floor 1000
	FuelStopDuration     float64 // hours, federal floor 0.5
	PickupDropoffDuration float64 // hours
	PreTripInspectionDuration float64 // hours
	ShiftStartHour       float64 // hours since midnight that a shift defaults to starting
	AvgSpeedMPH          float64 // used for the fuel clock and mileage back-projection
}

// federalHOSRules are the exact constants the regulations set; carriers may
// only tighten from here.
var federalHOSRules = HOSRules{
	MaxDrivingPerShift:        11.0,
	MaxDutyWindow:             14.0,
	DrivingBeforeBreak:        8.0,
	BreakDuration:             0.5,
	RestDuration:              10.0,
	MaxCycleHours:             70.0,
	CycleRestartDuration:      34.0,
	FuelIntervalMiles:         1000,
	FuelStopDuration:          0.5,
	PickupDropoffDuration:     1.0,
	PreTripInspectionDuration: 0.5,
	ShiftStartHour:            6.0,
	AvgSpeedMPH:               65,
}

// DefaultHOSRules returns the federal HOS constants unmodified.
func DefaultHOSRules() HOSRules {
	return federalHOSRules
}

// Validate checks that r is at least as strict as the federal floor on
// every bound that protects a driver (lower caps, longer required rests,
// shorter fuel/driving intervals). It returns an error naming the first
// field that loosens the federal rule.
func (r HOSRules) Validate() error {
	tighterOrEqual := []struct {
		name     string
		override float64
		federal  float64
		stricterIsLower bool
	}{
		{"MaxDrivingPerShift", r.MaxDrivingPerShift, federalHOSRules.MaxDrivingPerShift, true},
		{"MaxDutyWindow", r.MaxDutyWindow, federalHOSRules.MaxDutyWindow, true},
		{"DrivingBeforeBreak", r.DrivingBeforeBreak, federalHOSRules.DrivingBeforeBreak, true},
		{"MaxCycleHours", r.MaxCycleHours, federalHOSRules.MaxCycleHours, true},
		{"FuelIntervalMiles", r.FuelIntervalMiles, federalHOSRules.FuelIntervalMiles, true},
		{"BreakDuration", r.BreakDuration, federalHOSRules.BreakDuration, false},
		{"RestDuration", r.RestDuration, federalHOSRules.RestDuration, false},
		{"CycleRestartDuration", r.CycleRestartDuration, federalHOSRules.CycleRestartDuration, false},
	}
	for _, c := range tighterOrEqual {
		if c.stricterIsLower && c.override > c.federal {
			return fmt.Errorf("hos rules: %s override %.2f loosens the federal floor %.2f", c.name, c.override, c.federal)
		}
		if !c.stricterIsLower && c.override < c.federal {
			return fmt.Errorf("hos rules: %s override %.2f loosens the federal floor %.2f", c.name, c.override, c.federal)
		}
	}
	if r.AvgSpeedMPH <= 0 {
		return fmt.Errorf("hos rules: AvgSpeedMPH must be positive, got %.2f", r.AvgSpeedMPH)
	}
	return nil
}
