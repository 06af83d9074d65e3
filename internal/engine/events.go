package engine

import "github.com/draymaster/hos-planner/internal/domain"

// takeBreak records the mandatory 30-minute break once 8 hours of
// consecutive driving have accrued. The break is logged as off_duty; its
// duration counts against the 14-hour window (I7) but never against the
// 70-hour cycle, and it resets the driving-since-break counter.
func (s *simState) takeBreak() {
	s.recordSpread(domain.StatusOffDuty, s.rules.BreakDuration, "30-min break", true, false)
	s.drivingSinceBreak = 0.0
}

// takeFuelStop appends a fuel stop marker and records the 30-minute
// refueling window as on-duty time, then resets the fuel-mileage counter.
// Fuel stops are emitted at (0, 0); interpolating the true roadside
// coordinate from route geometry is left to the caller.
func (s *simState) takeFuelStop(nearLocation string) {
	note := "Fuel stop"
	locationLabel := "En route"
	if nearLocation != "" {
		note = "Fuel stop near " + nearLocation
		locationLabel = nearLocation
	}
	duration := s.rules.FuelStopDuration
	s.stops = append(s.stops, domain.Stop{
		Type:        domain.StopFuel,
		Location:    locationLabel,
		Lat:         0,
		Lng:         0,
		Time:        formatTime(s.currentTime),
		Day:         s.currentDay,
		DurationHrs: &duration,
	})
	s.addOnDuty(duration, note)
	s.milesSinceFuel = 0.0
}

// takeRest records the 10-hour consolidated sleeper-berth rest between
// shifts, resets the per-shift counters, and opens the next shift with a
// pre-trip inspection.
func (s *simState) takeRest(nearLocation string) {
	if nearLocation != "" {
		duration := s.rules.RestDuration
		s.stops = append(s.stops, domain.Stop{
			Type:        domain.StopRest,
			Location:    nearLocation,
			Lat:         0,
			Lng:         0,
			Time:        formatTime(s.currentTime),
			Day:         s.currentDay,
			DurationHrs: &duration,
		})
	}
	s.recordSpread(domain.StatusSleeper, s.rules.RestDuration, "Sleeper Berth", false, false)

	s.shiftDriving = 0.0
	s.shiftDuty = 0.0
	s.drivingSinceBreak = 0.0

	s.addOnDuty(s.rules.PreTripInspectionDuration, "Pre-trip inspection")
}

// takeRestart records the 34-hour cycle restart, zeroing the cycle along
// with every shift counter, and opens the next shift with a pre-trip
// inspection.
func (s *simState) takeRestart() {
	duration := s.rules.CycleRestartDuration
	s.stops = append(s.stops, domain.Stop{
		Type:        domain.StopRest,
		Location:    "En route (34hr restart)",
		Lat:         0,
		Lng:         0,
		Time:        formatTime(s.currentTime),
		Day:         s.currentDay,
		DurationHrs: &duration,
	})
	s.recordSpread(domain.StatusSleeper, s.rules.CycleRestartDuration, "34-hour restart", false, false)

	s.shiftDriving = 0.0
	s.shiftDuty = 0.0
	s.drivingSinceBreak = 0.0
	s.cycleHours = 0.0

	s.addOnDuty(s.rules.PreTripInspectionDuration, "Pre-trip inspection")
}

// ensureCanWork guarantees the driver can perform duration hours of
// on-duty, non-driving work before it is booked. Cycle exhaustion takes
// priority over window exhaustion; only one corrective action is taken.
func (s *simState) ensureCanWork(duration float64) {
	availableWindow := s.rules.MaxDutyWindow - s.shiftDuty
	availableCycle := s.rules.MaxCycleHours - s.cycleHours

	switch {
	case availableCycle < duration:
		s.takeRestart()
	case availableWindow < duration:
		s.takeRest("")
	}
}
