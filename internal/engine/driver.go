package engine

import (
	"strings"

	"github.com/draymaster/hos-planner/internal/apperrors"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
)

// Plan is the engine's single entry point: a pure function of its
// arguments that simulates the full two-leg trip under the given HOS
// rules and returns the chronological stop list, per-day ELD segments,
// and post-trip cycle accounting. It performs no I/O and holds no state
// between calls.
func Plan(req domain.TripRequest, rules config.HOSRules) (*domain.TripResult, error) {
	cycleUsed := req.CycleUsed
	s := newSimState(rules, cycleUsed, req.StartDate)

	// Off-duty from midnight to shift start, then the opening stop and
	// pre-trip inspection.
	if rules.ShiftStartHour > 0 {
		s.addSegment(domain.StatusOffDuty, rules.ShiftStartHour, "Off Duty")
	}
	s.currentTime = rules.ShiftStartHour

	s.stops = append(s.stops, domain.Stop{
		Type:     domain.StopStart,
		Location: req.Locations.Current.Name,
		Lat:      req.Locations.Current.Lat,
		Lng:      req.Locations.Current.Lng,
		Time:     formatTime(rules.ShiftStartHour),
		Day:      1,
	})

	s.shiftStarted = true
	s.addOnDuty(rules.PreTripInspectionDuration, "Pre-trip inspection, "+req.Locations.Current.Name)

	legStops := [2]domain.Stop{}
	legTypes := [2]domain.StopType{domain.StopPickup, domain.StopDropoff}
	legLocations := [2]domain.Location{req.Locations.Pickup, req.Locations.Dropoff}

	for i := 0; i < 2; i++ {
		leg := req.Legs[i]
		loc := legLocations[i]
		stopType := legTypes[i]

		if err := s.driveLeg(leg.DistanceMiles, leg.DurationHours, loc.Name); err != nil {
			return nil, err
		}

		duration := rules.PickupDropoffDuration
		legStops[i] = domain.Stop{
			Type:        stopType,
			Location:    loc.Name,
			Lat:         loc.Lat,
			Lng:         loc.Lng,
			Time:        formatTime(s.currentTime),
			Day:         s.currentDay,
			DurationHrs: &duration,
		}
		s.stops = append(s.stops, legStops[i])

		s.ensureCanWork(rules.PickupDropoffDuration)
		s.addOnDuty(rules.PickupDropoffDuration, titleCase(string(stopType))+", "+loc.Name)
	}

	remaining := 24.0 - s.currentTime
	if remaining > 0 {
		s.addSegment(domain.StatusOffDuty, remaining, "Off Duty — Trip Complete")
	}
	s.saveDay()

	if err := checkInvariants(s); err != nil {
		return nil, err
	}

	onDutyThisTrip := round1(s.cycleHours - cycleUsed)
	cycleAfter := round1(s.cycleHours)

	return &domain.TripResult{
		TotalMiles:        round1(s.totalMilesDriven),
		TotalDrivingHours: round1(s.totalDrivingHours),
		TotalDays:         len(s.dailyLogs),
		Stops:             s.stops,
		DailyLogs:         s.dailyLogs,
		CycleSummary: domain.CycleSummary{
			CycleBefore:    cycleUsed,
			OnDutyThisTrip: onDutyThisTrip,
			CycleAfter:     cycleAfter,
			Remaining:      round1(rules.MaxCycleHours - cycleAfter),
			Limit:          rules.MaxCycleHours,
		},
	}, nil
}

// driveLeg drives a single leg to completion, inserting whatever
// breaks/rests/fuel stops/day rollovers the limit evaluator demands along
// the way.
func (s *simState) driveLeg(legMiles, legHours float64, destination string) error {
	remainingMiles := legMiles
	remainingHours := legHours

	iterations := 0
	for remainingHours > epsilon {
		iterations++
		if iterations > maxDriveLoopIterations {
			return apperrors.IterationBudgetExceeded(maxDriveLoopIterations)
		}

		w := s.evaluate()
		maxDrive := w.maxDrive(remainingHours)

		if maxDrive <= epsilon {
			switch w.binding() {
			case ruleCycleExhausted:
				s.takeRestart()
			case ruleShiftExhausted:
				s.takeRest(destination)
			case ruleBreakDue:
				s.takeBreak()
			case ruleFuelDue:
				s.takeFuelStop(destination)
			case ruleMidnight:
				s.saveDay()
				s.startNewDay()
			default:
				return apperrors.Inconsistent("I2", "driving loop stalled with no binding rule and no remaining allowance")
			}
			continue
		}

		driveMiles := round1(remainingMiles * (maxDrive / remainingHours))

		s.addSegment(domain.StatusDriving, maxDrive, "Driving to "+destination)
		s.shiftDriving += maxDrive
		s.shiftDuty += maxDrive
		s.drivingSinceBreak += maxDrive
		s.cycleHours += maxDrive
		s.totalDrivingHours += maxDrive
		s.milesSinceFuel += driveMiles
		s.totalMilesDriven += driveMiles

		remainingHours -= maxDrive
		remainingMiles -= driveMiles

		if s.milesSinceFuel >= s.rules.FuelIntervalMiles-0.1 && remainingHours > epsilon {
			s.takeFuelStop(destination)
		}
	}
	return nil
}

func titleCase(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
