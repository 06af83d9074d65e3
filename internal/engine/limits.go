package engine

// bindingRule names which regulatory limit is currently forcing an
// interruption, in the fixed priority order the driver consults.
type bindingRule int

const (
	ruleNone bindingRule = iota
	ruleCycleExhausted
	ruleShiftExhausted
	ruleBreakDue
	ruleFuelDue
	ruleMidnight
)

// limitWindow is the set of remaining allowances computed at one driving
// step, before clamping to the caller's remaining leg time.
type limitWindow struct {
	maxByDriving     float64
	maxByWindow      float64
	maxByBreak       float64
	maxByCycle       float64
	maxByFuel        float64
	timeUntilMidnight float64
}

// evaluate computes how many hours of driving are currently permissible
// under each independent limit. It does not consult remainingHours for the
// leg; callers clamp against that themselves.
func (s *simState) evaluate() limitWindow {
	w := limitWindow{
		maxByDriving:      s.rules.MaxDrivingPerShift - s.shiftDriving,
		maxByWindow:       s.rules.MaxDutyWindow - s.shiftDuty,
		maxByBreak:        s.rules.DrivingBeforeBreak - s.drivingSinceBreak,
		maxByCycle:        s.rules.MaxCycleHours - s.cycleHours,
		timeUntilMidnight: 24.0 - s.currentTime,
	}
	if s.milesSinceFuel < s.rules.FuelIntervalMiles {
		milesToFuel := s.rules.FuelIntervalMiles - s.milesSinceFuel
		if s.rules.AvgSpeedMPH > 0 {
			w.maxByFuel = milesToFuel / s.rules.AvgSpeedMPH
		} else {
			w.maxByFuel = 999
		}
	}
	return w
}

// maxDrive folds a limitWindow and the leg's remaining hours into the
// single bounded chunk the driver may drive next, clamped so a step never
// crosses midnight.
func (w limitWindow) maxDrive(remainingHours float64) float64 {
	m := min6(w.maxByDriving, w.maxByWindow, w.maxByBreak, w.maxByCycle, w.maxByFuel, remainingHours)
	if m > w.timeUntilMidnight {
		m = w.timeUntilMidnight
	}
	return m
}

// binding returns which rule is responsible for a zero (or near-zero)
// max drive, in the fixed priority order: cycle, shift, break, fuel,
// midnight.
func (w limitWindow) binding() bindingRule {
	switch {
	case w.maxByCycle <= epsilon:
		return ruleCycleExhausted
	case w.maxByDriving <= epsilon || w.maxByWindow <= epsilon:
		return ruleShiftExhausted
	case w.maxByBreak <= epsilon:
		return ruleBreakDue
	case w.maxByFuel <= epsilon:
		return ruleFuelDue
	case w.timeUntilMidnight <= epsilon:
		return ruleMidnight
	default:
		return ruleNone
	}
}

func min6(a, b, c, d, e, f float64) float64 {
	m := a
	for _, v := range []float64{b, c, d, e, f} {
		if v < m {
			m = v
		}
	}
	return m
}
