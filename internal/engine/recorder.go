package engine

import (
	"fmt"

	"github.com/draymaster/hos-planner/internal/domain"
)

// addSegment appends one duty-status interval to the current day. The
// caller guarantees duration fits before midnight; addSegment clamps
// defensively to 24.0 and advances the clock.
func (s *simState) addSegment(status domain.DutyStatus, duration float64, note string) {
	start := round2(s.currentTime)
	end := round2(start + duration)
	if end > 24.0 {
		end = 24.0
	}
	s.segments = append(s.segments, domain.Segment{
		Status: status,
		Start:  start,
		End:    end,
		Note:   note,
	})
	s.currentTime = end
}

// recordSpread is the single primitive every midnight-crossing
// interruption shares: it writes duration in up-to-midnight chunks,
// saving and starting a new day whenever a chunk lands exactly at 24:00,
// and charges the shift-duty and cycle-hour counters per chunk according
// to chargeDuty/chargeCycle. Unifying this loop avoids reimplementing the
// same day-rollover logic in the break, fuel, rest, restart, and on-duty
// routines.
func (s *simState) recordSpread(status domain.DutyStatus, duration float64, note string, chargeDuty, chargeCycle bool) {
	remaining := duration
	for remaining > epsilon {
		untilMidnight := 24.0 - s.currentTime
		chunk := remaining
		if untilMidnight < chunk {
			chunk = untilMidnight
		}
		if chunk <= epsilon {
			s.saveDay()
			s.startNewDay()
			continue
		}
		s.addSegment(status, chunk, note)
		if chargeDuty {
			s.shiftDuty += chunk
		}
		if chargeCycle {
			s.cycleHours += chunk
		}
		remaining -= chunk
		if s.currentTime >= 24.0-epsilon && remaining > epsilon {
			s.saveDay()
			s.startNewDay()
		}
	}
}

// addOnDuty records on-duty, non-driving time (pre-trip inspection,
// pickup/dropoff work, fuel stop). It charges both the 14-hour window and
// the 70-hour cycle per chunk.
func (s *simState) addOnDuty(duration float64, note string) {
	s.recordSpread(domain.StatusOnDuty, duration, note, true, true)
}

// saveDay freezes the current day's segments into a DailyLog: per-status
// hour totals, an approximated mileage figure (driving hours × average
// speed), and the calendar date derived from the trip's start date.
func (s *simState) saveDay() {
	dayNum := s.currentDay
	dayDate := s.startDate.AddDate(0, 0, dayNum-1)

	var summary domain.HoursSummary
	var totalMiles float64
	for _, seg := range s.segments {
		dur := round2(seg.End - seg.Start)
		switch seg.Status {
		case domain.StatusOffDuty:
			summary.OffDuty += dur
		case domain.StatusSleeper:
			summary.Sleeper += dur
		case domain.StatusDriving:
			summary.Driving += dur
			totalMiles += dur * s.rules.AvgSpeedMPH
		case domain.StatusOnDuty:
			summary.OnDuty += dur
		}
	}
	summary.OffDuty = round1(summary.OffDuty)
	summary.Sleeper = round1(summary.Sleeper)
	summary.Driving = round1(summary.Driving)
	summary.OnDuty = round1(summary.OnDuty)

	s.dailyLogs = append(s.dailyLogs, domain.DailyLog{
		Day:          dayNum,
		Date:         dayDate.Format("2006-01-02"),
		TotalMiles:   round1(totalMiles),
		Segments:     s.segments,
		HoursSummary: summary,
	})
}

// startNewDay advances the day counter and opens a fresh, empty segment
// buffer for it.
func (s *simState) startNewDay() {
	s.currentDay++
	s.currentTime = 0.0
	s.segments = nil
}

// formatTime renders hours-since-midnight as "H:MM AM|PM".
func formatTime(hoursSinceMidnight float64) string {
	h := int(hoursSinceMidnight) % 24
	m := int((hoursSinceMidnight - float64(int(hoursSinceMidnight))) * 60)
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	displayHour := h % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, m, period)
}

func round1(v float64) float64 {
	return roundTo(v, 1)
}

func round2(v float64) float64 {
	return roundTo(v, 2)
}

func roundTo(v float64, decimals int) float64 {
	scale := 1.0
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	if v >= 0 {
		return float64(int(v*scale+0.5)) / scale
	}
	return float64(int(v*scale-0.5)) / scale
}
