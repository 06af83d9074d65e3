// Package engine implements the HOS trip simulation: a deterministic state
// machine that walks two route legs through simulated time, enforcing the
// FMCSA hours-of-service limits and inserting mandatory interruptions.
//
// The package performs no I/O. Every exported entry point is a pure
// function of its arguments; callers own logging, persistence, and
// transport.
package engine

import (
	"time"

	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
)

// epsilon is the "effectively zero" tolerance for remaining-allowance
// comparisons, in hours (36 seconds).
const epsilon = 0.01

// maxDriveLoopIterations bounds the per-leg driving loop. The loop always
// either drives a positive chunk or records an interruption, so a real
// trip terminates in well under a hundred iterations; this is a defensive
// ceiling against a logic error that would otherwise spin forever.
const maxDriveLoopIterations = 10000

// simState is the single mutable value a plan invocation owns. It is never
// shared or aliased outside the engine package.
type simState struct {
	rules config.HOSRules

	currentTime float64
	currentDay  int

	shiftDriving      float64
	shiftDuty         float64
	drivingSinceBreak float64
	cycleHours        float64

	milesSinceFuel    float64
	totalMilesDriven  float64
	totalDrivingHours float64

	segments  []domain.Segment
	dailyLogs []domain.DailyLog
	stops     []domain.Stop

	startDate    time.Time
	shiftStarted bool
}

// newSimState seeds a fresh simulation: all shift/break counters at zero,
// the cycle pre-loaded with hours already consumed, day 1 starting at
// midnight.
func newSimState(rules config.HOSRules, cycleUsed float64, startDate time.Time) *simState {
	return &simState{
		rules:       rules,
		currentTime: 0.0,
		currentDay:  1,
		cycleHours:  cycleUsed,
		startDate:   startDate,
	}
}
