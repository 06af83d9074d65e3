package engine

import "github.com/draymaster/hos-planner/internal/apperrors"

// checkInvariants re-walks the completed daily logs and confirms I1
// (segment coverage) and I4 (day monotonicity) hold. The shift/cycle
// bound invariants (I2, I3) are enforced continuously by the limit
// evaluator and never need a post-hoc check; this pass exists to catch a
// regression in the recorder rather than to re-derive correctness.
func checkInvariants(s *simState) error {
	for i, day := range s.dailyLogs {
		if day.Day != i+1 {
			return apperrors.Inconsistent("I4", "daily logs are not strictly increasing by day number").
				WithDetail("index", i).WithDetail("day", day.Day)
		}
		if len(day.Segments) == 0 {
			return apperrors.Inconsistent("I1", "day has no segments").WithDetail("day", day.Day)
		}
		if day.Segments[0].Start != 0 {
			return apperrors.Inconsistent("I1", "day does not begin at 0:00").
				WithDetail("day", day.Day).WithDetail("start", day.Segments[0].Start)
		}
		last := day.Segments[len(day.Segments)-1]
		if last.End != 24.0 {
			return apperrors.Inconsistent("I1", "day does not end at 24:00").
				WithDetail("day", day.Day).WithDetail("end", last.End)
		}
		for j := 1; j < len(day.Segments); j++ {
			if day.Segments[j].Start != day.Segments[j-1].End {
				return apperrors.Inconsistent("I1", "segments are not contiguous").
					WithDetail("day", day.Day).WithDetail("index", j)
			}
		}
	}
	return nil
}
