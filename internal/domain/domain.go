// Package domain holds the value types produced and consumed by the trip
// planning engine. Nothing in this package performs I/O.
package domain

import "time"

// DutyStatus is one of the four ELD duty statuses a Segment can carry.
type DutyStatus string

const (
	StatusOffDuty  DutyStatus = "off_duty"
	StatusSleeper  DutyStatus = "sleeper"
	StatusDriving  DutyStatus = "driving"
	StatusOnDuty   DutyStatus = "on_duty"
)

// StopType identifies what kind of map marker a Stop represents.
type StopType string

const (
	StopStart   StopType = "start"
	StopPickup  StopType = "pickup"
	StopDropoff StopType = "dropoff"
	StopFuel    StopType = "fuel"
	StopRest    StopType = "rest"
)

// Leg is a single routed hop between two named waypoints. Distance and
// duration are supplied by the caller's routing provider; the engine never
// recomputes them.
type Leg struct {
	DistanceMiles  float64 `json:"distance_miles"`
	DurationHours  float64 `json:"duration_hours"`
}

// Location names a geocoded point the caller already resolved.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// Locations bundles the three named waypoints a trip always has.
type Locations struct {
	Current Location `json:"current"`
	Pickup  Location `json:"pickup"`
	Dropoff Location `json:"dropoff"`
}

// Segment is one contiguous duty-status interval on a single day.
type Segment struct {
	Status DutyStatus `json:"status"`
	Start  float64    `json:"start"`
	End    float64    `json:"end"`
	Note   string     `json:"note"`
}

// Duration returns the segment's length in hours.
func (s Segment) Duration() float64 {
	return s.End - s.Start
}

// HoursSummary totals duty-status hours for one day.
type HoursSummary struct {
	OffDuty float64 `json:"off_duty"`
	Sleeper float64 `json:"sleeper"`
	Driving float64 `json:"driving"`
	OnDuty  float64 `json:"on_duty"`
}

// DailyLog is one completed day's worth of segments, frozen once saved.
type DailyLog struct {
	Day          int          `json:"day"`
	Date         string       `json:"date"`
	TotalMiles   float64      `json:"total_miles"`
	Segments     []Segment    `json:"segments"`
	HoursSummary HoursSummary `json:"hours_summary"`
}

// Stop is a semantically significant, map-renderable event.
type Stop struct {
	Type        StopType `json:"type"`
	Location    string   `json:"location"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Time        string   `json:"time"`
	Day         int      `json:"day"`
	DurationHrs *float64 `json:"duration_hrs,omitempty"`
}

// CycleSummary reports the driver's 70-hour/8-day cycle accounting after
// the trip completes.
type CycleSummary struct {
	CycleBefore    float64 `json:"cycle_before"`
	OnDutyThisTrip float64 `json:"on_duty_this_trip"`
	CycleAfter     float64 `json:"cycle_after"`
	Remaining      float64 `json:"remaining"`
	Limit          float64 `json:"limit"`
}

// TripResult is the complete output of a single plan invocation.
type TripResult struct {
	TotalMiles         float64      `json:"total_miles"`
	TotalDrivingHours  float64      `json:"total_driving_hours"`
	TotalDays          int          `json:"total_days"`
	Stops              []Stop       `json:"stops"`
	DailyLogs          []DailyLog   `json:"daily_logs"`
	CycleSummary       CycleSummary `json:"cycle_summary"`
}

// TripRequest is the full set of inputs a single plan invocation needs.
type TripRequest struct {
	Legs      [2]Leg    `json:"legs"`
	CycleUsed float64   `json:"cycle_used"`
	Locations Locations `json:"locations"`
	StartDate time.Time `json:"start_date"`
}
