// Package export renders a planned trip to CSV for drivers and back
// office tooling that would rather not parse the JSON TripResult.
package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/draymaster/hos-planner/internal/domain"
)

// segmentRow is one CSV row: a single day's single duty-status segment.
type segmentRow struct {
	Day    int     `csv:"day"`
	Date   string  `csv:"date"`
	Status string  `csv:"status"`
	Start  float64 `csv:"start_hour"`
	End    float64 `csv:"end_hour"`
	Note   string  `csv:"note"`
}

// stopRow is one CSV row describing a single map-significant stop.
type stopRow struct {
	Day      int     `csv:"day"`
	Type     string  `csv:"type"`
	Location string  `csv:"location"`
	Lat      float64 `csv:"lat"`
	Lng      float64 `csv:"lng"`
	Time     string  `csv:"time"`
}

// WriteSegments renders every day's segments, in order, as CSV.
func WriteSegments(w io.Writer, result *domain.TripResult) error {
	rows := make([]segmentRow, 0)
	for _, day := range result.DailyLogs {
		for _, seg := range day.Segments {
			rows = append(rows, segmentRow{
				Day:    day.Day,
				Date:   day.Date,
				Status: string(seg.Status),
				Start:  seg.Start,
				End:    seg.End,
				Note:   seg.Note,
			})
		}
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("marshal segment rows: %w", err)
	}
	return nil
}

// WriteStops renders the trip's stop list as CSV.
func WriteStops(w io.Writer, result *domain.TripResult) error {
	rows := make([]stopRow, 0, len(result.Stops))
	for _, s := range result.Stops {
		rows = append(rows, stopRow{
			Day:      s.Day,
			Type:     string(s.Type),
			Location: s.Location,
			Lat:      s.Lat,
			Lng:      s.Lng,
			Time:     s.Time,
		})
	}
	if err := gocsv.Marshal(rows, w); err != nil {
		return fmt.Errorf("marshal stop rows: %w", err)
	}
	return nil
}
