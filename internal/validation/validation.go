// Package validation checks a trip request before it reaches the engine.
// The engine itself never validates its input — per the collaborator
// boundary, malformed input is rejected here, one layer up.
package validation

import (
	"strconv"
	"strings"

	"github.com/draymaster/hos-planner/internal/apperrors"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
)

// CoordinateValidator checks that a latitude/longitude pair is a
// plausible point on Earth. It does not check that the pair is
// geographically reachable or that it matches the named location.
type CoordinateValidator struct{}

func NewCoordinateValidator() *CoordinateValidator {
	return &CoordinateValidator{}
}

func (v *CoordinateValidator) ValidateLatitude(lat float64) error {
	if lat < -90 || lat > 90 {
		return apperrors.Invalid("lat", lat, "latitude must be between -90 and 90")
	}
	return nil
}

func (v *CoordinateValidator) ValidateLongitude(lng float64) error {
	if lng < -180 || lng > 180 {
		return apperrors.Invalid("lng", lng, "longitude must be between -180 and 180")
	}
	return nil
}

func (v *CoordinateValidator) ValidateCoordinates(lat, lng float64) error {
	if err := v.ValidateLatitude(lat); err != nil {
		return err
	}
	return v.ValidateLongitude(lng)
}

// ValidateTripRequest checks legs, cycle_used, and locations against the
// §7 InvalidInput rules, returning the first violation found.
func ValidateTripRequest(req domain.TripRequest, rules config.HOSRules) error {
	if req.CycleUsed < 0 || req.CycleUsed > rules.MaxCycleHours {
		return apperrors.Invalid("cycle_used", req.CycleUsed, "cycle_used must be within [0, max cycle hours]")
	}

	for i, leg := range req.Legs {
		if leg.DistanceMiles < 0 {
			return apperrors.Invalid("legs["+strconv.Itoa(i)+"].distance_miles", leg.DistanceMiles, "leg distance must not be negative")
		}
		if leg.DurationHours < 0 {
			return apperrors.Invalid("legs["+strconv.Itoa(i)+"].duration_hours", leg.DurationHours, "leg duration must not be negative")
		}
	}

	coord := NewCoordinateValidator()
	named := []struct {
		key string
		loc domain.Location
	}{
		{"current", req.Locations.Current},
		{"pickup", req.Locations.Pickup},
		{"dropoff", req.Locations.Dropoff},
	}
	for _, n := range named {
		if strings.TrimSpace(n.loc.Name) == "" {
			return apperrors.Invalid("locations."+n.key+".name", n.loc.Name, "location name is required")
		}
		if err := coord.ValidateCoordinates(n.loc.Lat, n.loc.Lng); err != nil {
			return err
		}
	}

	return nil
}
