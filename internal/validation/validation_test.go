package validation

import (
	"testing"
	"time"

	"github.com/draymaster/hos-planner/internal/apperrors"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
)

func validRequest() domain.TripRequest {
	return domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 100, DurationHours: 1.5},
			{DistanceMiles: 80, DurationHours: 1.2},
		},
		CycleUsed: 10,
		Locations: domain.Locations{
			Current: domain.Location{Name: "Origin", Lat: 34.0, Lng: -118.0},
			Pickup:  domain.Location{Name: "Pickup", Lat: 35.0, Lng: -117.0},
			Dropoff: domain.Location{Name: "Dropoff", Lat: 36.0, Lng: -116.0},
		},
		StartDate: time.Now(),
	}
}

func TestValidateTripRequest_Valid(t *testing.T) {
	if err := ValidateTripRequest(validRequest(), config.DefaultHOSRules()); err != nil {
		t.Fatalf("expected valid request to pass, got %v", err)
	}
}

func TestValidateTripRequest_CycleOutOfRange(t *testing.T) {
	req := validRequest()
	req.CycleUsed = 71
	err := ValidateTripRequest(req, config.DefaultHOSRules())
	assertInvalidInput(t, err)
}

func TestValidateTripRequest_NegativeLegDistance(t *testing.T) {
	req := validRequest()
	req.Legs[0].DistanceMiles = -5
	err := ValidateTripRequest(req, config.DefaultHOSRules())
	assertInvalidInput(t, err)
}

func TestValidateTripRequest_MissingLocationName(t *testing.T) {
	req := validRequest()
	req.Locations.Pickup.Name = ""
	err := ValidateTripRequest(req, config.DefaultHOSRules())
	assertInvalidInput(t, err)
}

func TestValidateTripRequest_OutOfRangeLatitude(t *testing.T) {
	req := validRequest()
	req.Locations.Dropoff.Lat = 120
	err := ValidateTripRequest(req, config.DefaultHOSRules())
	assertInvalidInput(t, err)
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	planErr, ok := err.(*apperrors.PlanError)
	if !ok {
		t.Fatalf("expected *apperrors.PlanError, got %T", err)
	}
	if planErr.Kind != apperrors.InvalidInput {
		t.Errorf("expected InvalidInput, got %s", planErr.Kind)
	}
}
