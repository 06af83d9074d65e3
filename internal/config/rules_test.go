package config

import "testing"

func TestDefaultHOSRules_Validates(t *testing.T) {
	if err := DefaultHOSRules().Validate(); err != nil {
		t.Fatalf("federal defaults should validate cleanly, got %v", err)
	}
}

func TestHOSRules_Validate_RejectsLoosenedDrivingCap(t *testing.T) {
	r := DefaultHOSRules()
	r.MaxDrivingPerShift = 12.0
	if err := r.Validate(); err == nil {
		t.Fatal("expected an error for a driving cap looser than the federal floor")
	}
}

func TestHOSRules_Validate_RejectsShortenedRest(t *testing.T) {
	r := DefaultHOSRules()
	r.RestDuration = 8.0
	if err := r.Validate(); err == nil {
		t.Fatal("expected an error for a rest duration shorter than the federal floor")
	}
}

func TestHOSRules_Validate_AllowsStricterOverride(t *testing.T) {
	r := DefaultHOSRules()
	r.MaxDrivingPerShift = 10.0
	r.MaxCycleHours = 60.0
	r.RestDuration = 11.0
	if err := r.Validate(); err != nil {
		t.Fatalf("a stricter override should validate, got %v", err)
	}
}
