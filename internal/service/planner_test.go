package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draymaster/hos-planner/internal/apperrors"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
	"github.com/draymaster/hos-planner/internal/logger"
	"github.com/draymaster/hos-planner/internal/rules"
)

// fakeRuleRepo is a hand-rolled in-memory Repository, in the style this
// codebase's service tests use for their repository mocks.
type fakeRuleRepo struct {
	overrides map[string]config.HOSRules
	err       error
}

func (f *fakeRuleRepo) GetOverride(ctx context.Context, carrierID string) (config.HOSRules, error) {
	if f.err != nil {
		return config.HOSRules{}, f.err
	}
	if r, ok := f.overrides[carrierID]; ok {
		return r, nil
	}
	return config.HOSRules{}, rules.ErrNoOverride
}

func validTripRequest() domain.TripRequest {
	return domain.TripRequest{
		Legs: [2]domain.Leg{
			{DistanceMiles: 100, DurationHours: 1.5},
			{DistanceMiles: 80, DurationHours: 1.2},
		},
		CycleUsed: 0,
		Locations: domain.Locations{
			Current: domain.Location{Name: "Origin", Lat: 34.0, Lng: -118.0},
			Pickup:  domain.Location{Name: "Pickup", Lat: 35.0, Lng: -117.0},
			Dropoff: domain.Location{Name: "Dropoff", Lat: 36.0, Lng: -116.0},
		},
		StartDate: time.Now(),
	}
}

func TestPlanner_Plan_UsesFederalDefaultsWithNoOverride(t *testing.T) {
	repo := &fakeRuleRepo{overrides: map[string]config.HOSRules{}}
	planner := NewPlanner(repo, nil, nil, logger.Default())

	result, err := planner.Plan(context.Background(), validTripRequest(), "carrier-without-override")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultHOSRules().MaxCycleHours, result.CycleSummary.Limit)
}

func TestPlanner_Plan_AppliesCarrierOverride(t *testing.T) {
	stricter := config.DefaultHOSRules()
	stricter.MaxDrivingPerShift = 10.0
	stricter.MaxCycleHours = 60.0

	repo := &fakeRuleRepo{overrides: map[string]config.HOSRules{"carrier-strict": stricter}}
	planner := NewPlanner(repo, nil, nil, logger.Default())

	result, err := planner.Plan(context.Background(), validTripRequest(), "carrier-strict")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, stricter.MaxCycleHours, result.CycleSummary.Limit)
}

func TestPlanner_Plan_RejectsInvalidRequest(t *testing.T) {
	planner := NewPlanner(nil, nil, nil, logger.Default())

	req := validTripRequest()
	req.CycleUsed = 999

	_, err := planner.Plan(context.Background(), req, "")
	require.Error(t, err)

	planErr, ok := err.(*apperrors.PlanError)
	require.True(t, ok, "expected *apperrors.PlanError, got %T", err)
	assert.Equal(t, apperrors.InvalidInput, planErr.Kind)
}

func TestPlanner_Plan_SurfacesRuleRepositoryFailure(t *testing.T) {
	repo := &fakeRuleRepo{err: assert.AnError}
	planner := NewPlanner(repo, nil, nil, logger.Default())

	_, err := planner.Plan(context.Background(), validTripRequest(), "carrier-x")
	require.Error(t, err)
}
