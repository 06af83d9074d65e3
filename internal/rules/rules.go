// Package rules loads a carrier's HOS rule overrides from Postgres. This
// is configuration lookup, not trip persistence — the engine never
// retains a trip once planned.
package rules

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draymaster/hos-planner/internal/config"
)

// ErrNoOverride is returned when a carrier has no override row; callers
// should fall back to config.DefaultHOSRules().
var ErrNoOverride = errors.New("rules: no override configured for carrier")

// Repository loads carrier-specific HOS rule overrides.
type Repository interface {
	GetOverride(ctx context.Context, carrierID string) (config.HOSRules, error)
}

// PostgresRepository implements Repository against a
// carrier_hos_rules table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository wraps an existing connection pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectOverrideSQL = `
SELECT max_driving_per_shift, max_duty_window, driving_before_break,
       rest_duration, max_cycle_hours, cycle_restart_duration,
       fuel_interval_miles, avg_speed_mph
FROM carrier_hos_rules
WHERE carrier_id = $1
`

// GetOverride fetches the carrier's override row and validates it against
// the federal floor before returning it. ErrNoOverride is returned (not
// wrapped) when the carrier has no row, so callers can distinguish "use
// the default" from a real failure.
func (r *PostgresRepository) GetOverride(ctx context.Context, carrierID string) (config.HOSRules, error) {
	row := r.pool.QueryRow(ctx, selectOverrideSQL, carrierID)

	rules := config.DefaultHOSRules()
	err := row.Scan(
		&rules.MaxDrivingPerShift,
		&rules.MaxDutyWindow,
		&rules.DrivingBeforeBreak,
		&rules.RestDuration,
		&rules.MaxCycleHours,
		&rules.CycleRestartDuration,
		&rules.FuelIntervalMiles,
		&rules.AvgSpeedMPH,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return config.HOSRules{}, ErrNoOverride
	}
	if err != nil {
		return config.HOSRules{}, fmt.Errorf("query carrier hos rules: %w", err)
	}

	if err := rules.Validate(); err != nil {
		return config.HOSRules{}, fmt.Errorf("carrier %s override rejected: %w", carrierID, err)
	}
	return rules, nil
}
