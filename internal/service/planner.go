// Package service wires the pure engine into the ambient stack: request
// validation, carrier rule overrides, idempotency caching, structured
// logging, and lifecycle event publication. None of this logic lives in
// the engine itself.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/draymaster/hos-planner/internal/cache"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
	"github.com/draymaster/hos-planner/internal/engine"
	"github.com/draymaster/hos-planner/internal/events"
	"github.com/draymaster/hos-planner/internal/logger"
	"github.com/draymaster/hos-planner/internal/rules"
	"github.com/draymaster/hos-planner/internal/validation"
)

// Planner is the single caller-facing surface over the engine.
type Planner struct {
	ruleRepo      rules.Repository
	planCache     *cache.PlanCache
	eventProducer *events.Producer
	logger        *logger.Logger
	defaultRules  config.HOSRules
}

// NewPlanner constructs a Planner. Any of ruleRepo, planCache, or
// eventProducer may be nil — each collaborator is optional and its
// absence degrades gracefully (no override lookup, no caching, no
// published events) rather than failing the plan.
func NewPlanner(ruleRepo rules.Repository, planCache *cache.PlanCache, eventProducer *events.Producer, log *logger.Logger) *Planner {
	return &Planner{
		ruleRepo:      ruleRepo,
		planCache:     planCache,
		eventProducer: eventProducer,
		logger:        log,
		defaultRules:  config.DefaultHOSRules(),
	}
}

// =============================================================================
// PLAN
// =============================================================================

// Plan validates req, resolves the applicable rule set, serves a cached
// result if one exists, and otherwise runs the engine and publishes the
// resulting lifecycle events.
func (p *Planner) Plan(ctx context.Context, req domain.TripRequest, carrierID string) (*domain.TripResult, error) {
	planID := uuid.New().String()
	log := p.logger.WithPlanID(planID)

	activeRules, err := p.resolveRules(ctx, carrierID)
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateTripRequest(req, activeRules); err != nil {
		log.Warnw("trip request rejected", "error", err)
		return nil, err
	}

	cacheKey := ""
	if p.planCache != nil {
		cacheKey, err = cache.Key(req)
		if err == nil {
			// The request alone does not pick the rule set; the carrier does.
			cacheKey += ":carrier:" + carrierID
		}
		if err != nil {
			log.Warnw("failed to derive plan cache key, proceeding uncached", "error", err)
		} else if cached, hit, cerr := p.planCache.Get(ctx, cacheKey); cerr == nil && hit {
			log.Infow("plan cache hit", "cache_key", cacheKey)
			return cached, nil
		} else if cerr != nil {
			log.Warnw("plan cache read failed, proceeding uncached", "error", cerr)
		}
	}

	log.Infow("planning trip",
		"leg0_miles", req.Legs[0].DistanceMiles, "leg1_miles", req.Legs[1].DistanceMiles,
		"cycle_used", req.CycleUsed)

	result, err := engine.Plan(req, activeRules)
	if err != nil {
		log.Errorw("plan failed", "error", err)
		return nil, err
	}

	log.Infow("trip planned",
		"total_days", result.TotalDays, "total_miles", result.TotalMiles,
		"cycle_after", result.CycleSummary.CycleAfter)

	if cacheKey != "" {
		if err := p.planCache.Set(ctx, cacheKey, result); err != nil {
			log.Warnw("failed to populate plan cache", "error", err)
		}
	}

	p.publishLifecycleEvents(ctx, planID, result, log)

	return result, nil
}

// resolveRules loads the carrier's override, if one exists, falling back
// to the federal defaults when the carrier has none configured or when no
// rule repository is wired up at all.
func (p *Planner) resolveRules(ctx context.Context, carrierID string) (config.HOSRules, error) {
	if p.ruleRepo == nil || carrierID == "" {
		return p.defaultRules, nil
	}
	override, err := p.ruleRepo.GetOverride(ctx, carrierID)
	if err != nil {
		if err == rules.ErrNoOverride {
			return p.defaultRules, nil
		}
		return config.HOSRules{}, fmt.Errorf("resolve carrier hos rules: %w", err)
	}
	return override, nil
}

// publishLifecycleEvents emits one event for the overall plan plus one
// per rest or fuel stop in the result. 30-minute breaks, and rests taken
// without a stop marker, publish no event. Publish failures are logged, not returned —
// a broker outage must not fail an otherwise-successful plan.
func (p *Planner) publishLifecycleEvents(ctx context.Context, planID string, result *domain.TripResult, log *logger.Logger) {
	if p.eventProducer == nil {
		return
	}

	planned := events.NewEvent(events.Topics.TripPlanned, "hos-planner", result).WithCorrelationID(planID)
	if err := p.eventProducer.Publish(ctx, events.Topics.TripPlanned, planned); err != nil {
		log.Warnw("failed to publish trip-planned event", "error", err)
	}

	for _, stop := range result.Stops {
		var topic string
		switch stop.Type {
		case domain.StopRest:
			topic = events.Topics.RestScheduled
		case domain.StopFuel:
			topic = events.Topics.FuelScheduled
		default:
			continue
		}
		if stop.Location == "En route (34hr restart)" {
			topic = events.Topics.CycleRestarted
		}
		evt := events.NewEvent(topic, "hos-planner", stop).WithCorrelationID(planID)
		if err := p.eventProducer.Publish(ctx, topic, evt); err != nil {
			log.Warnw("failed to publish interruption event", "topic", topic, "error", err)
		}
	}
}
