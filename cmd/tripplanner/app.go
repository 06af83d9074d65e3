package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/draymaster/hos-planner/internal/cache"
	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/domain"
	"github.com/draymaster/hos-planner/internal/events"
	"github.com/draymaster/hos-planner/internal/logger"
	"github.com/draymaster/hos-planner/internal/rules"
	"github.com/draymaster/hos-planner/internal/service"
)

// buildPlanner assembles a Planner from the ambient stack. Postgres,
// Redis, and Kafka are each optional: unlike a long-running service, a
// one-shot CLI invocation should still plan a trip with the federal
// default rules, no cache, and no published events if those collaborators
// aren't reachable — only the engine's own errors should fail the run.
func buildPlanner(ctx context.Context, cfg *config.Config, log *logger.Logger) (*service.Planner, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var ruleRepo rules.Repository
	if os.Getenv("CARRIER_RULES_DB_ENABLED") == "true" {
		pool, err := pgxpool.New(ctx, cfg.Database.DSN())
		if err != nil {
			log.Warnw("carrier rules database unreachable, using federal defaults", "error", err)
		} else {
			cleanups = append(cleanups, pool.Close)
			ruleRepo = rules.NewPostgresRepository(pool)
			log.Info("carrier rules repository connected")
		}
	}

	var planCache *cache.PlanCache
	if os.Getenv("PLAN_CACHE_ENABLED") == "true" {
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Warnw("plan cache redis unreachable, running uncached", "error", err)
		} else {
			cleanups = append(cleanups, func() { _ = client.Close() })
			planCache = cache.New(client)
			log.Info("plan cache connected")
		}
	}

	var producer *events.Producer
	if os.Getenv("EVENTS_ENABLED") == "true" {
		producer = events.NewProducer(cfg.Kafka.Brokers, log)
		cleanups = append(cleanups, func() { _ = producer.Close() })
		log.Info("event producer initialized")
	}

	return service.NewPlanner(ruleRepo, planCache, producer, log), cleanup, nil
}

// requestFile is the on-disk shape of a trip request: identical to
// domain.TripRequest except start_date is an optional "YYYY-MM-DD"
// string, defaulting to today when omitted, and an optional carrier_id
// selects the carrier's rule override.
type requestFile struct {
	Legs      [2]domain.Leg    `json:"legs"`
	CycleUsed float64          `json:"cycle_used"`
	Locations domain.Locations `json:"locations"`
	StartDate string           `json:"start_date,omitempty"`
	CarrierID string           `json:"carrier_id,omitempty"`
}

func loadRequest(path string) (domain.TripRequest, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.TripRequest{}, "", fmt.Errorf("read request file: %w", err)
	}

	var rf requestFile
	if err := json.Unmarshal(data, &rf); err != nil {
		return domain.TripRequest{}, "", fmt.Errorf("parse request file: %w", err)
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if rf.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", rf.StartDate)
		if err != nil {
			return domain.TripRequest{}, "", fmt.Errorf("parse start_date %q: %w", rf.StartDate, err)
		}
	}

	return domain.TripRequest{
		Legs:      rf.Legs,
		CycleUsed: rf.CycleUsed,
		Locations: rf.Locations,
		StartDate: startDate,
	}, rf.CarrierID, nil
}
