package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/logger"
)

var planRequestPath string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip from a request JSON file and print the result",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planRequestPath, "request", "r", "", "path to a trip request JSON file (required)")
	_ = planCmd.MarkFlagRequired("request")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Service.Name, cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Sync()

	req, carrierID, err := loadRequest(planRequestPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	planner, cleanup, err := buildPlanner(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := planner.Plan(ctx, req, carrierID)
	if err != nil {
		return fmt.Errorf("plan trip: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
