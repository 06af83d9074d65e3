package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/draymaster/hos-planner/internal/config"
	"github.com/draymaster/hos-planner/internal/export"
	"github.com/draymaster/hos-planner/internal/logger"
)

var (
	exportRequestPath string
	exportOutDir      string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Plan a trip and write its segments and stops as CSV",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportRequestPath, "request", "r", "", "path to a trip request JSON file (required)")
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", ".", "directory to write segments.csv and stops.csv into")
	_ = exportCmd.MarkFlagRequired("request")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	log, err := logger.New(cfg.Service.Name, cfg.Service.Environment, cfg.Service.LogLevel)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer log.Sync()

	req, carrierID, err := loadRequest(exportRequestPath)
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

	if err := os.MkdirAll(exportOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	segmentsFile, err := os.Create(filepath.Join(exportOutDir, "segments.csv"))
	if err != nil {
		return fmt.Errorf("create segments.csv: %w", err)
	}
	defer segmentsFile.Close()
	if err := export.WriteSegments(segmentsFile, result); err != nil {
		return err
	}

	stopsFile, err := os.Create(filepath.Join(exportOutDir, "stops.csv"))
	if err != nil {
		return fmt.Errorf("create stops.csv: %w", err)
	}
	defer stopsFile.Close()
	if err := export.WriteStops(stopsFile, result); err != nil {
		return err
	}

	fmt.Printf("wrote %s and %s\n", filepath.Join(exportOutDir, "segments.csv"), filepath.Join(exportOutDir, "stops.csv"))
	return nil
}
