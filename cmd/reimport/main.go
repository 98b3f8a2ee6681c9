package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gradecli/internal/config"
	"gradecli/internal/errors"
	"gradecli/internal/exporter"
	"gradecli/internal/files"
	"gradecli/internal/grading"
	"gradecli/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "", "course configuration file (defaults to gradecli.yaml)")
	input := flag.String("in", "", "graded report CSV (defaults to the most recent report)")
	output := flag.String("out", "import.csv", "output path for the LMS import file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())

	if err := run(ctx, cfg, *input, *output); err != nil {
		logger.ErrorContext(ctx, "Import file generation failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, input, output string) error {
	logger := infrastructure.LoggerFromContext(ctx)

	if input == "" {
		// The report a grader just edited is almost always the newest one.
		discovery := files.NewDiscovery(cfg.Paths.ReportsDir)
		reports, err := discovery.FindCSVFiles(".")
		if err != nil {
			return fmt.Errorf("cannot scan reports directory: %w", err)
		}
		latest, ok := files.GetLatestFile(reports)
		if !ok {
			return errors.ConfigError("no report CSV found in %s; pass one with -in", cfg.Paths.ReportsDir)
		}
		input = latest.Path
		logger.InfoContext(ctx, "Using most recent report", slog.String("path", input))
	}

	raw, err := files.LoadCSV(input)
	if err != nil {
		return err
	}

	reimport := cfg.Course.Reimport
	standardize := true
	if reimport.Standardize != nil {
		standardize = *reimport.Standardize
	}

	opts := exporter.ReimportOptions{
		Info:         cfg.Course.InfoColumns,
		LetterColumn: reimport.LetterGradeColumn,
		Standardize:  standardize,
		Scale: grading.LetterScale{
			Thresholds: reimport.Thresholds,
			Letters:    reimport.Letters,
		},
		IncludeOthers: reimport.IncludeOthers,
	}

	if err := exporter.NewImportExporter(cfg.Paths).ExportImportFile(raw, opts, output); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Import file generated",
		slog.String("input", input),
		slog.String("output", output))
	return nil
}
