package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"gradecli/internal/config"
	"gradecli/internal/course"
	"gradecli/internal/errors"
	"gradecli/internal/exporter"
	"gradecli/internal/files"
	"gradecli/internal/grading"
	"gradecli/internal/infrastructure"
)

func main() {
	configFile := flag.String("config", "", "course configuration file (defaults to gradecli.yaml)")
	output := flag.String("out", "", "output CSV path (defaults to the configured report output file)")
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

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		logger.Error("Failed to create required directories", "error", err)
		os.Exit(1)
	}

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger.InfoContext(ctx, "Starting grade report",
		slog.Int("gradebooks", len(cfg.Course.Gradebooks)),
		slog.Int("assignments", len(cfg.Course.Assignments)))

	if err := run(ctx, cfg, *output); err != nil {
		logger.ErrorContext(ctx, "Grade report failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, output string) error {
	logger := infrastructure.LoggerFromContext(ctx)
	diags := errors.NewDiagnostics(logger)

	assignments, err := grading.BuildAssignments(cfg.Course.Assignments)
	if err != nil {
		return err
	}

	tables, err := files.LoadSources(ctx, cfg.Course.Gradebooks, cfg.Course.InfoColumns, cfg.Paths, diags)
	if err != nil {
		return err
	}

	c, err := course.New(tables, assignments, cfg.Course.InfoColumns, diags)
	if err != nil {
		return err
	}

	opts, err := course.BuildReportOptions(cfg.Course.Report)
	if err != nil {
		return err
	}

	report, err := c.ComputeGrades(opts, diags)
	if err != nil {
		return err
	}

	if cfg.Course.Report.SortByFinal {
		sorted, err := report.SortByFloatColumn(config.FinalGradeColumn, true)
		if err != nil {
			return fmt.Errorf("cannot sort by final grade: %w", err)
		}
		report = sorted
	}

	if output == "" {
		output = cfg.Course.Report.OutputFile
	}
	if output == "" {
		output = "grades.csv"
	}

	if err := exporter.NewReportExporter(cfg.Paths).ExportReport(report, output); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Grade report complete",
		slog.Int("students", report.NumRows()),
		slog.Int("diagnostics", diags.Count()))
	return nil
}
