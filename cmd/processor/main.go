// Command processor runs the classification pipeline over a directory of
// spreadsheet exports and writes one consolidated canonical CSV report.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"gdreport/internal/config"
	"gdreport/internal/exporter"
	"gdreport/internal/infrastructure"
	"gdreport/internal/pipeline"
	"gdreport/internal/workbook"
	"gdreport/pkg/contracts/domain"
)

type fileResult struct {
	name   string
	result *pipeline.Result
	err    error
}

func main() {
	inDir := flag.String("in", "", "input directory with .xlsx exports (defaults to configured input dir)")
	outFile := flag.String("out", "", "output CSV path (defaults to <output dir>/relatorio-canonico.csv)")
	manualCode := flag.String("code", "", "manual project code applied to files that cannot resolve one")
	cutoff := flag.String("cutoff", "", "cutoff date YYYY-MM-DD; rows with an older reference month are skipped")
	target := flag.String("project", "", "only keep rows belonging to this project code")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("Failed to initialize logger", "error", err)
		os.Exit(1)
	}

	if *inDir == "" {
		*inDir = cfg.Paths.InputDir
	}
	if *outFile == "" {
		*outFile = filepath.Join(cfg.Paths.OutputDir, "relatorio-canonico.csv")
	}
	if *cutoff == "" {
		*cutoff = cfg.Processing.CutoffFor(*manualCode)
	}

	files, err := discoverWorkbooks(*inDir)
	if err != nil {
		logger.Error("failed to scan input directory", slog.String("dir", *inDir), slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(files) == 0 {
		logger.Error("no .xlsx files found", slog.String("dir", *inDir))
		os.Exit(1)
	}

	logger.Info("starting batch run",
		slog.Int("files", len(files)),
		slog.String("input", *inDir),
		slog.String("output", *outFile),
		slog.Int("workers", cfg.Processing.Workers))

	processor := pipeline.New(logger,
		pipeline.WithMaxHeaderScan(cfg.Processing.MaxHeaderScan))
	now := time.Now()

	results := make([]fileResult, len(files))
	var g errgroup.Group
	g.SetLimit(cfg.Processing.Workers)

	for i, path := range files {
		g.Go(func() error {
			name := filepath.Base(path)
			results[i] = fileResult{name: name}

			reader, err := workbook.OpenFile(path)
			if err != nil {
				results[i].err = err
				return nil
			}

			ctx := domain.Context{
				ManualCode:    *manualCode,
				CutoffDate:    *cutoff,
				FileName:      name,
				TargetProject: domain.ProjectCode(*target),
				Now:           now,
			}
			results[i].result, results[i].err = processor.Process(reader, ctx)
			return nil
		})
	}
	g.Wait()

	var (
		merged []*domain.BillingRow
		stats  domain.ProcessingStats
		failed int
	)
	for _, fr := range results {
		if fr.err != nil {
			failed++
			attrs := []any{
				slog.String("file", fr.name),
				slog.String("error", fr.err.Error()),
			}
			if errors.Is(fr.err, pipeline.ErrNoBillingSheet) || errors.Is(fr.err, pipeline.ErrManualCodeRequired) {
				logger.Warn("file skipped", attrs...)
			} else {
				logger.Error("file failed", attrs...)
			}
			continue
		}
		merged = append(merged, fr.result.Rows...)
		stats.Merge(fr.result.Stats)
	}

	writer := exporter.NewCSVWriter(logger)
	if err := writer.WriteReport(*outFile, merged); err != nil {
		logger.Error("failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("batch run complete",
		slog.Int("files", len(files)),
		slog.Int("files_failed", failed),
		slog.Int("total", stats.Total),
		slog.Int("processed", stats.Processed),
		slog.Int("skipped_old", stats.SkippedOld),
		slog.Int("skipped_cancelled", stats.SkippedCancelled),
		slog.Int("skipped_empty", stats.SkippedEmpty),
		slog.Int("skipped_status", stats.SkippedStatus))

	if failed == len(files) {
		os.Exit(1)
	}
	fmt.Printf("Report written to %s (%d rows from %d files)\n", *outFile, len(merged), len(files))
}

// discoverWorkbooks lists .xlsx files in dir, skipping Excel lock files.
func discoverWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, "~$") {
			continue
		}
		if strings.EqualFold(filepath.Ext(name), ".xlsx") {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}
