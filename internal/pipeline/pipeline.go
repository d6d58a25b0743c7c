package pipeline

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"gdreport/internal/classifier"
	"gdreport/internal/sheet"
	"gdreport/internal/workbook"
	"gdreport/pkg/contracts/domain"
)

// Structural file-level failures. Row-level problems are reported through
// ProcessingStats instead.
var (
	// ErrNoBillingSheet means no sheet in the workbook carries a
	// recognizable billing header.
	ErrNoBillingSheet = errors.New("no billing sheet header found in workbook")

	// ErrManualCodeRequired means no row in the file resolved to any
	// project and no manual code was supplied to break the tie.
	ErrManualCodeRequired = errors.New("project code could not be resolved; a manual project code is required")
)

// Result is the outcome of processing one file.
type Result struct {
	Rows  []*domain.BillingRow
	Stats domain.ProcessingStats
}

// Analysis reports which projects a file contains before a full pass.
type Analysis struct {
	Projects      []domain.ProjectCode       `json:"projects"`
	ProjectCounts map[domain.ProjectCode]int `json:"projectCounts"`
}

// Processor walks workbooks and dispatches rows to the classifier chain.
type Processor struct {
	chain         classifier.Chain
	logger        *slog.Logger
	maxHeaderScan int
}

// Option configures a Processor.
type Option func(*Processor)

// WithMaxHeaderScan overrides how many leading rows per sheet are scanned
// for a header.
func WithMaxHeaderScan(n int) Option {
	return func(p *Processor) { p.maxHeaderScan = n }
}

// New creates a Processor with the production classifier chain.
func New(logger *slog.Logger, opts ...Option) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Processor{
		chain:         classifier.NewChain(),
		logger:        logger,
		maxHeaderScan: sheet.DefaultMaxHeaderScan,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs the full classification pass over a workbook and returns the
// canonical rows plus per-file statistics.
func (p *Processor) Process(r workbook.Reader, ctx domain.Context) (*Result, error) {
	if ctx.Now.IsZero() {
		ctx.Now = time.Now()
	}

	result := &Result{}
	headerFound := false
	unmatched := 0

	for _, sh := range r.Sheets() {
		headerIdx, ok := sheet.DetectHeader(sh.Rows, p.maxHeaderScan)
		if !ok {
			p.logger.Debug("sheet skipped, no billing header",
				slog.String("sheet", sh.Name),
				slog.String("file", ctx.FileName))
			continue
		}
		headerFound = true

		rows := sheet.Materialize(sh.Rows[headerIdx], sh.Rows[headerIdx+1:])
		p.logger.Info("processing sheet",
			slog.String("sheet", sh.Name),
			slog.String("file", ctx.FileName),
			slog.Int("header_row", headerIdx),
			slog.Int("data_rows", len(rows)))

		for _, row := range rows {
			result.Stats.Total++

			out, rej, matched := p.chain.Dispatch(row, ctx)
			if !matched {
				unmatched++
				result.Stats.SkippedEmpty++
				continue
			}
			if rej != nil {
				result.Stats.Count(rej.Reason)
				continue
			}

			if ctx.TargetProject != "" && out.Project != ctx.TargetProject {
				result.Stats.Count(domain.RejectProjectMismatch)
				continue
			}

			result.Rows = append(result.Rows, out)
			result.Stats.Processed++
		}
	}

	if !headerFound {
		return nil, ErrNoBillingSheet
	}
	if result.Stats.Total > 0 && unmatched == result.Stats.Total && ctx.ManualCode == "" {
		return nil, ErrManualCodeRequired
	}

	p.logger.Info("file processed",
		slog.String("file", ctx.FileName),
		slog.Int("total", result.Stats.Total),
		slog.Int("processed", result.Stats.Processed),
		slog.Int("skipped_old", result.Stats.SkippedOld),
		slog.Int("skipped_cancelled", result.Stats.SkippedCancelled),
		slog.Int("skipped_empty", result.Stats.SkippedEmpty),
		slog.Int("skipped_status", result.Stats.SkippedStatus))

	return result, nil
}

// Analyze runs the same dispatch without cutoff filtering and reports which
// project codes are present, including the TBD sentinel when rows need a
// manual code. Used upstream so an operator can assign the right code
// before committing to a full pass.
func (p *Processor) Analyze(r workbook.Reader, manualCode string) (*Analysis, error) {
	ctx := domain.Context{
		ManualCode:   manualCode,
		AnalysisMode: true,
		Now:          time.Now(),
	}

	analysis := &Analysis{ProjectCounts: make(map[domain.ProjectCode]int)}

	for _, sh := range r.Sheets() {
		headerIdx, ok := sheet.DetectHeader(sh.Rows, p.maxHeaderScan)
		if !ok {
			continue
		}

		rows := sheet.Materialize(sh.Rows[headerIdx], sh.Rows[headerIdx+1:])
		for _, row := range rows {
			out, _, matched := p.chain.Dispatch(row, ctx)
			if !matched || out == nil {
				continue
			}
			analysis.ProjectCounts[out.Project]++
		}
	}

	for code := range analysis.ProjectCounts {
		analysis.Projects = append(analysis.Projects, code)
	}
	sort.Slice(analysis.Projects, func(i, j int) bool {
		return analysis.Projects[i] < analysis.Projects[j]
	})

	return analysis, nil
}
