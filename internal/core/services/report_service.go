package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kamal-hamza/fsviz/internal/core/analysis"
	"github.com/kamal-hamza/fsviz/internal/core/domain"
	"github.com/kamal-hamza/fsviz/internal/core/ports"
)

// ReportService computes every chart dataset for a selection and hands it
// to a renderer
type ReportService struct {
	renderer ports.ChartRenderer
}

// NewReportService creates a new report service
func NewReportService(renderer ports.ChartRenderer) *ReportService {
	return &ReportService{
		renderer: renderer,
	}
}

// ReportRequest describes one selection of a scan
type ReportRequest struct {
	Result *domain.ScanResult
	Filter domain.ExtensionFilter

	HistoryField       domain.TimeField   // default: accessed
	HistoryGranularity domain.Granularity // default: month
	TrendGranularity   domain.Granularity // default: day
	Bins               int                // default: analysis.DefaultBins
	Location           *time.Location     // default: time.Local
}

func (r *ReportRequest) applyDefaults() {
	if r.HistoryField == "" {
		r.HistoryField = domain.TimeAccessed
	}
	if r.HistoryGranularity == "" {
		r.HistoryGranularity = domain.GranularityMonth
	}
	if r.TrendGranularity == "" {
		r.TrendGranularity = domain.GranularityDay
	}
	if r.Bins <= 0 {
		r.Bins = analysis.DefaultBins
	}
	if r.Location == nil {
		r.Location = time.Local
	}
}

// Build computes the report. The type table treats an empty filter as
// "all types"; every other view only draws the selected types.
func (s *ReportService) Build(req ReportRequest) (*domain.Report, error) {
	if req.Result == nil {
		return nil, fmt.Errorf("no scan result to report on")
	}
	req.applyDefaults()

	records := req.Result.Records
	filter := req.Filter

	return &domain.Report{
		Root:        req.Result.Root,
		GeneratedAt: time.Now(),
		Filter:      filter.Extensions(),
		Files:       len(records),
		Types:       analysis.AggregateTypes(records, filter),
		AccessHistory: analysis.Bucket(records, filter, analysis.BucketOptions{
			Field:            req.HistoryField,
			Granularity:      req.HistoryGranularity,
			Location:         req.Location,
			SplitByExtension: true,
		}),
		Trend:             analysis.Trend(records, filter, req.TrendGranularity, req.Location),
		Sizes:             analysis.SizeDistribution(records, filter, req.Bins),
		SizeVsModified:    analysis.Scatter(records, filter, domain.AxisModified, domain.AxisSize),
		SizeVsCreated:     analysis.Scatter(records, filter, domain.AxisCreated, domain.AxisSize),
		AccessedVsCreated: analysis.Scatter(records, filter, domain.AxisCreated, domain.AxisAccessed),
	}, nil
}

// Render builds the report and writes it through the renderer
func (s *ReportService) Render(ctx context.Context, w io.Writer, req ReportRequest) (*domain.Report, error) {
	report, err := s.Build(req)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.renderer.Render(w, report); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return report, nil
}
