package usecase

import (
	"context"
	"fmt"
	"time"

	"adsdash/internal/domain"
	"adsdash/internal/report"
	"adsdash/pkg/logger"
	"adsdash/pkg/metrics"
)

// ExportView selects which report an export renders.
type ExportView string

const (
	ExportViewDetail  ExportView = "detail"
	ExportViewSummary ExportView = "summary"
)

// ExportFormat selects the delimiter of an export.
type ExportFormat string

const (
	ExportFormatCSV   ExportFormat = "csv"
	ExportFormatExcel ExportFormat = "excel"
)

// ReportQuery is one detail-view request: filters, sort and page window.
type ReportQuery struct {
	Criteria domain.FilterCriteria
	Sort     domain.SortState
	Page     int
	Rows     int
}

// DetailReport is the paginated detail view plus the dashboard totals over
// the whole filtered (unsorted) set.
type DetailReport struct {
	Rows   []domain.AdRecord   `json:"rows"`
	Paging domain.PageInfo     `json:"paging"`
	Totals domain.ReportTotals `json:"totals"`
}

// SummaryReport is the campaign-grouped view plus the same totals.
type SummaryReport struct {
	Groups []domain.CampaignSummary `json:"groups"`
	Totals domain.ReportTotals      `json:"totals"`
}

// ExportResult is a rendered delimiter-separated report.
type ExportResult struct {
	Filename    string
	ContentType string
	Content     string
}

// ReportService fetches the feed and runs the reporting pipeline. Every
// request recomputes from a fresh fetch; there is no cache and no partial
// result on failure.
type ReportService struct {
	feed    domain.FeedClient
	logger  *logger.Logger
	metrics *metrics.Metrics

	// now is the clock used for relative date windows.
	now func() time.Time
}

// NewReportService creates a new report service
func NewReportService(feed domain.FeedClient, logger *logger.Logger, metrics *metrics.Metrics) *ReportService {
	return &ReportService{
		feed:    feed,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// RawFeed forwards the upstream feed untouched, for the proxy endpoint.
func (s *ReportService) RawFeed(ctx context.Context) ([]domain.RawAdRecord, error) {
	raw, err := s.feed.FetchFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads feed: %w", err)
	}
	return raw, nil
}

// DetailReport computes the filtered, sorted, paginated detail view.
func (s *ReportService) DetailReport(ctx context.Context, q ReportQuery) (*DetailReport, error) {
	filtered, err := s.filteredWorkingSet(ctx, q.Criteria)
	if err != nil {
		return nil, err
	}

	// Totals always cover the filtered-but-unsorted set.
	totals := report.SummaryMetrics(filtered)
	sorted := report.SortRecords(filtered, q.Sort)
	rows, paging := report.Paginate(sorted, q.Page, q.Rows)

	s.metrics.RecordReportQuery("detail")

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"filtered": len(filtered),
		"page":     paging.Page,
		"rows":     len(rows),
	}).Info("Computed detail report")

	return &DetailReport{Rows: rows, Paging: paging, Totals: totals}, nil
}

// SummaryReport computes the campaign-grouped view.
func (s *ReportService) SummaryReport(ctx context.Context, criteria domain.FilterCriteria, sortState domain.SortState) (*SummaryReport, error) {
	filtered, err := s.filteredWorkingSet(ctx, criteria)
	if err != nil {
		return nil, err
	}

	totals := report.SummaryMetrics(filtered)
	groups := report.SortSummaries(report.GroupByCampaign(filtered), sortState)

	s.metrics.RecordReportQuery("summary")

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"filtered": len(filtered),
		"groups":   len(groups),
	}).Info("Computed summary report")

	return &SummaryReport{Groups: groups, Totals: totals}, nil
}

// Export renders a view as delimiter-separated text. The detail export
// covers all filtered rows, not just the current page.
func (s *ReportService) Export(ctx context.Context, view ExportView, format ExportFormat, criteria domain.FilterCriteria, sortState domain.SortState) (*ExportResult, error) {
	filtered, err := s.filteredWorkingSet(ctx, criteria)
	if err != nil {
		return nil, err
	}

	delim := report.DelimiterCSV
	contentType := "text/csv; charset=utf-8"
	ext := "csv"
	if format == ExportFormatExcel {
		delim = report.DelimiterTab
		contentType = "text/tab-separated-values; charset=utf-8"
		ext = "xls"
	}

	var content, name string
	switch view {
	case ExportViewSummary:
		groups := report.SortSummaries(report.GroupByCampaign(filtered), sortState)
		content, err = report.ExportSummary(groups, delim)
		name = "summary_report." + ext
	default:
		rows := report.SortRecords(filtered, sortState)
		content, err = report.ExportDetail(rows, delim)
		name = "detailed_report." + ext
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	s.metrics.RecordReportQuery("export")

	s.logger.WithContext(ctx).WithFields(map[string]interface{}{
		"view":   view,
		"format": format,
		"rows":   len(filtered),
	}).Info("Rendered report export")

	return &ExportResult{Filename: name, ContentType: contentType, Content: content}, nil
}

// filteredWorkingSet fetches, normalizes and filters the feed. The fetch
// failure path discards everything: no partial results.
func (s *ReportService) filteredWorkingSet(ctx context.Context, criteria domain.FilterCriteria) ([]domain.AdRecord, error) {
	raw, err := s.feed.FetchFeed(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch ads feed: %w", err)
	}

	records := report.Normalize(raw)
	s.metrics.RecordFeedRecords("normalized", len(records))
	if dropped := len(raw) - len(records); dropped > 0 {
		s.metrics.RecordFeedRecords("dropped", dropped)
		s.logger.WithContext(ctx).WithField("count", dropped).Warn("Dropped feed records with unparsable dates")
	}

	return report.ApplyFiltersAt(records, criteria, s.now()), nil
}
