package report

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"adsdash/internal/domain"
)

// Export delimiters. CSV uses commas; the spreadsheet variant uses tabs so
// desktop tools open it directly.
const (
	DelimiterCSV rune = ','
	DelimiterTab rune = '\t'
)

var detailHeaders = []string{
	"Date", "Campaign", "Ads Name", "Platform", "Objective",
	"Impressions", "Clicks", "CTR", "Budget", "Spent", "CostMetric",
}

var summaryHeaders = []string{
	"Campaign", "TotalImpressions", "TotalClicks", "TotalInstall",
	"TotalFollow", "TotalEngagement", "TotalSpent", "TotalBudget",
	"CTR", "CPM", "CPC", "CPI", "CPE",
}

var exportPrinter = message.NewPrinter(language.English)

// ExportDetail renders the detail view as delimiter-separated text. Fields
// containing the delimiter are quote-escaped; counts are locale-grouped and
// the cost metric falls back to "N/A" when undefined.
func ExportDetail(records []domain.AdRecord, delim rune) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = delim

	if err := w.Write(detailHeaders); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, r := range records {
		row := []string{
			fmt.Sprintf("%d/%d/%d", int(r.Date.Month()), r.Date.Day(), r.Date.Year()),
			r.Campaign,
			r.AdsName,
			r.Platform,
			string(r.Objective),
			formatCount(r.Impressions),
			formatCount(r.Clicks),
			strconv.FormatFloat(r.CTR, 'f', 2, 64),
			formatAmount(r.Budget),
			formatAmount(r.Spent),
			formatCostMetric(r.CostMetric),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return sb.String(), nil
}

// ExportSummary renders the grouped view. Monetary columns use MMK currency
// strings; CTR carries a percent suffix.
func ExportSummary(groups []domain.CampaignSummary, delim rune) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = delim

	if err := w.Write(summaryHeaders); err != nil {
		return "", fmt.Errorf("failed to write export header: %w", err)
	}

	for _, g := range groups {
		row := []string{
			g.Campaign,
			formatCount(g.Impressions),
			formatCount(g.Clicks),
			formatCount(g.Installs),
			formatCount(g.Follows),
			formatCount(g.Engagement),
			FormatCurrency(g.Spent),
			FormatCurrency(g.Budget),
			strconv.FormatFloat(g.CTR, 'f', 2, 64) + "%",
			FormatCurrency(g.CPM),
			FormatCurrency(g.CPC),
			FormatCurrency(g.CPI),
			FormatCurrency(g.CPE),
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("failed to write export row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush export: %w", err)
	}
	return sb.String(), nil
}

// FormatCurrency renders a monetary value as an MMK currency string with
// locale digit grouping, e.g. "MMK 1,234.56".
func FormatCurrency(v float64) string {
	return "MMK " + exportPrinter.Sprint(number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func formatCount(n int) string {
	return exportPrinter.Sprint(number.Decimal(n))
}

func formatAmount(v float64) string {
	return exportPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

func formatCostMetric(c domain.CostMetric) string {
	if c.IsNaN() {
		return "N/A"
	}
	return strconv.FormatFloat(float64(c), 'f', 2, 64)
}
