// Package report implements the reporting pipeline: normalization of raw
// feed rows, filtering, sorting, campaign aggregation, summary totals,
// pagination and export. Every function is pure; callers own all state and
// recompute on each change.
package report

import (
	"math"
	"strconv"
	"strings"
	"time"

	"adsdash/internal/domain"
)

// Normalize converts raw feed rows into typed records in one pass. Input
// order is preserved. Rows whose date cannot be parsed are dropped; every
// other malformed field silently defaults to zero so a messy feed still
// produces a usable report.
func Normalize(raw []domain.RawAdRecord) []domain.AdRecord {
	records := make([]domain.AdRecord, 0, len(raw))

	for _, r := range raw {
		date, ok := parseFeedDate(r.Date)
		if !ok {
			continue
		}

		impressions := parseGroupedInt(r.Impression)
		clicks := parseGroupedInt(r.Click)
		installs := parseGroupedInt(r.Install)
		follows := parseGroupedInt(r.Follow)
		engagement := parseGroupedInt(r.Engagement)
		spent := parseGroupedFloat(r.Spent)
		budget := parseGroupedFloat(r.Budget)

		var ctr float64
		if impressions > 0 {
			ctr = float64(clicks) / float64(impressions) * 100
		}

		objective := domain.Objective(r.Objective)

		records = append(records, domain.AdRecord{
			Date:         date,
			Campaign:     r.Campaign,
			AdsName:      r.AdsName,
			Platform:     r.Platform,
			Objective:    objective,
			Impressions:  impressions,
			Clicks:       clicks,
			Installs:     installs,
			Follows:      follows,
			Engagement:   engagement,
			Spent:        spent,
			Budget:       budget,
			CTR:          ctr,
			CostMetric:   computeCostMetric(objective, spent, impressions, clicks, installs, engagement),
			DeviceTarget: r.DeviceTarget,
			Segment:      r.Segment,
		})
	}

	return records
}

// computeCostMetric derives the objective-dependent cost ratio. Each branch
// guards its denominator to zero; an unrecognized objective yields NaN,
// rendered as "N/A" at presentation time.
func computeCostMetric(objective domain.Objective, spent float64, impressions, clicks, installs, engagement int) domain.CostMetric {
	switch objective {
	case domain.ObjectiveImpression:
		if impressions > 0 {
			return domain.CostMetric(spent / float64(impressions) * 1000)
		}
		return 0
	case domain.ObjectiveClick:
		if clicks > 0 {
			return domain.CostMetric(spent / float64(clicks))
		}
		return 0
	case domain.ObjectiveInstall:
		if installs > 0 {
			return domain.CostMetric(spent / float64(installs))
		}
		return 0
	case domain.ObjectiveEngagement:
		if engagement > 0 {
			return domain.CostMetric(spent / float64(engagement) * 1000)
		}
		return 0
	default:
		return domain.CostMetric(math.NaN())
	}
}

// parseFeedDate parses "M/D/YYYY" (1-indexed month) into a local-midnight
// calendar date. Out-of-range components normalize the way the feed's
// producers expect (month 13 rolls into the next year); anything
// non-numeric fails.
func parseFeedDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
}

// parseGroupedInt strips thousands separators and parses an integer.
// Failure yields 0, never an error.
func parseGroupedInt(s string) int {
	n, err := strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// parseGroupedFloat strips thousands separators and parses a float.
// Failure yields 0.
func parseGroupedFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil || f < 0 || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0
	}
	return f
}
