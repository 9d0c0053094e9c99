package report

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"adsdash/internal/domain"
)

// NextSortState advances the tri-state sort toggle for a clicked column:
// unsorted -> ascending -> descending -> unsorted. Clicking a different
// column always starts ascending on that column.
func NextSortState(s domain.SortState, key domain.SortKey) domain.SortState {
	if s.Key == key {
		switch s.Direction {
		case domain.SortAscending:
			return domain.SortState{Key: key, Direction: domain.SortDescending}
		case domain.SortDescending:
			return domain.SortState{Key: domain.SortKeyNone, Direction: domain.SortAscending}
		}
	}
	return domain.SortState{Key: key, Direction: domain.SortAscending}
}

// SortRecords returns a new slice ordered by the sort state. A cleared key
// returns the input order unchanged. Ties may reorder.
func SortRecords(records []domain.AdRecord, s domain.SortState) []domain.AdRecord {
	out := append([]domain.AdRecord(nil), records...)
	if s.Key == domain.SortKeyNone {
		return out
	}

	cmp := recordComparator(s.Key, collate.New(language.English))
	if cmp == nil {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Direction == domain.SortDescending {
			return c > 0
		}
		return c < 0
	})
	return out
}

// SortSummaries orders grouped campaign rows with the same key set and
// semantics as the detail view.
func SortSummaries(groups []domain.CampaignSummary, s domain.SortState) []domain.CampaignSummary {
	out := append([]domain.CampaignSummary(nil), groups...)
	if s.Key == domain.SortKeyNone {
		return out
	}

	cmp := summaryComparator(s.Key, collate.New(language.English))
	if cmp == nil {
		return out
	}

	sort.Slice(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if s.Direction == domain.SortDescending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func recordComparator(key domain.SortKey, col *collate.Collator) func(a, b domain.AdRecord) int {
	switch key {
	case domain.SortKeyDate:
		return func(a, b domain.AdRecord) int { return compareInt64(a.Date.UnixMilli(), b.Date.UnixMilli()) }
	case domain.SortKeyCampaign:
		return func(a, b domain.AdRecord) int { return col.CompareString(a.Campaign, b.Campaign) }
	case domain.SortKeyAdsName:
		return func(a, b domain.AdRecord) int { return col.CompareString(a.AdsName, b.AdsName) }
	case domain.SortKeyPlatform:
		return func(a, b domain.AdRecord) int { return col.CompareString(a.Platform, b.Platform) }
	case domain.SortKeyObjective:
		return func(a, b domain.AdRecord) int { return col.CompareString(string(a.Objective), string(b.Objective)) }
	case domain.SortKeyImpressions:
		return func(a, b domain.AdRecord) int { return compareInt64(int64(a.Impressions), int64(b.Impressions)) }
	case domain.SortKeyClicks:
		return func(a, b domain.AdRecord) int { return compareInt64(int64(a.Clicks), int64(b.Clicks)) }
	case domain.SortKeyInstalls:
		return func(a, b domain.AdRecord) int { return compareInt64(int64(a.Installs), int64(b.Installs)) }
	case domain.SortKeyFollows:
		return func(a, b domain.AdRecord) int { return compareInt64(int64(a.Follows), int64(b.Follows)) }
	case domain.SortKeyEngagement:
		return func(a, b domain.AdRecord) int { return compareInt64(int64(a.Engagement), int64(b.Engagement)) }
	case domain.SortKeyCTR:
		return func(a, b domain.AdRecord) int { return compareFloat(a.CTR, b.CTR) }
	case domain.SortKeyBudget:
		return func(a, b domain.AdRecord) int { return compareFloat(a.Budget, b.Budget) }
	case domain.SortKeySpent:
		return func(a, b domain.AdRecord) int { return compareFloat(a.Spent, b.Spent) }
	case domain.SortKeyCostMetric:
		return func(a, b domain.AdRecord) int { return compareFloat(float64(a.CostMetric), float64(b.CostMetric)) }
	default:
		return nil
	}
}

func summaryComparator(key domain.SortKey, col *collate.Collator) func(a, b domain.CampaignSummary) int {
	switch key {
	case domain.SortKeyCampaign:
		return func(a, b domain.CampaignSummary) int { return col.CompareString(a.Campaign, b.Campaign) }
	case domain.SortKeyImpressions:
		return func(a, b domain.CampaignSummary) int { return compareInt64(int64(a.Impressions), int64(b.Impressions)) }
	case domain.SortKeyClicks:
		return func(a, b domain.CampaignSummary) int { return compareInt64(int64(a.Clicks), int64(b.Clicks)) }
	case domain.SortKeyInstalls:
		return func(a, b domain.CampaignSummary) int { return compareInt64(int64(a.Installs), int64(b.Installs)) }
	case domain.SortKeyFollows:
		return func(a, b domain.CampaignSummary) int { return compareInt64(int64(a.Follows), int64(b.Follows)) }
	case domain.SortKeyEngagement:
		return func(a, b domain.CampaignSummary) int { return compareInt64(int64(a.Engagement), int64(b.Engagement)) }
	case domain.SortKeySpent:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.Spent, b.Spent) }
	case domain.SortKeyBudget:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.Budget, b.Budget) }
	case domain.SortKeyCTR:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.CTR, b.CTR) }
	case domain.SortKeyCPM:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.CPM, b.CPM) }
	case domain.SortKeyCPC:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.CPC, b.CPC) }
	case domain.SortKeyCPI:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.CPI, b.CPI) }
	case domain.SortKeyCPE:
		return func(a, b domain.CampaignSummary) int { return compareFloat(a.CPE, b.CPE) }
	default:
		return nil
	}
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareFloat treats NaN as equal to everything, so records with an
// undefined cost metric keep their relative positions.
func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
