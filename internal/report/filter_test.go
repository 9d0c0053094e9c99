package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsdash/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}

func adOn(date time.Time, campaign string) domain.AdRecord {
	return domain.AdRecord{
		Date:      date,
		Campaign:  campaign,
		AdsName:   campaign + " - Creative",
		Platform:  "Facebook",
		Objective: domain.ObjectiveClick,
	}
}

func campaigns(records []domain.AdRecord) []string {
	names := make([]string, 0, len(records))
	for _, r := range records {
		names = append(names, r.Campaign)
	}
	return names
}

func TestApplyFiltersCampaignSearchIsCaseInsensitiveSubstring(t *testing.T) {
	records := []domain.AdRecord{
		adOn(day(2024, time.June, 1), "Summer Launch"),
		adOn(day(2024, time.June, 2), "Winter Promo"),
		adOn(day(2024, time.June, 3), "MIDSUMMER Sale"),
	}

	got := ApplyFilters(records, domain.FilterCriteria{CampaignSearch: "summer"})

	assert.Equal(t, []string{"Summer Launch", "MIDSUMMER Sale"}, campaigns(got))
}

func TestApplyFiltersAdsNameSearch(t *testing.T) {
	records := []domain.AdRecord{
		{Date: day(2024, time.June, 1), Campaign: "A", AdsName: "Video Spot 01"},
		{Date: day(2024, time.June, 1), Campaign: "B", AdsName: "Static Banner"},
	}

	got := ApplyFilters(records, domain.FilterCriteria{AdsNameSearch: "video"})

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Campaign)
}

func TestApplyFiltersAllSentinelMatchesEverything(t *testing.T) {
	records := []domain.AdRecord{
		{Date: day(2024, time.June, 1), Platform: "Facebook", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.June, 1), Platform: "TikTok", Objective: domain.ObjectiveInstall},
	}

	got := ApplyFilters(records, domain.FilterCriteria{
		Platform:  domain.FilterAll,
		Objective: domain.FilterAll,
		Range:     domain.DateRangeAll,
	})

	assert.Len(t, got, 2)
}

func TestApplyFiltersPlatformAndObjectiveAreExactMatches(t *testing.T) {
	records := []domain.AdRecord{
		{Date: day(2024, time.June, 1), Campaign: "A", Platform: "Facebook", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.June, 1), Campaign: "B", Platform: "facebook", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.June, 1), Campaign: "C", Platform: "Facebook", Objective: domain.ObjectiveInstall},
	}

	got := ApplyFilters(records, domain.FilterCriteria{
		Platform:  "Facebook",
		Objective: string(domain.ObjectiveClick),
	})

	assert.Equal(t, []string{"A"}, campaigns(got))
}

func TestApplyFiltersAtLast7DaysWindow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 10, 30, 0, 0, time.Local)
	records := []domain.AdRecord{
		adOn(day(2024, time.June, 8), "one day too old"),
		adOn(day(2024, time.June, 9), "oldest in window"),
		adOn(day(2024, time.June, 15), "today"),
		adOn(day(2024, time.June, 16), "tomorrow"),
	}

	got := ApplyFiltersAt(records, domain.FilterCriteria{Range: domain.DateRangeLast7Days}, now)

	assert.Equal(t, []string{"oldest in window", "today"}, campaigns(got))
}

func TestApplyFiltersAtLast30DaysWindow(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	records := []domain.AdRecord{
		adOn(day(2024, time.May, 16), "outside"),
		adOn(day(2024, time.May, 17), "boundary"),
		adOn(day(2024, time.June, 15), "today"),
	}

	got := ApplyFiltersAt(records, domain.FilterCriteria{Range: domain.DateRangeLast30Days}, now)

	assert.Equal(t, []string{"boundary", "today"}, campaigns(got))
}

func TestApplyFiltersAtLastMonthIsPreviousCalendarMonth(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	records := []domain.AdRecord{
		adOn(day(2024, time.April, 30), "april"),
		adOn(day(2024, time.May, 1), "first of may"),
		adOn(day(2024, time.May, 31), "last of may"),
		adOn(day(2024, time.June, 1), "june"),
	}

	got := ApplyFiltersAt(records, domain.FilterCriteria{Range: domain.DateRangeLastMonth}, now)

	assert.Equal(t, []string{"first of may", "last of may"}, campaigns(got))
}

func TestApplyFiltersCustomRangeIsClosedInterval(t *testing.T) {
	records := []domain.AdRecord{
		adOn(day(2024, time.June, 4), "before"),
		adOn(day(2024, time.June, 5), "start"),
		adOn(day(2024, time.June, 10), "end"),
		adOn(day(2024, time.June, 11), "after"),
	}

	got := ApplyFilters(records, domain.FilterCriteria{
		Range:       domain.DateRangeCustom,
		CustomStart: day(2024, time.June, 5),
		CustomEnd:   day(2024, time.June, 10),
	})

	assert.Equal(t, []string{"start", "end"}, campaigns(got))
}

func TestApplyFiltersCustomRangeInactiveWithoutBothBounds(t *testing.T) {
	records := []domain.AdRecord{
		adOn(day(2024, time.June, 1), "A"),
		adOn(day(2030, time.January, 1), "B"),
	}

	missingEnd := ApplyFilters(records, domain.FilterCriteria{
		Range:       domain.DateRangeCustom,
		CustomStart: day(2024, time.June, 1),
	})
	missingStart := ApplyFilters(records, domain.FilterCriteria{
		Range:     domain.DateRangeCustom,
		CustomEnd: day(2024, time.June, 1),
	})

	assert.Len(t, missingEnd, 2)
	assert.Len(t, missingStart, 2)
}

func TestApplyFiltersCombinesPredicatesWithAND(t *testing.T) {
	now := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.Local)
	records := []domain.AdRecord{
		{Date: day(2024, time.June, 14), Campaign: "Summer Launch", Platform: "Facebook", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.June, 14), Campaign: "Summer Launch", Platform: "TikTok", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.May, 1), Campaign: "Summer Launch", Platform: "Facebook", Objective: domain.ObjectiveClick},
		{Date: day(2024, time.June, 14), Campaign: "Winter Promo", Platform: "Facebook", Objective: domain.ObjectiveClick},
	}

	got := ApplyFiltersAt(records, domain.FilterCriteria{
		CampaignSearch: "summer",
		Platform:       "Facebook",
		Range:          domain.DateRangeLast7Days,
	}, now)

	require.Len(t, got, 1)
	assert.Equal(t, "Facebook", got[0].Platform)
	assert.Equal(t, "Summer Launch", got[0].Campaign)
}

func TestApplyFiltersEmptyCriteriaReturnsAllInOrder(t *testing.T) {
	records := []domain.AdRecord{
		adOn(day(2024, time.June, 2), "B"),
		adOn(day(2024, time.June, 1), "A"),
	}

	got := ApplyFilters(records, domain.FilterCriteria{})

	assert.Equal(t, []string{"B", "A"}, campaigns(got))
}
