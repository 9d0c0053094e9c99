package report

import (
	"strings"
	"time"

	"adsdash/internal/domain"
)

// ApplyFilters filters records against criteria, evaluating relative date
// windows against the current wall clock.
func ApplyFilters(records []domain.AdRecord, c domain.FilterCriteria) []domain.AdRecord {
	return ApplyFiltersAt(records, c, time.Now())
}

// ApplyFiltersAt is ApplyFilters with an explicit reference time for the
// relative date windows. Order is preserved; all active predicates are
// combined with logical AND.
func ApplyFiltersAt(records []domain.AdRecord, c domain.FilterCriteria, now time.Time) []domain.AdRecord {
	campaignSearch := strings.ToLower(c.CampaignSearch)
	adsNameSearch := strings.ToLower(c.AdsNameSearch)
	start, end, dateActive := dateWindow(c, now)

	out := make([]domain.AdRecord, 0, len(records))
	for _, r := range records {
		if campaignSearch != "" && !strings.Contains(strings.ToLower(r.Campaign), campaignSearch) {
			continue
		}
		if adsNameSearch != "" && !strings.Contains(strings.ToLower(r.AdsName), adsNameSearch) {
			continue
		}
		if c.Platform != "" && c.Platform != domain.FilterAll && r.Platform != c.Platform {
			continue
		}
		if c.Objective != "" && c.Objective != domain.FilterAll && string(r.Objective) != c.Objective {
			continue
		}
		if dateActive && (r.Date.Before(start) || r.Date.After(end)) {
			continue
		}
		out = append(out, r)
	}

	return out
}

// dateWindow resolves a DateRange selector into a closed [start, end]
// interval. Relative windows anchor on "today" at local midnight; every end
// bound is the final millisecond of its day. The Custom range is inactive
// unless both bounds are supplied.
func dateWindow(c domain.FilterCriteria, now time.Time) (start, end time.Time, active bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch c.Range {
	case domain.DateRangeLast7Days:
		return today.AddDate(0, 0, -6), endOfDay(today), true
	case domain.DateRangeLast30Days:
		return today.AddDate(0, 0, -29), endOfDay(today), true
	case domain.DateRangeLastMonth:
		first := time.Date(today.Year(), today.Month()-1, 1, 0, 0, 0, 0, today.Location())
		last := time.Date(today.Year(), today.Month(), 0, 0, 0, 0, 0, today.Location())
		return first, endOfDay(last), true
	case domain.DateRangeCustom:
		if c.CustomStart.IsZero() || c.CustomEnd.IsZero() {
			return time.Time{}, time.Time{}, false
		}
		s := c.CustomStart
		e := c.CustomEnd
		return time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, s.Location()),
			endOfDay(time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, e.Location())),
			true
	default:
		return time.Time{}, time.Time{}, false
	}
}

func endOfDay(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, int(999*time.Millisecond), day.Location())
}
