package domain

import "time"

// FilterAll is the sentinel that disables a categorical filter.
const FilterAll = "All"

// DateRange selects a relative or custom date window.
type DateRange string

const (
	DateRangeAll        DateRange = "All"
	DateRangeLast7Days  DateRange = "Last 7 Days"
	DateRangeLast30Days DateRange = "Last 30 Days"
	DateRangeLastMonth  DateRange = "Last Month"
	DateRangeCustom     DateRange = "Custom"
)

// FilterCriteria describes which records survive filtering. Empty text
// criteria and the FilterAll sentinel disable their respective predicates;
// active predicates combine with logical AND.
type FilterCriteria struct {
	CampaignSearch string    `json:"campaign_search,omitempty"`
	AdsNameSearch  string    `json:"ads_name_search,omitempty"`
	Platform       string    `json:"platform,omitempty"`
	Objective      string    `json:"objective,omitempty"`
	Range          DateRange `json:"range,omitempty"`

	// Custom bounds. The Custom range stays inactive unless both are set.
	CustomStart time.Time `json:"custom_start,omitempty"`
	CustomEnd   time.Time `json:"custom_end,omitempty"`
}

// SortKey names a sortable column. SortKeyNone means unsorted.
type SortKey string

const (
	SortKeyNone SortKey = ""

	SortKeyDate        SortKey = "date"
	SortKeyCampaign    SortKey = "campaign"
	SortKeyAdsName     SortKey = "ads_name"
	SortKeyPlatform    SortKey = "platform"
	SortKeyObjective   SortKey = "objective"
	SortKeyImpressions SortKey = "impressions"
	SortKeyClicks      SortKey = "clicks"
	SortKeyInstalls    SortKey = "installs"
	SortKeyFollows     SortKey = "follows"
	SortKeyEngagement  SortKey = "engagement"
	SortKeyCTR         SortKey = "ctr"
	SortKeyBudget      SortKey = "budget"
	SortKeySpent       SortKey = "spent"
	SortKeyCostMetric  SortKey = "cost_metric"
	SortKeyCPM         SortKey = "cpm"
	SortKeyCPC         SortKey = "cpc"
	SortKeyCPI         SortKey = "cpi"
	SortKeyCPE         SortKey = "cpe"
)

// SortDirection orders ascending or descending.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// SortState is the current sort request. A cleared Key leaves the input
// order untouched.
type SortState struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

// PageInfo describes one page of a fully materialized detail view.
// StartIndex/EndIndex are 1-based display positions; StartIndex is 0 for an
// empty result set.
type PageInfo struct {
	Page        int  `json:"page"`
	RowsPerPage int  `json:"rows_per_page"`
	TotalRows   int  `json:"total_rows"`
	TotalPages  int  `json:"total_pages"`
	StartIndex  int  `json:"start_index"`
	EndIndex    int  `json:"end_index"`
	HasMore     bool `json:"has_more"`
}
