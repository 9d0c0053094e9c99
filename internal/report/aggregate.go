package report

import "adsdash/internal/domain"

// GroupByCampaign folds records into one summary row per distinct campaign
// name, in first-seen order. Additive metrics are summed; ratio metrics are
// then recomputed from the group sums. Averaging per-record ratios would
// overweight small records, so it is never done here.
func GroupByCampaign(records []domain.AdRecord) []domain.CampaignSummary {
	index := make(map[string]int)
	groups := make([]domain.CampaignSummary, 0)

	for _, r := range records {
		i, ok := index[r.Campaign]
		if !ok {
			i = len(groups)
			index[r.Campaign] = i
			groups = append(groups, domain.CampaignSummary{Campaign: r.Campaign})
		}

		g := &groups[i]
		g.Impressions += r.Impressions
		g.Clicks += r.Clicks
		g.Installs += r.Installs
		g.Follows += r.Follows
		g.Engagement += r.Engagement
		g.Spent += r.Spent
		g.Budget += r.Budget
	}

	for i := range groups {
		g := &groups[i]
		g.CTR, g.CPM, g.CPC, g.CPI, g.CPE = ratioMetrics(g.Impressions, g.Clicks, g.Installs, g.Engagement, g.Spent)
	}

	return groups
}

// SummaryMetrics computes the dashboard totals over the whole filtered set
// as one implicit group. An empty set yields all zeros.
func SummaryMetrics(records []domain.AdRecord) domain.ReportTotals {
	var t domain.ReportTotals
	for _, r := range records {
		t.Impressions += r.Impressions
		t.Clicks += r.Clicks
		t.Installs += r.Installs
		t.Follows += r.Follows
		t.Engagement += r.Engagement
		t.Spent += r.Spent
		t.Budget += r.Budget
	}
	t.CTR, t.CPM, t.CPC, t.CPI, t.CPE = ratioMetrics(t.Impressions, t.Clicks, t.Installs, t.Engagement, t.Spent)
	return t
}

// ratioMetrics derives the ratio family from summed bases, each guarded to
// zero when its denominator is zero.
func ratioMetrics(impressions, clicks, installs, engagement int, spent float64) (ctr, cpm, cpc, cpi, cpe float64) {
	if impressions > 0 {
		ctr = float64(clicks) / float64(impressions) * 100
		cpm = spent / float64(impressions) * 1000
	}
	if clicks > 0 {
		cpc = spent / float64(clicks)
	}
	if installs > 0 {
		cpi = spent / float64(installs)
	}
	if engagement > 0 {
		cpe = spent / float64(engagement) * 1000
	}
	return ctr, cpm, cpc, cpi, cpe
}
