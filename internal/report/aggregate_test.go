package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adsdash/internal/domain"
)

func TestGroupByCampaignRecomputesRatiosFromSums(t *testing.T) {
	records := []domain.AdRecord{
		{Campaign: "A", Impressions: 1000, Clicks: 50, CTR: 5.0},
		{Campaign: "A", Impressions: 3000, Clicks: 50, CTR: 1.6666},
	}

	groups := GroupByCampaign(records)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, 4000, g.Impressions)
	assert.Equal(t, 100, g.Clicks)
	// 100/4000*100, not the mean of the per-record CTRs (3.33)
	assert.InDelta(t, 2.5, g.CTR, 1e-9)
}

func TestGroupByCampaignFirstSeenOrder(t *testing.T) {
	records := []domain.AdRecord{
		{Campaign: "Winter Promo"},
		{Campaign: "Summer Launch"},
		{Campaign: "Winter Promo"},
		{Campaign: "App Install Push"},
	}

	groups := GroupByCampaign(records)

	require.Len(t, groups, 3)
	assert.Equal(t, "Winter Promo", groups[0].Campaign)
	assert.Equal(t, "Summer Launch", groups[1].Campaign)
	assert.Equal(t, "App Install Push", groups[2].Campaign)
}

func TestGroupByCampaignDerivedMetrics(t *testing.T) {
	records := []domain.AdRecord{
		{Campaign: "A", Impressions: 2000, Clicks: 100, Installs: 20, Engagement: 500, Spent: 400, Budget: 1000},
		{Campaign: "A", Impressions: 2000, Clicks: 100, Installs: 30, Engagement: 500, Spent: 600, Budget: 1000},
	}

	groups := GroupByCampaign(records)

	require.Len(t, groups, 1)
	g := groups[0]
	assert.InDelta(t, 5.0, g.CTR, 1e-9)                // 200/4000*100
	assert.InDelta(t, 250.0, g.CPM, 1e-9)              // 1000/4000*1000
	assert.InDelta(t, 5.0, g.CPC, 1e-9)                // 1000/200
	assert.InDelta(t, 20.0, g.CPI, 1e-9)               // 1000/50
	assert.InDelta(t, 1000.0, g.CPE, 1e-9)             // 1000/1000*1000
	assert.InDelta(t, 2000.0, g.Budget, 1e-9)
	assert.InDelta(t, 1000.0, g.Spent, 1e-9)
}

func TestGroupByCampaignGuardsZeroDenominators(t *testing.T) {
	groups := GroupByCampaign([]domain.AdRecord{
		{Campaign: "A", Spent: 500},
	})

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Zero(t, g.CTR)
	assert.Zero(t, g.CPM)
	assert.Zero(t, g.CPC)
	assert.Zero(t, g.CPI)
	assert.Zero(t, g.CPE)
}

func TestGroupByCampaignEmptyInput(t *testing.T) {
	assert.Empty(t, GroupByCampaign(nil))
}

func TestSummaryMetricsTotalsWholeSet(t *testing.T) {
	records := []domain.AdRecord{
		{Campaign: "A", Impressions: 1000, Clicks: 50, Spent: 500},
		{Campaign: "B", Impressions: 1000, Clicks: 150, Spent: 300},
	}

	totals := SummaryMetrics(records)

	assert.Equal(t, 2000, totals.Impressions)
	assert.Equal(t, 200, totals.Clicks)
	assert.InDelta(t, 800.0, totals.Spent, 1e-9)
	assert.InDelta(t, 10.0, totals.CTR, 1e-9)  // 200/2000*100
	assert.InDelta(t, 400.0, totals.CPM, 1e-9) // 800/2000*1000
	assert.InDelta(t, 4.0, totals.CPC, 1e-9)   // 800/200
}

func TestSummaryMetricsEmptySetIsAllZero(t *testing.T) {
	totals := SummaryMetrics(nil)

	assert.Equal(t, domain.ReportTotals{}, totals)
}
