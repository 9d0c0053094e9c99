package domain

import (
	"encoding/json"
	"math"
	"time"
)

// Objective is the campaign goal category. It drives which cost metric
// applies to a record. The set is open ended: unknown values are kept but
// produce a NaN cost metric.
type Objective string

const (
	ObjectiveImpression Objective = "Impression"
	ObjectiveClick      Objective = "Click"
	ObjectiveInstall    Objective = "Install"
	ObjectiveEngagement Objective = "Engagement"
)

// RawAdRecord is one row of the analytics feed as delivered upstream.
// Numeric fields arrive as comma-grouped strings ("12,345"), the date as
// M/D/YYYY. The feed owns this shape; we never mutate it.
type RawAdRecord struct {
	Date         string `json:"Date"`
	Campaign     string `json:"Core Campaign Name"`
	AdsName      string `json:"Ads Campaign Name"`
	Platform     string `json:"Platform"`
	Objective    string `json:"Objective"`
	Impression   string `json:"Impression"`
	Click        string `json:"Click"`
	Install      string `json:"Install"`
	Follow       string `json:"Follow"`
	Engagement   string `json:"Engagement"`
	Spent        string `json:"Spent"`
	Budget       string `json:"Budget"`
	DeviceTarget string `json:"Device Target"`
	Segment      string `json:"Segment"`
}

// CostMetric is the objective-dependent cost ratio of a record. It is NaN
// when the objective is unrecognized; NaN marshals as JSON null since
// encoding/json cannot represent it.
type CostMetric float64

func (c CostMetric) IsNaN() bool {
	return math.IsNaN(float64(c))
}

func (c CostMetric) MarshalJSON() ([]byte, error) {
	if c.IsNaN() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

func (c *CostMetric) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = CostMetric(math.NaN())
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*c = CostMetric(f)
	return nil
}

// AdRecord is a normalized feed row: typed numerics, a calendar date at
// local midnight, and the derived CTR and cost metric.
type AdRecord struct {
	Date         time.Time  `json:"date"`
	Campaign     string     `json:"campaign"`
	AdsName      string     `json:"ads_name"`
	Platform     string     `json:"platform"`
	Objective    Objective  `json:"objective"`
	Impressions  int        `json:"impressions"`
	Clicks       int        `json:"clicks"`
	Installs     int        `json:"installs"`
	Follows      int        `json:"follows"`
	Engagement   int        `json:"engagement"`
	Spent        float64    `json:"spent"`
	Budget       float64    `json:"budget"`
	CTR          float64    `json:"ctr"`
	CostMetric   CostMetric `json:"cost_metric"`
	DeviceTarget string     `json:"device_target"`
	Segment      string     `json:"segment"`
}

// CampaignSummary aggregates all records of one campaign. Additive metrics
// are sums; ratio metrics are recomputed from those sums, never averaged
// from per-record ratios.
type CampaignSummary struct {
	Campaign    string  `json:"campaign"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Installs    int     `json:"installs"`
	Follows     int     `json:"follows"`
	Engagement  int     `json:"engagement"`
	Spent       float64 `json:"spent"`
	Budget      float64 `json:"budget"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	CPI         float64 `json:"cpi"`
	CPE         float64 `json:"cpe"`
}

// ReportTotals holds the dashboard-level sums and ratios over an entire
// filtered set, treated as one implicit group.
type ReportTotals struct {
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Installs    int     `json:"installs"`
	Follows     int     `json:"follows"`
	Engagement  int     `json:"engagement"`
	Spent       float64 `json:"spent"`
	Budget      float64 `json:"budget"`
	CTR         float64 `json:"ctr"`
	CPM         float64 `json:"cpm"`
	CPC         float64 `json:"cpc"`
	CPI         float64 `json:"cpi"`
	CPE         float64 `json:"cpe"`
}
