package domain

import "time"

// FilterAll is the sentinel meaning "no filter" for campaign/organ filters.
const FilterAll = "all"

// DashboardFilter narrows the dashboard aggregation. Nil dates and
// empty/"all" strings mean no filtering on that dimension; date bounds are
// inclusive.
type DashboardFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Campaign  string
	Organ     string
}

// FiltersCampaign reports whether the campaign dimension is constrained.
func (f DashboardFilter) FiltersCampaign() bool {
	return f.Campaign != "" && f.Campaign != FilterAll
}

// FiltersOrgan reports whether the organ dimension is constrained.
func (f DashboardFilter) FiltersOrgan() bool {
	return f.Organ != "" && f.Organ != FilterAll
}

// DashboardSummary holds the headline numbers of the reporting dashboard.
type DashboardSummary struct {
	TotalDonasi     int64
	TotalDonatur    int
	TotalTransaksi  int
	ProgressPercent int
	TotalTarget     int64
}

// WeeklyPoint is one pekan on the cumulative progress chart. Capaian is the
// running total of all validated donations dated up to the week's end,
// regardless of the filter's start bound (total progress toward target).
type WeeklyPoint struct {
	Week    string
	WeekKey string
	Capaian int64
	Target  int64
	Percent int
}

// BreakdownEntry is one campaign or organ with its summed donation amount.
type BreakdownEntry struct {
	Name  string
	Total int64
}

// DashboardData is the full aggregation result.
type DashboardData struct {
	Summary      DashboardSummary
	WeeklyData   []WeeklyPoint
	CampaignData []BreakdownEntry
	OrganData    []BreakdownEntry
}
