package dto

import (
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	"github.com/rumahamal/ref26-backend/internal/utils/format"
)

// DashboardQuery holds the dashboard filter query parameters. Dates are ISO
// "YYYY-MM-DD" strings; campaign/organ use "all" as the no-filter sentinel.
type DashboardQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Campaign  string `form:"campaign"`
	Organ     string `form:"organ"`
}

// SummaryResponse mirrors the legacy dashboard summary block.
type SummaryResponse struct {
	TotalDonasi     int64 `json:"totalDonasi"`
	TotalDonatur    int   `json:"totalDonatur"`
	TotalTransaksi  int   `json:"totalTransaksi"`
	ProgressPercent int   `json:"progressPercent"`
	TotalTarget     int64 `json:"totalTarget"`
}

// WeeklyPointResponse is one pekan on the cumulative progress chart.
type WeeklyPointResponse struct {
	Week    string `json:"week"`
	WeekKey string `json:"weekKey"`
	Capaian int64  `json:"capaian"`
	Target  int64  `json:"target"`
	Percent int    `json:"percent"`
}

// CampaignEntryResponse is one bar of the per-campaign chart.
type CampaignEntryResponse struct {
	Campaign string `json:"campaign"`
	Capaian  int64  `json:"capaian"`
}

// OrganEntryResponse is one row of the per-organ table.
type OrganEntryResponse struct {
	Organ        string `json:"organ"`
	JumlahDonasi int64  `json:"jumlah_donasi"`
}

// CampaignTableEntryResponse is the tabular view of the campaign breakdown.
type CampaignTableEntryResponse struct {
	Campaign     string `json:"campaign"`
	JumlahDonasi int64  `json:"jumlah_donasi"`
}

// DashboardResponse is the full dashboard payload.
type DashboardResponse struct {
	Summary           SummaryResponse              `json:"summary"`
	WeeklyData        []WeeklyPointResponse        `json:"weeklyData"`
	CampaignData      []CampaignEntryResponse      `json:"campaignData"`
	OrganData         []OrganEntryResponse         `json:"organData"`
	CampaignTableData []CampaignTableEntryResponse `json:"campaignTableData"`
}

// ToDashboardResponse converts the aggregation result to its wire shape.
func ToDashboardResponse(data *domain.DashboardData) DashboardResponse {
	weekly := make([]WeeklyPointResponse, len(data.WeeklyData))
	for i, w := range data.WeeklyData {
		weekly[i] = WeeklyPointResponse{
			Week:    w.Week,
			WeekKey: w.WeekKey,
			Capaian: w.Capaian,
			Target:  w.Target,
			Percent: w.Percent,
		}
	}

	campaigns := make([]CampaignEntryResponse, len(data.CampaignData))
	campaignTable := make([]CampaignTableEntryResponse, len(data.CampaignData))
	for i, c := range data.CampaignData {
		campaigns[i] = CampaignEntryResponse{Campaign: c.Name, Capaian: c.Total}
		campaignTable[i] = CampaignTableEntryResponse{Campaign: c.Name, JumlahDonasi: c.Total}
	}

	organs := make([]OrganEntryResponse, len(data.OrganData))
	for i, o := range data.OrganData {
		organs[i] = OrganEntryResponse{Organ: o.Name, JumlahDonasi: o.Total}
	}

	return DashboardResponse{
		Summary: SummaryResponse{
			TotalDonasi:     data.Summary.TotalDonasi,
			TotalDonatur:    data.Summary.TotalDonatur,
			TotalTransaksi:  data.Summary.TotalTransaksi,
			ProgressPercent: data.Summary.ProgressPercent,
			TotalTarget:     data.Summary.TotalTarget,
		},
		WeeklyData:        weekly,
		CampaignData:      campaigns,
		OrganData:         organs,
		CampaignTableData: campaignTable,
	}
}

// ToFilter parses the query into a domain filter. Unparsable dates are
// ignored, matching the lenient legacy behaviour.
func (q DashboardQuery) ToFilter() domain.DashboardFilter {
	f := domain.DashboardFilter{Campaign: q.Campaign, Organ: q.Organ}
	if t, ok := format.ParseRawDate(q.StartDate); ok {
		f.StartDate = &t
	}
	if t, ok := format.ParseRawDate(q.EndDate); ok {
		f.EndDate = &t
	}
	return f
}
