package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portsrepo "github.com/rumahamal/ref26-backend/internal/core/ports/repositories"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/utils/format"
)

// DashboardService computes the reporting dashboard aggregation over the
// donation ledger and the weekly target schedule.
type DashboardService struct {
	donationRepo portsrepo.DonationRepository
	targetRepo   portsrepo.TargetRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(donationRepo portsrepo.DonationRepository, targetRepo portsrepo.TargetRepository) *DashboardService {
	return &DashboardService{donationRepo: donationRepo, targetRepo: targetRepo}
}

var _ portssvc.DashboardSvcFacade = (*DashboardService)(nil)

// GetDashboardData aggregates validated donations into the dashboard payload.
// Only rows that are validated and carry a parseable date take part; date
// bounds are inclusive by calendar day.
func (s *DashboardService) GetDashboardData(ctx context.Context, filter domain.DashboardFilter) (*domain.DashboardData, error) {
	donations, err := s.donationRepo.ListDonations(ctx)
	if err != nil {
		return nil, err
	}

	data := &domain.DashboardData{
		Summary:      domain.DashboardSummary{TotalTarget: domain.TotalTarget},
		WeeklyData:   []domain.WeeklyPoint{},
		CampaignData: []domain.BreakdownEntry{},
		OrganData:    []domain.BreakdownEntry{},
	}
	if len(donations) == 0 {
		return data, nil
	}

	filtered := filterDonations(donations, filter)

	donors := map[string]struct{}{}
	for _, d := range filtered {
		data.Summary.TotalDonasi += d.AmountValue()
		if d.DonorName != "" {
			donors[d.DonorName] = struct{}{}
		}
	}
	data.Summary.TotalDonatur = len(donors)
	data.Summary.TotalTransaksi = len(filtered)
	data.Summary.ProgressPercent = percentOf(data.Summary.TotalDonasi, domain.TotalTarget)

	// The progress chart is cumulative toward the overall target, so it
	// ignores the filter's start bound and counts everything up to each
	// week's end.
	cumulativeFilter := filter
	cumulativeFilter.StartDate = nil
	data.WeeklyData = s.weeklyProgress(ctx, filterDonations(donations, cumulativeFilter))

	data.CampaignData = breakdownBy(filtered, func(d domain.Donation) string { return d.Campaign })
	data.OrganData = breakdownBy(filtered, func(d domain.Donation) string { return d.ExecutingProgram })

	return data, nil
}

// filterDonations keeps validated, dated rows matching the filter.
func filterDonations(donations []domain.Donation, filter domain.DashboardFilter) []domain.Donation {
	out := make([]domain.Donation, 0, len(donations))
	for _, d := range donations {
		if d.Status != domain.DonationValidated || d.OccurredAt == nil {
			continue
		}
		if filter.StartDate != nil && d.OccurredAt.Before(startOfDay(*filter.StartDate)) {
			continue
		}
		if filter.EndDate != nil && !d.OccurredAt.Before(nextDay(*filter.EndDate)) {
			continue
		}
		if filter.FiltersCampaign() && d.Campaign != filter.Campaign {
			continue
		}
		if filter.FiltersOrgan() && d.ExecutingProgram != filter.Organ {
			continue
		}
		out = append(out, d)
	}
	return out
}

// weeklyProgress builds the cumulative pekan series against the target
// schedule, falling back to the built-in schedule when the table is empty or
// unreachable.
func (s *DashboardService) weeklyProgress(ctx context.Context, donations []domain.Donation) []domain.WeeklyPoint {
	targets, err := s.targetRepo.ListWeeklyTargets(ctx)
	if err != nil || len(targets) == 0 {
		targets = domain.DefaultWeeklyTargets()
	}
	sort.SliceStable(targets, func(i, j int) bool {
		return targets[i].StartDate.Before(targets[j].StartDate)
	})

	points := make([]domain.WeeklyPoint, len(targets))
	for i, target := range targets {
		cutoff := nextDay(target.EndDate)
		var capaian int64
		for _, d := range donations {
			if d.OccurredAt.Before(cutoff) {
				capaian += d.AmountValue()
			}
		}
		points[i] = domain.WeeklyPoint{
			Week:    fmt.Sprintf("%s (%s - %s)", target.Label, format.FormatDayMonth(target.StartDate), format.FormatDayMonth(target.EndDate)),
			WeekKey: target.Label,
			Capaian: capaian,
			Target:  target.TargetAmount,
			Percent: target.Percent,
		}
	}
	return points
}

// breakdownBy sums donation amounts per key, skipping rows whose key is empty,
// and returns the entries sorted by amount descending.
func breakdownBy(donations []domain.Donation, key func(domain.Donation) string) []domain.BreakdownEntry {
	totals := map[string]int64{}
	for _, d := range donations {
		if k := key(d); k != "" {
			totals[k] += d.AmountValue()
		}
	}

	entries := make([]domain.BreakdownEntry, 0, len(totals))
	for name, total := range totals {
		entries = append(entries, domain.BreakdownEntry{Name: name, Total: total})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func percentOf(amount, target int64) int {
	if target == 0 {
		return 0
	}
	return int(math.Round(float64(amount) / float64(target) * 100))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func nextDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1)
}
