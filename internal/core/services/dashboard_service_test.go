package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/core/services"
)

// --- Test Suite ---
type DashboardServiceTestSuite struct {
	suite.Suite
	mockDonations *MockDonationRepository
	mockTargets   *MockTargetRepository
	service       portssvc.DashboardSvcFacade
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockDonations = new(MockDonationRepository)
	suite.mockTargets = new(MockTargetRepository)
	suite.service = services.NewDashboardService(suite.mockDonations, suite.mockTargets)
}

func (suite *DashboardServiceTestSuite) useFallbackTargets() {
	suite.mockTargets.On("ListWeeklyTargets", mock.Anything).Return(nil, assert.AnError).Maybe()
}

func validatedDonation(day int, amount int64, donor, campaign, organ string) domain.Donation {
	t := time.Date(2026, 2, day, 12, 0, 0, 0, time.Local)
	return domain.Donation{
		OccurredAt: &t,
		Amount:     &amount,
		DonorName:  donor,
		Status:     domain.DonationValidated,
		ValidationFields: domain.ValidationFields{
			Campaign:         campaign,
			ExecutingProgram: organ,
		},
	}
}

// --- Test Cases ---

func (suite *DashboardServiceTestSuite) TestGetDashboardData_EmptyLedger() {
	ctx := context.Background()
	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)
	suite.Equal(int64(0), data.Summary.TotalDonasi)
	suite.Equal(0, data.Summary.TotalDonatur)
	suite.Equal(0, data.Summary.TotalTransaksi)
	suite.Equal(0, data.Summary.ProgressPercent)
	suite.Equal(domain.TotalTarget, data.Summary.TotalTarget)
	suite.Empty(data.WeeklyData)
	suite.Empty(data.CampaignData)
	suite.Empty(data.OrganData)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_OnlyValidatedDatedRowsCount() {
	ctx := context.Background()
	suite.useFallbackTargets()

	rejected := validatedDonation(20, 999_999, "X", "", "")
	rejected.Status = domain.DonationRejected
	pending := validatedDonation(20, 888_888, "Y", "", "")
	pending.Status = domain.DonationPending
	amount := int64(777_777)
	undated := domain.Donation{Amount: &amount, DonorName: "Z", Status: domain.DonationValidated}

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 100_000, "Budi", "Sahur Ceria", "LAZ"),
		rejected,
		pending,
		undated,
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)
	suite.Equal(int64(100_000), data.Summary.TotalDonasi)
	suite.Equal(1, data.Summary.TotalDonatur)
	suite.Equal(1, data.Summary.TotalTransaksi)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_ProgressPercentRounds() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 144_700_000, "Budi", "", ""),
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)
	suite.Equal(10, data.Summary.ProgressPercent)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_AllSentinelEqualsNoFilter() {
	ctx := context.Background()
	suite.useFallbackTargets()

	donations := []domain.Donation{
		validatedDonation(20, 100_000, "Budi", "Sahur Ceria", "LAZ"),
		validatedDonation(21, 200_000, "Ani", "Infaq Kilat", "DKM"),
	}
	suite.mockDonations.On("ListDonations", ctx).Return(donations, nil).Twice()

	unfiltered, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})
	suite.Require().NoError(err)

	allFiltered, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{
		Campaign: domain.FilterAll,
		Organ:    domain.FilterAll,
	})
	suite.Require().NoError(err)

	suite.Equal(unfiltered, allFiltered)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_CampaignAndOrganFilters() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 100_000, "Budi", "Sahur Ceria", "LAZ"),
		validatedDonation(21, 200_000, "Ani", "Infaq Kilat", "DKM"),
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{Campaign: "Sahur Ceria"})

	suite.Require().NoError(err)
	suite.Equal(int64(100_000), data.Summary.TotalDonasi)
	suite.Equal(1, data.Summary.TotalTransaksi)
	suite.Require().Len(data.CampaignData, 1)
	suite.Equal("Sahur Ceria", data.CampaignData[0].Name)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_DateRangeInclusive() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(19, 1_000, "A", "", ""),
		validatedDonation(20, 2_000, "B", "", ""),
		validatedDonation(21, 4_000, "C", "", ""),
	}, nil).Once()

	start := time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 2, 20, 0, 0, 0, 0, time.Local)
	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{StartDate: &start, EndDate: &end})

	suite.Require().NoError(err)
	// The 20th is inside the range even though the donation happened at noon.
	suite.Equal(int64(2_000), data.Summary.TotalDonasi)
	suite.Equal(1, data.Summary.TotalTransaksi)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_WeeklyIgnoresStartBound() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(19, 50_000, "A", "", ""), // before the filter start
		validatedDonation(27, 70_000, "B", "", ""),
	}, nil).Once()

	start := time.Date(2026, 2, 26, 0, 0, 0, 0, time.Local)
	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{StartDate: &start})

	suite.Require().NoError(err)
	// Summary honours the start bound.
	suite.Equal(int64(70_000), data.Summary.TotalDonasi)

	// The cumulative chart keeps counting from the beginning.
	suite.Require().Len(data.WeeklyData, 4)
	suite.Equal("Pekan 1", data.WeeklyData[0].WeekKey)
	suite.Equal(int64(50_000), data.WeeklyData[0].Capaian)
	suite.Equal(int64(120_000), data.WeeklyData[1].Capaian)
	suite.Equal(int64(120_000), data.WeeklyData[3].Capaian)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_WeeklyLabelsAndTargets() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 1_000, "A", "", ""),
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(data.WeeklyData, 4)

	first := data.WeeklyData[0]
	suite.Equal("Pekan 1 (19 Feb - 25 Feb)", first.Week)
	suite.Equal(int64(144_700_000), first.Target)
	// The percent column is the schedule's milestone, not a ratio of capaian.
	suite.Equal(10, first.Percent)
	suite.Equal(100, data.WeeklyData[3].Percent)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_ScheduleFromRepository() {
	ctx := context.Background()

	suite.mockTargets.On("ListWeeklyTargets", mock.Anything).Return([]domain.WeeklyTarget{
		{
			Label:        "Pekan Khusus",
			StartDate:    time.Date(2026, 2, 19, 0, 0, 0, 0, time.Local),
			EndDate:      time.Date(2026, 2, 28, 0, 0, 0, 0, time.Local),
			TargetAmount: 500_000_000,
			Percent:      35,
		},
	}, nil).Once()
	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 1_000, "A", "", ""),
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)
	suite.Require().Len(data.WeeklyData, 1)
	suite.Equal("Pekan Khusus", data.WeeklyData[0].WeekKey)
	suite.Equal(int64(500_000_000), data.WeeklyData[0].Target)
	suite.Equal(35, data.WeeklyData[0].Percent)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_BreakdownsSortedDescending() {
	ctx := context.Background()
	suite.useFallbackTargets()

	suite.mockDonations.On("ListDonations", ctx).Return([]domain.Donation{
		validatedDonation(20, 100_000, "A", "Kecil", "LAZ"),
		validatedDonation(20, 300_000, "B", "Besar", "DKM"),
		validatedDonation(21, 200_000, "C", "Besar", ""),
		validatedDonation(21, 50_000, "D", "", "LAZ"),
	}, nil).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().NoError(err)

	suite.Require().Len(data.CampaignData, 2)
	suite.Equal("Besar", data.CampaignData[0].Name)
	suite.Equal(int64(500_000), data.CampaignData[0].Total)
	suite.Equal("Kecil", data.CampaignData[1].Name)

	suite.Require().Len(data.OrganData, 2)
	suite.Equal("DKM", data.OrganData[0].Name)
	suite.Equal("LAZ", data.OrganData[1].Name)
	suite.Equal(int64(150_000), data.OrganData[1].Total)
}

func (suite *DashboardServiceTestSuite) TestGetDashboardData_RepositoryError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockDonations.On("ListDonations", ctx).Return(nil, expectedErr).Once()

	data, err := suite.service.GetDashboardData(ctx, domain.DashboardFilter{})

	suite.Require().Error(err)
	suite.Nil(data)
	suite.ErrorIs(err, expectedErr)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
