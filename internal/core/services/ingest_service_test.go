package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rumahamal/ref26-backend/internal/apperrors"
	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/core/services"
)

// --- Test Suite ---
type IngestServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDonationRepository
	service  portssvc.IngestSvcFacade
}

func (suite *IngestServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDonationRepository)
	suite.service = services.NewIngestService(suite.mockRepo)
}

// captureBatch wires the save expectation and returns a pointer that receives
// the inserted batch.
func (suite *IngestServiceTestSuite) captureBatch() *[]domain.Donation {
	var saved []domain.Donation
	suite.mockRepo.On("SaveDonations", mock.Anything, mock.AnythingOfType("[]domain.Donation")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.Donation)
		}).Return(nil).Once()
	return &saved
}

// --- Test Cases ---

func (suite *IngestServiceTestSuite) TestIngestCSV_Success() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"2026-02-25T10:30:00,Sahur Ceria - Budi,1000000\n"

	saved := suite.captureBatch()

	inserted, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(1, inserted)
	suite.Require().Len(*saved, 1)

	d := (*saved)[0]
	suite.Equal(domain.DonationPending, d.Status)
	suite.Equal(1, d.RowIndex)
	suite.Equal("Budi", d.DonorName)
	suite.Equal("Sahur Ceria", d.Description)
	suite.Require().NotNil(d.OccurredAt)
	suite.Equal("Rabu, 25/02/2026 10:30:00", d.DisplayDate())
	suite.Require().NotNil(d.Amount)
	suite.Equal("Rp 1.000.000", d.DisplayAmount())

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *IngestServiceTestSuite) TestIngestCSV_UnparsableCellsPassThrough() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"sometime in February,Infaq Kilat,five hundred\n"

	saved := suite.captureBatch()

	inserted, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(1, inserted)

	d := (*saved)[0]
	suite.Nil(d.OccurredAt)
	suite.Equal("sometime in February", d.RawDate)
	suite.Equal("sometime in February", d.DisplayDate())
	suite.Nil(d.Amount)
	suite.Equal("five hundred", d.RawAmount)
	suite.Equal("five hundred", d.DisplayAmount())
	suite.Equal("Infaq Kilat", d.Description)
	suite.Empty(d.DonorName)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_MissingHeadersFallBackToFirstColumn() {
	ctx := context.Background()
	csv := "ColA,ColB\n" +
		"2026-02-20,ignored\n"

	saved := suite.captureBatch()

	inserted, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(1, inserted)

	d := (*saved)[0]
	suite.Require().NotNil(d.OccurredAt)
	suite.Equal("Jumat, 20/02/2026 00:00:00", d.DisplayDate())
	suite.Empty(d.Description)
	suite.Empty(d.DonorName)
	suite.Nil(d.Amount)
	suite.Empty(d.RawAmount)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_SkipsEmptyRows() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"\n" +
		",,\n" +
		"2026-02-21,Zakat - Ani,50000\n"

	saved := suite.captureBatch()

	inserted, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(1, inserted)
	suite.Equal("Ani", (*saved)[0].DonorName)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_AmountWithThousandsSeparatorsAndDecimals() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"2026-02-22,Wakaf - Citra,\"1,234,567.89\"\n"

	saved := suite.captureBatch()

	_, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	d := (*saved)[0]
	suite.Require().NotNil(d.Amount)
	suite.Equal(int64(1234567), *d.Amount)
	suite.Equal("Rp 1.234.567", d.DisplayAmount())
}

func (suite *IngestServiceTestSuite) TestIngestCSV_EmptyFile() {
	ctx := context.Background()

	_, err := suite.service.IngestCSV(ctx, strings.NewReader(""))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrEmptyFile)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonations", mock.Anything, mock.Anything)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_HeaderOnly() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n"

	_, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveDonations", mock.Anything, mock.Anything)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_SaveErrorPropagates() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"2026-02-23,Sedekah - Dodi,75000\n"
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveDonations", mock.Anything, mock.Anything).Return(expectedErr).Once()

	_, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
}

func (suite *IngestServiceTestSuite) TestIngestCSV_RowIndexCountsDataRows() {
	ctx := context.Background()
	csv := "Date,Description,Amount\n" +
		"2026-02-20,Infaq - A,1000\n" +
		"2026-02-21,Infaq - B,2000\n"

	saved := suite.captureBatch()

	inserted, err := suite.service.IngestCSV(ctx, strings.NewReader(csv))

	suite.Require().NoError(err)
	suite.Equal(2, inserted)
	suite.Equal(1, (*saved)[0].RowIndex)
	suite.Equal(2, (*saved)[1].RowIndex)
}

func TestIngestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(IngestServiceTestSuite))
}
