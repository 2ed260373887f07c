package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/core/services"
)

// --- Test Suite ---
type DropdownServiceTestSuite struct {
	suite.Suite
	mockRepo *MockDropdownRepository
	service  portssvc.DropdownSvcFacade
}

func (suite *DropdownServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockDropdownRepository)
	suite.service = services.NewDropdownService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *DropdownServiceTestSuite) TestGetDropdownOptions_GroupsBySection() {
	ctx := context.Background()
	suite.mockRepo.On("ListDropdownValues", ctx).Return([]domain.DropdownValue{
		{JenisKolom: "nama_validator", Nilai: "Rina"},
		{JenisKolom: "Nama Validator", Nilai: "Tono"},
		{JenisKolom: "campaign", Nilai: "Sahur Ceria"},
		{JenisKolom: "organ", Nilai: "LAZ"},
		{JenisKolom: "pelaksana_program", Nilai: "DKM"},
		{JenisKolom: "metode", Nilai: "Transfer"},
	}, nil).Once()

	options, err := suite.service.GetDropdownOptions(ctx)

	suite.Require().NoError(err)
	suite.Equal([]string{"Rina", "Tono"}, options["Nama Validator"])
	suite.Equal([]string{"Sahur Ceria"}, options["Campaign"])
	// "organ" is the legacy alias of Pelaksana Program.
	suite.Equal([]string{"LAZ", "DKM"}, options["Pelaksana Program"])
	suite.Equal([]string{"Transfer"}, options["Metode"])
}

func (suite *DropdownServiceTestSuite) TestGetDropdownOptions_AllSectionsPresentWhenEmpty() {
	ctx := context.Background()
	suite.mockRepo.On("ListDropdownValues", ctx).Return([]domain.DropdownValue{}, nil).Once()

	options, err := suite.service.GetDropdownOptions(ctx)

	suite.Require().NoError(err)
	suite.Len(options, 7)
	for _, section := range []string{"Nama Validator", "Campaign", "Tipe Donatur", "Jenis Donasi", "Kategori", "Pelaksana Program", "Metode"} {
		values, ok := options[section]
		suite.True(ok, "missing section %s", section)
		suite.NotNil(values)
		suite.Empty(values)
	}
}

func (suite *DropdownServiceTestSuite) TestGetDropdownOptions_SkipsUnknownSections() {
	ctx := context.Background()
	suite.mockRepo.On("ListDropdownValues", ctx).Return([]domain.DropdownValue{
		{JenisKolom: "warna_favorit", Nilai: "Hijau"},
		{JenisKolom: "kategori", Nilai: ""},
	}, nil).Once()

	options, err := suite.service.GetDropdownOptions(ctx)

	suite.Require().NoError(err)
	suite.Len(options, 7)
	suite.Empty(options["Kategori"])
}

func (suite *DropdownServiceTestSuite) TestGetDropdownOptions_RepositoryError() {
	ctx := context.Background()
	expectedErr := assert.AnError
	suite.mockRepo.On("ListDropdownValues", ctx).Return(nil, expectedErr).Once()

	options, err := suite.service.GetDropdownOptions(ctx)

	suite.Require().Error(err)
	suite.Nil(options)
	suite.ErrorIs(err, expectedErr)
}

func TestDropdownServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DropdownServiceTestSuite))
}
