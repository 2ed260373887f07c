package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
	portssvc "github.com/rumahamal/ref26-backend/internal/core/ports/services"
	"github.com/rumahamal/ref26-backend/internal/core/services"
	"github.com/rumahamal/ref26-backend/internal/dto"
)

// --- Test Suite ---
type EventServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockEventRepository
	mockStore *MockFileStore
	service   portssvc.EventSvcFacade
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockEventRepository)
	suite.mockStore = new(MockFileStore)
	suite.service = services.NewEventService(suite.mockRepo, suite.mockStore, "events")
}

func uploadedFile(field, name string) dto.UploadedFile {
	return dto.UploadedFile{
		Field:       field,
		FileName:    name,
		ContentType: "image/jpeg",
		Content:     []byte("fake image bytes"),
	}
}

// --- Test Cases ---

func (suite *EventServiceTestSuite) TestSubmitEvent_AllUploadsSucceed() {
	ctx := context.Background()
	req := dto.SubmitEventRequest{NamaEvent: "Buka Bersama", Lokasi: "Masjid Raya"}
	files := []dto.UploadedFile{uploadedFile("dokumentasi_0", "foto1.jpg"), uploadedFile("dokumentasi_1", "foto2.jpg")}

	suite.mockStore.On("Upload", mock.Anything, "events", mock.MatchedBy(func(name string) bool {
		return strings.HasSuffix(name, ".jpg")
	}), mock.Anything, "image/jpeg").Return("https://cdn.example/a.jpg", nil).Twice()

	suite.mockRepo.On("SaveEvent", mock.Anything, mock.MatchedBy(func(e domain.EventRecord) bool {
		return e.NamaEvent == "Buka Bersama" &&
			e.DokumentasiURLs == "https://cdn.example/a.jpg|||https://cdn.example/a.jpg" &&
			!e.CreatedAt.IsZero()
	})).Return(nil).Once()

	results, err := suite.service.SubmitEvent(ctx, req, files)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Equal("dokumentasi_0", results[0].Field)
	suite.Equal("foto1.jpg", results[0].FileName)
	suite.NotEmpty(results[0].URL)
	suite.Empty(results[0].Error)

	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStore.AssertExpectations(suite.T())
}

func (suite *EventServiceTestSuite) TestSubmitEvent_PartialUploadFailure() {
	ctx := context.Background()
	req := dto.SubmitEventRequest{NamaEvent: "Tarhib Ramadan"}
	files := []dto.UploadedFile{uploadedFile("dokumentasi_0", "ok.jpg"), uploadedFile("dokumentasi_1", "broken.jpg")}

	suite.mockStore.On("Upload", mock.Anything, "events", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example/ok.jpg", nil).Once()
	suite.mockStore.On("Upload", mock.Anything, "events", mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError).Once()

	// Only the successful URL reaches the stored record.
	suite.mockRepo.On("SaveEvent", mock.Anything, mock.MatchedBy(func(e domain.EventRecord) bool {
		return e.DokumentasiURLs == "https://cdn.example/ok.jpg"
	})).Return(nil).Once()

	results, err := suite.service.SubmitEvent(ctx, req, files)

	suite.Require().NoError(err)
	suite.Require().Len(results, 2)
	suite.Empty(results[0].Error)
	suite.NotEmpty(results[1].Error)
	suite.Empty(results[1].URL)
	suite.Equal("broken.jpg", results[1].FileName)
}

func (suite *EventServiceTestSuite) TestSubmitEvent_NoAttachments() {
	ctx := context.Background()
	req := dto.SubmitEventRequest{NamaEvent: "Kajian"}

	suite.mockRepo.On("SaveEvent", mock.Anything, mock.MatchedBy(func(e domain.EventRecord) bool {
		return e.DokumentasiURLs == domain.EmptyAttachments
	})).Return(nil).Once()

	results, err := suite.service.SubmitEvent(ctx, req, nil)

	suite.Require().NoError(err)
	suite.Empty(results)
	suite.mockStore.AssertNotCalled(suite.T(), "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestSubmitEvent_SaveErrorStillReturnsManifest() {
	ctx := context.Background()
	req := dto.SubmitEventRequest{NamaEvent: "Gagal"}
	files := []dto.UploadedFile{uploadedFile("dokumentasi_0", "foto.jpg")}
	expectedErr := assert.AnError

	suite.mockStore.On("Upload", mock.Anything, "events", mock.Anything, mock.Anything, mock.Anything).
		Return("https://cdn.example/foto.jpg", nil).Once()
	suite.mockRepo.On("SaveEvent", mock.Anything, mock.Anything).Return(expectedErr).Once()

	results, err := suite.service.SubmitEvent(ctx, req, files)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Len(results, 1)
}

func (suite *EventServiceTestSuite) TestListEvents() {
	ctx := context.Background()
	expected := []domain.EventRecord{{NamaEvent: "Buka Bersama"}}
	suite.mockRepo.On("ListEvents", ctx).Return(expected, nil).Once()

	events, err := suite.service.ListEvents(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, events)
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
