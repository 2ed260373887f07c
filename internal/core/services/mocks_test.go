package services_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// --- Mock DonationRepository ---
type MockDonationRepository struct {
	mock.Mock
}

func (m *MockDonationRepository) SaveDonations(ctx context.Context, donations []domain.Donation) error {
	args := m.Called(ctx, donations)
	return args.Error(0)
}

func (m *MockDonationRepository) ListDonations(ctx context.Context) ([]domain.Donation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Donation), args.Error(1)
}

func (m *MockDonationRepository) UpdateDonationDetails(ctx context.Context, id int64, details domain.DonationDetails) error {
	args := m.Called(ctx, id, details)
	return args.Error(0)
}

func (m *MockDonationRepository) UpdateDonationValidation(ctx context.Context, id int64, status domain.DonationStatus, fields domain.ValidationFields) error {
	args := m.Called(ctx, id, status, fields)
	return args.Error(0)
}

// --- Mock TargetRepository ---
type MockTargetRepository struct {
	mock.Mock
}

func (m *MockTargetRepository) ListWeeklyTargets(ctx context.Context) ([]domain.WeeklyTarget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WeeklyTarget), args.Error(1)
}

// --- Mock DropdownRepository ---
type MockDropdownRepository struct {
	mock.Mock
}

func (m *MockDropdownRepository) ListDropdownValues(ctx context.Context) ([]domain.DropdownValue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DropdownValue), args.Error(1)
}

// --- Mock EventRepository ---
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) SaveEvent(ctx context.Context, event domain.EventRecord) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]domain.EventRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EventRecord), args.Error(1)
}

// --- Mock PartnershipRepository ---
type MockPartnershipRepository struct {
	mock.Mock
}

func (m *MockPartnershipRepository) SavePartnership(ctx context.Context, partnership domain.Partnership) error {
	args := m.Called(ctx, partnership)
	return args.Error(0)
}

func (m *MockPartnershipRepository) ListPartnerships(ctx context.Context) ([]domain.Partnership, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Partnership), args.Error(1)
}

// --- Mock FileStore ---
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Upload(ctx context.Context, bucket, objectName string, content io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, bucket, objectName, content, contentType)
	return args.String(0), args.Error(1)
}
