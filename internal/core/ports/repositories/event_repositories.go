package repositories

import (
	"context"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// EventRepository defines persistence operations for logged events.
type EventRepository interface {
	SaveEvent(ctx context.Context, event domain.EventRecord) error
	// ListEvents returns all events, newest first.
	ListEvents(ctx context.Context) ([]domain.EventRecord, error)
}

// PartnershipRepository defines persistence operations for kemitraan records.
type PartnershipRepository interface {
	SavePartnership(ctx context.Context, partnership domain.Partnership) error
	// ListPartnerships returns all partnerships, newest first.
	ListPartnerships(ctx context.Context) ([]domain.Partnership, error)
}
