package repositories

import (
	"context"

	"github.com/rumahamal/ref26-backend/internal/core/domain"
)

// TargetRepository reads the weekly fundraising target schedule
// (target_penghimpunan table).
type TargetRepository interface {
	ListWeeklyTargets(ctx context.Context) ([]domain.WeeklyTarget, error)
}

// DropdownRepository reads the allowed values for the validation form
// dropdowns (dropdown_validation table).
type DropdownRepository interface {
	ListDropdownValues(ctx context.Context) ([]domain.DropdownValue, error)
}
