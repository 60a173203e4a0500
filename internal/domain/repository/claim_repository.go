package repository

import (
	"context"
	"time"

	"fooddash/internal/domain/entity"
)

// ClaimRepository defines the interface for claim_data operations.
type ClaimRepository interface {
	Create(ctx context.Context, claim *entity.Claim) error
	FindByID(ctx context.Context, id int64) (*entity.Claim, error)
	FindAll(ctx context.Context) ([]*entity.Claim, error)
	Update(ctx context.Context, claim *entity.Claim) error
	Delete(ctx context.Context, id int64) error

	// FirstCompletedAt returns the earliest Completed claim timestamp of a listing, or nil when it has none.
	FirstCompletedAt(ctx context.Context, foodID int64) (*time.Time, error)
}
