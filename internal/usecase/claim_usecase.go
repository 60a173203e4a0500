package usecase

import (
	"context"
	"time"

	"fooddash/internal/domain/entity"
)

// ClaimInput carries every mutable claim field. A zero Timestamp on create means now.
type ClaimInput struct {
	FoodID     int64              `json:"food_id"`
	ReceiverID int64              `json:"receiver_id"`
	Status     entity.ClaimStatus `json:"status"`
	Timestamp  time.Time          `json:"timestamp"`
}

// ClaimUsecase defines the claim CRUD operations
type ClaimUsecase interface {
	CreateClaim(ctx context.Context, input *ClaimInput) (*entity.Claim, error)
	GetClaim(ctx context.Context, id int64) (*entity.Claim, error)
	ListClaims(ctx context.Context) ([]*entity.Claim, error)
	UpdateClaim(ctx context.Context, id int64, input *ClaimInput) (*entity.Claim, error)
	DeleteClaim(ctx context.Context, id int64) error
}
