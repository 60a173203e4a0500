package repository

import (
	"context"

	"fooddash/internal/domain/entity"
)

// ReceiverRepository defines the interface for receiver_data operations.
type ReceiverRepository interface {
	Create(ctx context.Context, receiver *entity.Receiver) error
	FindByID(ctx context.Context, id int64) (*entity.Receiver, error)
	FindAll(ctx context.Context) ([]*entity.Receiver, error)
	Update(ctx context.Context, receiver *entity.Receiver) error
	Delete(ctx context.Context, id int64) error
}
