package usecase

import (
	"context"

	"fooddash/internal/domain/entity"
)

// ReceiverInput carries every mutable receiver field.
type ReceiverInput struct {
	Name    string              `json:"name"`
	Type    entity.ReceiverType `json:"type"`
	Contact string              `json:"contact"`
	City    string              `json:"city"`
}

// ReceiverUsecase defines the receiver CRUD operations
type ReceiverUsecase interface {
	CreateReceiver(ctx context.Context, input *ReceiverInput) (*entity.Receiver, error)
	GetReceiver(ctx context.Context, id int64) (*entity.Receiver, error)
	ListReceivers(ctx context.Context) ([]*entity.Receiver, error)
	UpdateReceiver(ctx context.Context, id int64, input *ReceiverInput) (*entity.Receiver, error)
	DeleteReceiver(ctx context.Context, id int64) error
}
