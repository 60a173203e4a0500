package usecase

import (
	"context"

	"fooddash/internal/domain/entity"
)

// DirectoryUsecase serves contact lists and filter choices
type DirectoryUsecase interface {
	GetFilterOptions(ctx context.Context) (*entity.FilterOptions, error)
	ListProviderContacts(ctx context.Context, city string) ([]*entity.Contact, error)
	ListReceiverContacts(ctx context.Context, city string) ([]*entity.Contact, error)
}
