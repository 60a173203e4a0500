package impl

import (
	"context"

	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/repository"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
)

type directoryService struct {
	directoryRepo repository.DirectoryRepository
}

// NewDirectoryService creates a new directory service instance
func NewDirectoryService(directoryRepo repository.DirectoryRepository) usecase.DirectoryUsecase {
	return &directoryService{directoryRepo: directoryRepo}
}

func (srv *directoryService) GetFilterOptions(ctx context.Context) (*entity.FilterOptions, error) {
	opts, err := srv.directoryRepo.FilterOptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load filter options")
	}

	return opts, nil
}

func (srv *directoryService) ListProviderContacts(ctx context.Context, city string) ([]*entity.Contact, error) {
	contacts, err := srv.directoryRepo.ProviderContacts(ctx, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list provider contacts")
	}

	return contacts, nil
}

func (srv *directoryService) ListReceiverContacts(ctx context.Context, city string) ([]*entity.Contact, error) {
	contacts, err := srv.directoryRepo.ReceiverContacts(ctx, city)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receiver contacts")
	}

	return contacts, nil
}
