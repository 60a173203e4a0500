package repository

import (
	"context"

	"fooddash/internal/domain/entity"
)

// DirectoryRepository serves the contact directory and the filter choice lists.
type DirectoryRepository interface {
	// FilterOptions returns the distinct non-null values offered by each filter, sorted.
	FilterOptions(ctx context.Context) (*entity.FilterOptions, error)

	// ProviderContacts lists provider contacts, restricted to city unless it is empty or All.
	ProviderContacts(ctx context.Context, city string) ([]*entity.Contact, error)

	// ReceiverContacts lists receiver contacts, restricted to city unless it is empty or All.
	ReceiverContacts(ctx context.Context, city string) ([]*entity.Contact, error)
}
