// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"fooddash/internal/domain/entity"
)

// ProviderRepository defines the interface for provider_data operations.
type ProviderRepository interface {
	// Create inserts a provider and fills in its generated ID.
	Create(ctx context.Context, provider *entity.Provider) error

	// FindByID retrieves a provider by its ID.
	FindByID(ctx context.Context, id int64) (*entity.Provider, error)

	// FindAll retrieves every provider ordered by ID.
	FindAll(ctx context.Context) ([]*entity.Provider, error)

	// Update overwrites every mutable column of the provider with the given ID.
	Update(ctx context.Context, provider *entity.Provider) error

	// Delete removes the provider by primary key. The store decides whether dependent rows block it.
	Delete(ctx context.Context, id int64) error
}
