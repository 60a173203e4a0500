// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"fooddash/internal/domain/entity"
)

// ProviderInput carries every mutable provider field. Updates always send all of them.
type ProviderInput struct {
	Name    string              `json:"name"`
	Type    entity.ProviderType `json:"type"`
	Contact string              `json:"contact"`
	Address string              `json:"address"`
	City    string              `json:"city"`
}

// ProviderUsecase defines the provider CRUD operations
type ProviderUsecase interface {
	// CreateProvider validates the name and inserts the provider
	CreateProvider(ctx context.Context, input *ProviderInput) (*entity.Provider, error)

	// GetProvider retrieves one provider
	GetProvider(ctx context.Context, id int64) (*entity.Provider, error)

	// ListProviders returns every provider, unfiltered
	ListProviders(ctx context.Context) ([]*entity.Provider, error)

	// UpdateProvider overwrites every field of an existing provider
	UpdateProvider(ctx context.Context, id int64, input *ProviderInput) (*entity.Provider, error)

	// DeleteProvider removes a provider without checking for dependent listings
	DeleteProvider(ctx context.Context, id int64) error
}
