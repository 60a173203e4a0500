package impl

import (
	"context"
	"log/slog"

	deliverycontext "fooddash/internal/delivery/context"
	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/repository"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ProviderServiceParams holds dependencies for ProviderService, injected by Fx.
type ProviderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProviderRepo repository.ProviderRepository
	Logger       *slog.Logger
}

type providerService struct {
	txManager    repository.TransactionManager
	providerRepo repository.ProviderRepository
	logger       *slog.Logger
}

// NewProviderService creates a new provider service instance
func NewProviderService(params ProviderServiceParams) usecase.ProviderUsecase {
	return &providerService{
		txManager:    params.TxManager,
		providerRepo: params.ProviderRepo,
		logger:       params.Logger,
	}
}

func (srv *providerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *providerService) CreateProvider(ctx context.Context, input *usecase.ProviderInput) (*entity.Provider, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}

	provider := providerFromInput(0, input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProviderRepository().Create(ctx, provider)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider")
	}

	srv.log(ctx).Info("Provider created", slog.Int64("providerID", provider.ID))

	return provider, nil
}

func (srv *providerService) GetProvider(ctx context.Context, id int64) (*entity.Provider, error) {
	provider, err := srv.providerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get provider")
	}

	return provider, nil
}

func (srv *providerService) ListProviders(ctx context.Context) ([]*entity.Provider, error) {
	providers, err := srv.providerRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list providers")
	}

	return providers, nil
}

func (srv *providerService) UpdateProvider(ctx context.Context, id int64, input *usecase.ProviderInput) (*entity.Provider, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}

	provider := providerFromInput(id, input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProviderRepository().Update(ctx, provider)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update provider")
	}

	srv.log(ctx).Info("Provider updated", slog.Int64("providerID", id))

	return provider, nil
}

// DeleteProvider leaves dependent listings to the store's constraints.
func (srv *providerService) DeleteProvider(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProviderRepository().Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete provider")
	}

	srv.log(ctx).Info("Provider deleted", slog.Int64("providerID", id))

	return nil
}

func providerFromInput(id int64, input *usecase.ProviderInput) *entity.Provider {
	return &entity.Provider{
		ID:      id,
		Name:    input.Name,
		Type:    input.Type,
		Contact: input.Contact,
		Address: input.Address,
		City:    input.City,
	}
}
