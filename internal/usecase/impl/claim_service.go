package impl

import (
	"context"
	"log/slog"

	deliverycontext "fooddash/internal/delivery/context"
	"fooddash/internal/domain/entity"
	"fooddash/internal/domain/repository"
	"fooddash/internal/domain/service"
	"fooddash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClaimServiceParams holds dependencies for ClaimService, injected by Fx.
type ClaimServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ClaimRepo repository.ClaimRepository
	Clock     service.Clock
	Logger    *slog.Logger
}

type claimService struct {
	txManager repository.TransactionManager
	claimRepo repository.ClaimRepository
	clock     service.Clock
	logger    *slog.Logger
}

// NewClaimService creates a new claim service instance
func NewClaimService(params ClaimServiceParams) usecase.ClaimUsecase {
	return &claimService{
		txManager: params.TxManager,
		claimRepo: params.ClaimRepo,
		clock:     params.Clock,
		logger:    params.Logger,
	}
}

func (srv *claimService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

// CreateClaim stamps the claim with the current time when none is given.
// Food and receiver references are checked by the store.
func (srv *claimService) CreateClaim(ctx context.Context, input *usecase.ClaimInput) (*entity.Claim, error) {
	claim := claimFromInput(0, input)
	if claim.Timestamp.IsZero() {
		claim.Timestamp = srv.clock.Now()
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewClaimRepository().Create(ctx, claim)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create claim")
	}

	srv.log(ctx).Info("Claim created", slog.Int64("claimID", claim.ID), slog.String("status", claim.Status.String()))

	return claim, nil
}

func (srv *claimService) GetClaim(ctx context.Context, id int64) (*entity.Claim, error) {
	claim, err := srv.claimRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get claim")
	}

	return claim, nil
}

func (srv *claimService) ListClaims(ctx context.Context) ([]*entity.Claim, error) {
	claims, err := srv.claimRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claims")
	}

	return claims, nil
}

// UpdateClaim overwrites the claim as given; there is no status transition check.
func (srv *claimService) UpdateClaim(ctx context.Context, id int64, input *usecase.ClaimInput) (*entity.Claim, error) {
	claim := claimFromInput(id, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewClaimRepository().Update(ctx, claim)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update claim")
	}

	srv.log(ctx).Info("Claim updated", slog.Int64("claimID", id), slog.String("status", claim.Status.String()))

	return claim, nil
}

func (srv *claimService) DeleteClaim(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewClaimRepository().Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete claim")
	}

	srv.log(ctx).Info("Claim deleted", slog.Int64("claimID", id))

	return nil
}

func claimFromInput(id int64, input *usecase.ClaimInput) *entity.Claim {
	return &entity.Claim{
		ID:         id,
		FoodID:     input.FoodID,
		ReceiverID: input.ReceiverID,
		Status:     input.Status,
		Timestamp:  input.Timestamp,
	}
}
