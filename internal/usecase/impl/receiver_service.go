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

// ReceiverServiceParams holds dependencies for ReceiverService, injected by Fx.
type ReceiverServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ReceiverRepo repository.ReceiverRepository
	Logger       *slog.Logger
}

type receiverService struct {
	txManager    repository.TransactionManager
	receiverRepo repository.ReceiverRepository
	logger       *slog.Logger
}

// NewReceiverService creates a new receiver service instance
func NewReceiverService(params ReceiverServiceParams) usecase.ReceiverUsecase {
	return &receiverService{
		txManager:    params.TxManager,
		receiverRepo: params.ReceiverRepo,
		logger:       params.Logger,
	}
}

func (srv *receiverService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOrDefault(ctx, srv.logger)
}

func (srv *receiverService) CreateReceiver(ctx context.Context, input *usecase.ReceiverInput) (*entity.Receiver, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}

	receiver := receiverFromInput(0, input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewReceiverRepository().Create(ctx, receiver)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create receiver")
	}

	srv.log(ctx).Info("Receiver created", slog.Int64("receiverID", receiver.ID))

	return receiver, nil
}

func (srv *receiverService) GetReceiver(ctx context.Context, id int64) (*entity.Receiver, error) {
	receiver, err := srv.receiverRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get receiver")
	}

	return receiver, nil
}

func (srv *receiverService) ListReceivers(ctx context.Context) ([]*entity.Receiver, error) {
	receivers, err := srv.receiverRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list receivers")
	}

	return receivers, nil
}

func (srv *receiverService) UpdateReceiver(ctx context.Context, id int64, input *usecase.ReceiverInput) (*entity.Receiver, error) {
	if err := requireText("name", input.Name); err != nil {
		return nil, err
	}

	receiver := receiverFromInput(id, input)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewReceiverRepository().Update(ctx, receiver)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update receiver")
	}

	srv.log(ctx).Info("Receiver updated", slog.Int64("receiverID", id))

	return receiver, nil
}

func (srv *receiverService) DeleteReceiver(ctx context.Context, id int64) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewReceiverRepository().Delete(ctx, id)
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete receiver")
	}

	srv.log(ctx).Info("Receiver deleted", slog.Int64("receiverID", id))

	return nil
}

func receiverFromInput(id int64, input *usecase.ReceiverInput) *entity.Receiver {
	return &entity.Receiver{
		ID:      id,
		Name:    input.Name,
		Type:    input.Type,
		Contact: input.Contact,
		City:    input.City,
	}
}
