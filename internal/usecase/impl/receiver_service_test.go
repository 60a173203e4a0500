package impl

import (
	"context"
	"testing"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	mockRepo "fooddash/internal/mocks/repository"
	"fooddash/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type receiverServiceFixtures struct {
	service      usecase.ReceiverUsecase
	txManager    *mockRepo.MockTransactionManager
	receiverRepo *mockRepo.MockReceiverRepository
}

func createTestReceiverService(t *testing.T) receiverServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	receiverRepo := mockRepo.NewMockReceiverRepository(t)

	service := NewReceiverService(ReceiverServiceParams{
		TxManager:    txManager,
		ReceiverRepo: receiverRepo,
		Logger:       newDiscardLogger(),
	})

	return receiverServiceFixtures{
		service:      service,
		txManager:    txManager,
		receiverRepo: receiverRepo,
	}
}

func (fx receiverServiceFixtures) withTxReceiverRepo(t *testing.T) *mockRepo.MockReceiverRepository {
	factory := mockRepo.NewMockRepositoryFactory(t)
	txRepo := mockRepo.NewMockReceiverRepository(t)
	factory.EXPECT().NewReceiverRepository().Return(txRepo)
	expectTx(fx.txManager, factory)

	return txRepo
}

func TestReceiverService_CreateReceiver_Success(t *testing.T) {
	fx := createTestReceiverService(t)
	txRepo := fx.withTxReceiverRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Receiver")).
		Run(func(_ context.Context, receiver *entity.Receiver) {
			receiver.ID = 11
		}).
		Return(nil)

	receiver, err := fx.service.CreateReceiver(ctx, &usecase.ReceiverInput{
		Name: "Harbor Shelter",
		Type: entity.ReceiverTypeShelter,
		City: "Springfield",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), receiver.ID)
	assert.Equal(t, entity.ReceiverTypeShelter, receiver.Type)
}

func TestReceiverService_CreateReceiver_BlankName(t *testing.T) {
	fx := createTestReceiverService(t)

	receiver, err := fx.service.CreateReceiver(context.Background(), &usecase.ReceiverInput{Name: "  "})
	assert.Nil(t, receiver)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReceiverService_UpdateReceiver_BlankName(t *testing.T) {
	fx := createTestReceiverService(t)

	receiver, err := fx.service.UpdateReceiver(context.Background(), 1, &usecase.ReceiverInput{Name: ""})
	assert.Nil(t, receiver)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReceiverService_UpdateReceiver_WritesEveryField(t *testing.T) {
	fx := createTestReceiverService(t)
	txRepo := fx.withTxReceiverRepo(t)

	ctx := context.Background()
	var written *entity.Receiver
	txRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Receiver")).
		Run(func(_ context.Context, receiver *entity.Receiver) {
			written = receiver
		}).
		Return(nil)

	_, err := fx.service.UpdateReceiver(ctx, 9, &usecase.ReceiverInput{Name: "Jo", Type: entity.ReceiverTypeIndividual})
	require.NoError(t, err)
	assert.Equal(t, &entity.Receiver{ID: 9, Name: "Jo", Type: entity.ReceiverTypeIndividual}, written)
}

func TestReceiverService_DeleteReceiver_NotFound(t *testing.T) {
	fx := createTestReceiverService(t)
	txRepo := fx.withTxReceiverRepo(t)

	ctx := context.Background()
	txRepo.EXPECT().Delete(ctx, int64(99)).Return(domainerrors.ErrReceiverNotFound)

	err := fx.service.DeleteReceiver(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrReceiverNotFound)
}

func TestReceiverService_ListReceivers_Empty(t *testing.T) {
	fx := createTestReceiverService(t)

	ctx := context.Background()
	fx.receiverRepo.EXPECT().FindAll(ctx).Return([]*entity.Receiver{}, nil)

	receivers, err := fx.service.ListReceivers(ctx)
	require.NoError(t, err)
	assert.Empty(t, receivers)
}
