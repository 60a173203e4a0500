package postgres

import (
	"context"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// receiverRepository implements the repository.ReceiverRepository interface.
type receiverRepository struct {
	db *gorm.DB
}

// NewReceiverRepository is the constructor for receiverRepository.
func NewReceiverRepository(db *gorm.DB) repository.ReceiverRepository {
	return &receiverRepository{db: db}
}

func (repo *receiverRepository) Create(ctx context.Context, receiver *entity.Receiver) error {
	receiverM := fromReceiverDomain(receiver)
	receiverM.ReceiverID = 0

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(receiverM).Error; err != nil {
		return translateWriteError(err, "failed to create receiver")
	}

	receiver.ID = receiverM.ReceiverID

	return nil
}

func (repo *receiverRepository) FindByID(ctx context.Context, id int64) (*entity.Receiver, error) {
	var receiverM model.ReceiverModel

	if err := repo.db.WithContext(ctx).
		Where("receiver_id = ?", id).
		First(&receiverM).Error; err != nil {
		return nil, translateLookupError(err, domainerrors.ErrReceiverNotFound, "failed to find receiver by ID")
	}

	return toReceiverDomain(&receiverM), nil
}

func (repo *receiverRepository) FindAll(ctx context.Context) ([]*entity.Receiver, error) {
	var receiverModels []*model.ReceiverModel

	if err := repo.db.WithContext(ctx).
		Order("receiver_id").
		Find(&receiverModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list receivers")
	}

	receivers := make([]*entity.Receiver, 0, len(receiverModels))
	for _, receiverM := range receiverModels {
		receivers = append(receivers, toReceiverDomain(receiverM))
	}

	return receivers, nil
}

func (repo *receiverRepository) Update(ctx context.Context, receiver *entity.Receiver) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ReceiverModel{}).
		Where("receiver_id = ?", receiver.ID).
		Updates(map[string]any{
			"name":    receiver.Name,
			"type":    receiver.Type.String(),
			"contact": receiver.Contact,
			"city":    receiver.City,
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update receiver")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrReceiverNotFound
	}

	return nil
}

func (repo *receiverRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("receiver_id = ?", id).
		Delete(&model.ReceiverModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete receiver")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrReceiverNotFound
	}

	return nil
}

func toReceiverDomain(data *model.ReceiverModel) *entity.Receiver {
	if data == nil {
		return nil
	}

	return &entity.Receiver{
		ID:      data.ReceiverID,
		Name:    data.Name,
		Type:    entity.ReceiverType(data.Type),
		Contact: data.Contact,
		City:    data.City,
	}
}

func fromReceiverDomain(data *entity.Receiver) *model.ReceiverModel {
	if data == nil {
		return nil
	}

	return &model.ReceiverModel{
		ReceiverID: data.ID,
		Name:       data.Name,
		Type:       data.Type.String(),
		Contact:    data.Contact,
		City:       data.City,
	}
}
