package postgres

import (
	"context"
	"time"

	"fooddash/internal/domain/entity"
	domainerrors "fooddash/internal/domain/errors"
	"fooddash/internal/domain/repository"
	"fooddash/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// claimRepository implements the repository.ClaimRepository interface.
type claimRepository struct {
	db *gorm.DB
}

// NewClaimRepository is the constructor for claimRepository.
func NewClaimRepository(db *gorm.DB) repository.ClaimRepository {
	return &claimRepository{db: db}
}

func (repo *claimRepository) Create(ctx context.Context, claim *entity.Claim) error {
	claimM := fromClaimDomain(claim)
	claimM.ClaimID = 0

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(claimM).Error; err != nil {
		return translateWriteError(err, "failed to create claim")
	}

	claim.ID = claimM.ClaimID

	return nil
}

func (repo *claimRepository) FindByID(ctx context.Context, id int64) (*entity.Claim, error) {
	var claimM model.ClaimModel

	if err := repo.db.WithContext(ctx).
		Where("claim_id = ?", id).
		First(&claimM).Error; err != nil {
		return nil, translateLookupError(err, domainerrors.ErrClaimNotFound, "failed to find claim by ID")
	}

	return toClaimDomain(&claimM), nil
}

func (repo *claimRepository) FindAll(ctx context.Context) ([]*entity.Claim, error) {
	var claimModels []*model.ClaimModel

	if err := repo.db.WithContext(ctx).
		Order("claim_id").
		Find(&claimModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list claims")
	}

	claims := make([]*entity.Claim, 0, len(claimModels))
	for _, claimM := range claimModels {
		claims = append(claims, toClaimDomain(claimM))
	}

	return claims, nil
}

func (repo *claimRepository) Update(ctx context.Context, claim *entity.Claim) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClaimModel{}).
		Where("claim_id = ?", claim.ID).
		Updates(map[string]any{
			"food_id":     claim.FoodID,
			"receiver_id": claim.ReceiverID,
			"status":      claim.Status.String(),
			"timestamp":   storedTimestamp(claim.Timestamp),
		})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update claim")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrClaimNotFound
	}

	return nil
}

func (repo *claimRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("claim_id = ?", id).
		Delete(&model.ClaimModel{})

	if result.Error != nil {
		return translateWriteError(result.Error, "failed to delete claim")
	}

	if result.RowsAffected == 0 {
		return domainerrors.ErrClaimNotFound
	}

	return nil
}

// FirstCompletedAt returns the earliest Completed timestamp of a listing's claims.
func (repo *claimRepository) FirstCompletedAt(ctx context.Context, foodID int64) (*time.Time, error) {
	var first *time.Time

	if err := repo.db.WithContext(ctx).
		Model(&model.ClaimModel{}).
		Select("MIN(timestamp)").
		Where("food_id = ? AND status = ?", foodID, entity.ClaimStatusCompleted.String()).
		Row().
		Scan(&first); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find first completed claim")
	}

	return first, nil
}

// storedTimestamp keeps the wall clock reading; claim_data.timestamp has no zone.
func storedTimestamp(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func toClaimDomain(data *model.ClaimModel) *entity.Claim {
	if data == nil {
		return nil
	}

	return &entity.Claim{
		ID:         data.ClaimID,
		FoodID:     data.FoodID,
		ReceiverID: data.ReceiverID,
		Status:     entity.ClaimStatus(data.Status),
		Timestamp:  data.Timestamp,
	}
}

func fromClaimDomain(data *entity.Claim) *model.ClaimModel {
	if data == nil {
		return nil
	}

	return &model.ClaimModel{
		ClaimID:    data.ID,
		FoodID:     data.FoodID,
		ReceiverID: data.ReceiverID,
		Status:     data.Status.String(),
		Timestamp:  storedTimestamp(data.Timestamp),
	}
}
