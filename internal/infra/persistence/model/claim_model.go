package model

import "time"

// ClaimModel is the GORM-specific struct for the 'claim_data' table.
type ClaimModel struct {
	ClaimID    int64     `gorm:"column:claim_id;primaryKey;autoIncrement"`
	FoodID     int64     `gorm:"column:food_id;not null;index"`
	ReceiverID int64     `gorm:"column:receiver_id;not null;index"`
	Status     string    `gorm:"column:status;type:text"`
	Timestamp  time.Time `gorm:"column:timestamp;type:timestamp"`

	Food     FoodListingModel `gorm:"foreignKey:FoodID;references:FoodID;constraint:OnDelete:RESTRICT"`
	Receiver ReceiverModel    `gorm:"foreignKey:ReceiverID;references:ReceiverID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ClaimModel) TableName() string {
	return "claim_data"
}
