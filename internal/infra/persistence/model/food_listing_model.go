package model

import "time"

// FoodListingModel is the GORM-specific struct for the 'food_data' table.
// ProviderType duplicates the provider's type at listing time. ExpiryDate may be NULL.
type FoodListingModel struct {
	FoodID       int64      `gorm:"column:food_id;primaryKey;autoIncrement"`
	FoodName     string     `gorm:"column:food_name;type:text;not null"`
	Quantity     int        `gorm:"column:quantity;not null;check:quantity >= 1"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date;type:date"`
	ProviderID   int64      `gorm:"column:provider_id;not null;index"`
	ProviderType string     `gorm:"column:provider_type;type:text"`
	Location     string     `gorm:"column:location;type:text;index"`
	FoodType     string     `gorm:"column:food_type;type:text"`
	MealType     string     `gorm:"column:meal_type;type:text"`

	Provider ProviderModel `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (FoodListingModel) TableName() string {
	return "food_data"
}
