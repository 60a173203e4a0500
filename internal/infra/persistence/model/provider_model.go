// Package model holds the GORM-specific structs mapped onto the four tables.
package model

// ProviderModel is the GORM-specific struct for the 'provider_data' table.
type ProviderModel struct {
	ProviderID int64  `gorm:"column:provider_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;type:text;not null"`
	Type       string `gorm:"column:type;type:text"`
	Contact    string `gorm:"column:contact;type:text"`
	Address    string `gorm:"column:address;type:text"`
	City       string `gorm:"column:city;type:text;index"`
}

// TableName explicitly sets the table name for GORM.
func (ProviderModel) TableName() string {
	return "provider_data"
}
