package model

// ReceiverModel is the GORM-specific struct for the 'receiver_data' table.
type ReceiverModel struct {
	ReceiverID int64  `gorm:"column:receiver_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;type:text;not null"`
	Type       string `gorm:"column:type;type:text"`
	Contact    string `gorm:"column:contact;type:text"`
	City       string `gorm:"column:city;type:text;index"`
}

// TableName explicitly sets the table name for GORM.
func (ReceiverModel) TableName() string {
	return "receiver_data"
}
