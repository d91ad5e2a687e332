package entity

// Cabinet represents a physical room where appointments take place
type Cabinet struct {
	ID     uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Number string `gorm:"type:varchar(10);uniqueIndex;not null" json:"number"`
	Type   string `gorm:"type:varchar(100)" json:"type,omitempty"`
}

func (Cabinet) TableName() string {
	return "cabinets"
}
