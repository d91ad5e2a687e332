package entity

// WeeklyScheduleEntry represents a recurring availability window tied to a
// day of week (ISO numbering, 1=Monday..7=Sunday), not a specific date.
type WeeklyScheduleEntry struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uint   `gorm:"not null;uniqueIndex:uq_schedule_doctor_day" json:"doctor_id"`
	DayOfWeek int    `gorm:"not null;uniqueIndex:uq_schedule_doctor_day" json:"day_of_week"`
	StartTime string `gorm:"type:time;not null" json:"start_time"`
	EndTime   string `gorm:"type:time;not null" json:"end_time"`
	CabinetID uint   `gorm:"not null" json:"cabinet_id"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Cabinet Cabinet `gorm:"foreignKey:CabinetID" json:"cabinet,omitempty"`
}

func (WeeklyScheduleEntry) TableName() string {
	return "weekly_schedule_entries"
}
