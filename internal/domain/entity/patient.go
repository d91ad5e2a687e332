package entity

import "time"

// Patient represents patient-specific profile data.
// A row is created empty at registration and filled in later via the profile.
type Patient struct {
	ID           uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName     string     `gorm:"type:varchar(255)" json:"full_name,omitempty"`
	BirthDate    *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	PassportData string     `gorm:"type:varchar(50)" json:"passport_data,omitempty"`
	Address      string     `gorm:"type:text" json:"address,omitempty"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
