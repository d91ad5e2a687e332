package entity

import "time"

// Visit records the outcome of an appointment. At most one visit may
// reference an appointment; the unique index enforces it.
type Visit struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID *uint     `gorm:"uniqueIndex:uq_visits_appointment" json:"appointment_id,omitempty"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID      uint      `gorm:"not null;index" json:"doctor_id"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	Time          string    `gorm:"type:time;not null" json:"time"`
	Diagnosis     string    `gorm:"type:text;not null" json:"diagnosis"`
	Complaints    string    `gorm:"type:text" json:"complaints,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Visit) TableName() string {
	return "visits"
}
