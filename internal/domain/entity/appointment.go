package entity

import "time"

// Appointment represents a booked 30-minute slot.
// The composite unique index on (doctor_id, date, time) is the storage-level
// guarantee against double-booking; concurrent inserts for the same slot fail
// with a unique violation that the usecase maps to a conflict.
type Appointment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID   uint      `gorm:"not null;uniqueIndex:uq_appointments_doctor_slot" json:"doctor_id"`
	PatientID  uint      `gorm:"not null;index" json:"patient_id"`
	CabinetID  uint      `gorm:"not null" json:"cabinet_id"`
	Date       time.Time `gorm:"type:date;not null;uniqueIndex:uq_appointments_doctor_slot" json:"date"`
	Time       string    `gorm:"type:time;not null;uniqueIndex:uq_appointments_doctor_slot" json:"time"`
	Appearance bool      `gorm:"not null;default:false" json:"appearance"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Cabinet Cabinet `gorm:"foreignKey:CabinetID" json:"cabinet,omitempty"`
	Visit   *Visit  `gorm:"foreignKey:AppointmentID" json:"visit,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPast reports whether the appointment slot is before now.
func (a *Appointment) IsPast(now time.Time) bool {
	if a.Date.Before(now.Truncate(24 * time.Hour)) {
		return true
	}
	return a.Date.Equal(now.Truncate(24*time.Hour)) && a.Time < now.Format("15:04")
}
