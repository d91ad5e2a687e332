package entity

import "time"

// Doctor represents doctor-specific profile data
type Doctor struct {
	ID             uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName       string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Specialization string     `gorm:"type:varchar(100);not null;index" json:"specialization"`
	DepartmentID   uint       `gorm:"not null;index" json:"department_id"`
	CabinetID      *uint      `gorm:"index" json:"cabinet_id,omitempty"`
	EmploymentDate time.Time  `gorm:"type:date;not null" json:"employment_date"`
	DismissalDate  *time.Time `gorm:"type:date" json:"dismissal_date,omitempty"`

	// Relationships
	User       User                 `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Department Department           `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Cabinet    *Cabinet             `gorm:"foreignKey:CabinetID" json:"cabinet,omitempty"`
	Schedule   []WeeklyScheduleEntry `gorm:"foreignKey:DoctorID" json:"schedule,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsDismissed reports whether the doctor has a dismissal date in the past.
func (d *Doctor) IsDismissed(now time.Time) bool {
	return d.DismissalDate != nil && d.DismissalDate.Before(now)
}
