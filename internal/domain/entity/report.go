package entity

import "time"

// Report type identifiers. Generation is allow-listed to these values.
const (
	ReportTypeDoctorWorkload = "doctor_workload"
)

// Report is a stored administrative report: the parameters it was generated
// with and the computed result, both as JSONB.
type Report struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ReportType string    `gorm:"type:varchar(50);not null;index" json:"report_type"`
	Parameters JSON      `gorm:"type:jsonb" json:"parameters,omitempty"`
	Result     JSON      `gorm:"type:jsonb" json:"result,omitempty"`
	CreatedBy  uint      `gorm:"not null;index" json:"created_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Creator User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (Report) TableName() string {
	return "reports"
}
