package dto

import "time"

// Request DTOs

type GenerateReportRequest struct {
	ReportType string `json:"report_type" validate:"required"`
	DoctorID   uint   `json:"doctor_id" validate:"required,min=1"`
	Month      string `json:"month" validate:"required,datetime=2006-01"`
}

// Response DTOs

type ReportTypeResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

type DoctorWorkloadResult struct {
	DoctorID          uint   `json:"doctor_id"`
	DoctorName        string `json:"doctor_name"`
	Month             string `json:"month"`
	TotalAppointments int64  `json:"total_appointments"`
	Appeared          int64  `json:"appeared"`
	AttendanceRate    string `json:"attendance_rate"`
	CapacityShare     string `json:"capacity_share"`
}

type ReportResponse struct {
	ID         uint                   `json:"id"`
	ReportType string                 `json:"report_type"`
	Parameters map[string]interface{} `json:"parameters,omitempty"`
	Result     map[string]interface{} `json:"result,omitempty"`
	CreatedBy  uint                   `json:"created_by"`
	CreatedAt  time.Time              `json:"created_at"`
}

type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int              `json:"total"`
}
