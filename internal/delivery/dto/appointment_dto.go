package dto

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID uint   `json:"doctor_id" validate:"required,min=1"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	Time     string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type AvailableSlotsResponse struct {
	Date           string   `json:"date"`
	DoctorID       uint     `json:"doctor_id"`
	AvailableSlots []string `json:"available_slots"`
}

type AppointmentResponse struct {
	ID         uint   `json:"id"`
	DoctorID   uint   `json:"doctor_id"`
	DoctorName string `json:"doctor_name,omitempty"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Cabinet    string `json:"cabinet,omitempty"`
	Appearance bool   `json:"appearance"`
	VisitID    *uint  `json:"visit_id,omitempty"`
	Diagnosis  string `json:"diagnosis,omitempty"`
	Complaints string `json:"complaints,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
