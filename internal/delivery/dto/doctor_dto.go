package dto

// Request DTOs

type RecordDiagnosisRequest struct {
	AppointmentID uint   `json:"appointment_id" validate:"required,min=1"`
	Diagnosis     string `json:"diagnosis" validate:"required"`
	Complaints    string `json:"complaints" validate:"omitempty"`
}

// Response DTOs

type DoctorAppointmentResponse struct {
	ID           uint   `json:"id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PatientID    uint   `json:"patient_id"`
	PatientName  string `json:"patient_name,omitempty"`
	PassportData string `json:"passport_data,omitempty"`
	Cabinet      string `json:"cabinet,omitempty"`
	Appearance   bool   `json:"appearance"`
	IsPast       bool   `json:"is_past"`
	VisitID      *uint  `json:"visit_id,omitempty"`
	Diagnosis    string `json:"diagnosis,omitempty"`
	Complaints   string `json:"complaints,omitempty"`
}

type VisitResponse struct {
	ID            uint   `json:"id"`
	AppointmentID *uint  `json:"appointment_id,omitempty"`
	PatientID     uint   `json:"patient_id"`
	DoctorID      uint   `json:"doctor_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Diagnosis     string `json:"diagnosis"`
	Complaints    string `json:"complaints,omitempty"`
}
