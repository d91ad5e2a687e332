package dto

// Response DTOs

type PatientInfoResponse struct {
	ID           uint   `json:"id"`
	FullName     string `json:"full_name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	PassportData string `json:"passport_data,omitempty"`
	Address      string `json:"address,omitempty"`
	Role         string `json:"role"`
}

type PatientDiagnosisResponse struct {
	VisitID    uint   `json:"visit_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	DoctorName string `json:"doctor_name,omitempty"`
	Diagnosis  string `json:"diagnosis"`
	Complaints string `json:"complaints,omitempty"`
}
