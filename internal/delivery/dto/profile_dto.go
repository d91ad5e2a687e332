package dto

// Request DTOs

type UpdatePatientProfileRequest struct {
	FullName     string `json:"full_name" validate:"omitempty,min=2"`
	PassportData string `json:"passport_data" validate:"required"`
	Address      string `json:"address" validate:"required"`
	BirthDate    string `json:"birth_date" validate:"required,datetime=2006-01-02"`
}

// Response DTOs

type PatientProfileResponse struct {
	ID           uint   `json:"id"`
	Login        string `json:"login"`
	FullName     string `json:"full_name,omitempty"`
	BirthDate    string `json:"birth_date,omitempty"`
	PassportData string `json:"passport_data,omitempty"`
	Address      string `json:"address,omitempty"`
}

type DoctorProfileResponse struct {
	ID             uint                    `json:"id"`
	Login          string                  `json:"login"`
	FullName       string                  `json:"full_name"`
	Specialization string                  `json:"specialization"`
	DepartmentName string                  `json:"department_name,omitempty"`
	EmploymentDate string                  `json:"employment_date"`
	DismissalDate  string                  `json:"dismissal_date,omitempty"`
	Schedule       []ScheduleEntryResponse `json:"schedule"`
}
