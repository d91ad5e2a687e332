package dto

// Response DTOs

type ScheduleEntryResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Cabinet   string `json:"cabinet"`
}

type DoctorScheduleResponse struct {
	DoctorID       uint                          `json:"doctor_id"`
	FullName       string                        `json:"full_name"`
	Specialization string                        `json:"specialization"`
	Schedule       map[int]ScheduleEntryResponse `json:"schedule"`
}

type DepartmentResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
