package converter

import (
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
)

func scheduleEntryToResponse(e *entity.WeeklyScheduleEntry) dto.ScheduleEntryResponse {
	return dto.ScheduleEntryResponse{
		DayOfWeek: e.DayOfWeek,
		StartTime: clockShort(e.StartTime),
		EndTime:   clockShort(e.EndTime),
		Cabinet:   e.Cabinet.Number,
	}
}

// DoctorToProfileResponse converts a Doctor and its weekly schedule to the
// profile DTO.
func DoctorToProfileResponse(d *entity.Doctor, entries []entity.WeeklyScheduleEntry) *dto.DoctorProfileResponse {
	resp := &dto.DoctorProfileResponse{
		ID:             d.ID,
		Login:          d.User.Login,
		FullName:       d.FullName,
		Specialization: d.Specialization,
		DepartmentName: d.Department.Name,
		EmploymentDate: d.EmploymentDate.Format("2006-01-02"),
		Schedule:       make([]dto.ScheduleEntryResponse, len(entries)),
	}
	if d.DismissalDate != nil {
		resp.DismissalDate = d.DismissalDate.Format("2006-01-02")
	}
	for i, e := range entries {
		resp.Schedule[i] = scheduleEntryToResponse(&e)
	}
	return resp
}

// DoctorsToScheduleResponses converts doctors with preloaded schedules to the
// public directory DTOs, keyed by day of week.
func DoctorsToScheduleResponses(doctors []entity.Doctor) []dto.DoctorScheduleResponse {
	responses := make([]dto.DoctorScheduleResponse, len(doctors))
	for i, d := range doctors {
		schedule := make(map[int]dto.ScheduleEntryResponse, len(d.Schedule))
		for _, e := range d.Schedule {
			schedule[e.DayOfWeek] = scheduleEntryToResponse(&e)
		}
		responses[i] = dto.DoctorScheduleResponse{
			DoctorID:       d.ID,
			FullName:       d.FullName,
			Specialization: d.Specialization,
			Schedule:       schedule,
		}
	}
	return responses
}
