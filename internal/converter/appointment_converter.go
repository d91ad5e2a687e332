package converter

import (
	"fmt"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
)

// clockShort trims a time-of-day value to "HH:MM"; the time column scans
// back as "HH:MM:SS".
func clockShort(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}

func cabinetLabel(c *entity.Cabinet) string {
	if c == nil || c.Number == "" {
		return ""
	}
	if c.Type == "" {
		return fmt.Sprintf("Cabinet %s", c.Number)
	}
	return fmt.Sprintf("Cabinet %s (%s)", c.Number, c.Type)
}

// AppointmentToResponse converts an Appointment entity to the patient-facing
// response DTO.
func AppointmentToResponse(a *entity.Appointment) dto.AppointmentResponse {
	resp := dto.AppointmentResponse{
		ID:         a.ID,
		DoctorID:   a.DoctorID,
		DoctorName: a.Doctor.FullName,
		Date:       a.Date.Format("2006-01-02"),
		Time:       clockShort(a.Time),
		Cabinet:    cabinetLabel(&a.Cabinet),
		Appearance: a.Appearance,
	}
	if a.Visit != nil {
		resp.VisitID = &a.Visit.ID
		resp.Diagnosis = a.Visit.Diagnosis
		resp.Complaints = a.Visit.Complaints
	}
	return resp
}

// AppointmentToDoctorResponse converts an Appointment to the doctor's
// worklist row, flagging slots that are already in the past.
func AppointmentToDoctorResponse(a *entity.Appointment, now time.Time) dto.DoctorAppointmentResponse {
	resp := dto.DoctorAppointmentResponse{
		ID:           a.ID,
		Date:         a.Date.Format("2006-01-02"),
		Time:         clockShort(a.Time),
		PatientID:    a.PatientID,
		PatientName:  a.Patient.FullName,
		PassportData: a.Patient.PassportData,
		Cabinet:      cabinetLabel(&a.Cabinet),
		Appearance:   a.Appearance,
		IsPast:       a.IsPast(now),
	}
	if a.Visit != nil {
		resp.VisitID = &a.Visit.ID
		resp.Diagnosis = a.Visit.Diagnosis
		resp.Complaints = a.Visit.Complaints
	}
	return resp
}

// VisitToResponse converts a Visit entity to its response DTO
func VisitToResponse(v *entity.Visit) *dto.VisitResponse {
	if v == nil {
		return nil
	}
	return &dto.VisitResponse{
		ID:            v.ID,
		AppointmentID: v.AppointmentID,
		PatientID:     v.PatientID,
		DoctorID:      v.DoctorID,
		Date:          v.Date.Format("2006-01-02"),
		Time:          clockShort(v.Time),
		Diagnosis:     v.Diagnosis,
		Complaints:    v.Complaints,
	}
}

// VisitToDiagnosisResponse converts a Visit to the patient's diagnosis
// history row.
func VisitToDiagnosisResponse(v *entity.Visit) dto.PatientDiagnosisResponse {
	return dto.PatientDiagnosisResponse{
		VisitID:    v.ID,
		Date:       v.Date.Format("2006-01-02"),
		Time:       clockShort(v.Time),
		DoctorName: v.Doctor.FullName,
		Diagnosis:  v.Diagnosis,
		Complaints: v.Complaints,
	}
}
