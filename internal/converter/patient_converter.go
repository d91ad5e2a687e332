package converter

import (
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
)

// PatientToProfileResponse converts a Patient entity to the profile DTO
func PatientToProfileResponse(p *entity.Patient) *dto.PatientProfileResponse {
	resp := &dto.PatientProfileResponse{
		ID:           p.ID,
		Login:        p.User.Login,
		FullName:     p.FullName,
		PassportData: p.PassportData,
		Address:      p.Address,
	}
	if p.BirthDate != nil {
		resp.BirthDate = p.BirthDate.Format("2006-01-02")
	}
	return resp
}

// PatientToInfoResponse converts a Patient entity to the staff-facing info
// DTO.
func PatientToInfoResponse(p *entity.Patient) *dto.PatientInfoResponse {
	resp := &dto.PatientInfoResponse{
		ID:           p.ID,
		FullName:     p.FullName,
		PassportData: p.PassportData,
		Address:      p.Address,
		Role:         entity.RolePatient,
	}
	if p.BirthDate != nil {
		resp.BirthDate = p.BirthDate.Format("2006-01-02")
	}
	return resp
}
