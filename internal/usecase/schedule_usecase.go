package usecase

import (
	"context"

	"clinic-appointment-backend/internal/converter"
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ScheduleUsecase serves the public doctor directory: who works when, and in
// which department.
type ScheduleUsecase interface {
	GetDoctorsSchedule(ctx context.Context) ([]dto.DoctorScheduleResponse, error)
	GetDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	GetDoctorsByDepartment(ctx context.Context, departmentID uint) ([]dto.DoctorScheduleResponse, error)
}

type scheduleUsecase struct {
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	departmentRepo repository.DepartmentRepository
}

func NewScheduleUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:            log,
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
	}
}

func (u *scheduleUsecase) GetDoctorsSchedule(ctx context.Context) ([]dto.DoctorScheduleResponse, error) {
	doctors, err := u.doctorRepo.FindAllWithSchedule(ctx)
	if err != nil {
		u.log.Warnf("Failed to load doctors: %+v", err)
		return nil, mapStorageErr(err)
	}
	return converter.DoctorsToScheduleResponses(doctors), nil
}

func (u *scheduleUsecase) GetDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := u.departmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to load departments: %+v", err)
		return nil, mapStorageErr(err)
	}

	responses := make([]dto.DepartmentResponse, len(departments))
	for i, d := range departments {
		responses[i] = dto.DepartmentResponse{ID: d.ID, Name: d.Name}
	}
	return responses, nil
}

func (u *scheduleUsecase) GetDoctorsByDepartment(ctx context.Context, departmentID uint) ([]dto.DoctorScheduleResponse, error) {
	doctors, err := u.doctorRepo.FindByDepartment(ctx, departmentID)
	if err != nil {
		u.log.Warnf("Failed to load doctors for department %d: %+v", departmentID, err)
		return nil, mapStorageErr(err)
	}
	return converter.DoctorsToScheduleResponses(doctors), nil
}
