package usecase

import (
	"context"
	"time"

	"clinic-appointment-backend/internal/converter"
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"
	"clinic-appointment-backend/internal/service"

	"github.com/sirupsen/logrus"
)

type ProfileUsecase interface {
	GetPatientProfile(ctx context.Context, userID uint) (*dto.PatientProfileResponse, error)
	UpdatePatientProfile(ctx context.Context, userID uint, req *dto.UpdatePatientProfileRequest) error
	GetDoctorProfile(ctx context.Context, userID uint) (*dto.DoctorProfileResponse, error)
	GetMyAppointments(ctx context.Context, userID uint) (*dto.AppointmentListResponse, error)
}

type profileUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewProfileUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) ProfileUsecase {
	return &profileUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *profileUsecase) GetPatientProfile(ctx context.Context, userID uint) (*dto.PatientProfileResponse, error) {
	patient, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToProfileResponse(patient), nil
}

func (u *profileUsecase) UpdatePatientProfile(ctx context.Context, userID uint, req *dto.UpdatePatientProfileRequest) error {
	patient, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return mapStorageErr(err)
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return ErrInvalidDateFormat
	}

	patient.PassportData = req.PassportData
	patient.Address = req.Address
	patient.BirthDate = &birthDate
	if req.FullName != "" {
		patient.FullName = req.FullName
	}

	if err := u.patientRepo.Update(ctx, patient); err != nil {
		u.log.Warnf("Failed to update patient %d: %+v", patient.ID, err)
		return mapStorageErr(err)
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionProfileUpdate, entity.JSON{
		"patient_id": patient.ID,
	})
	return nil
}

func (u *profileUsecase) GetDoctorProfile(ctx context.Context, userID uint) (*dto.DoctorProfileResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	entries, err := u.scheduleRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for doctor %d: %+v", doctor.ID, err)
		return nil, mapStorageErr(err)
	}

	return converter.DoctorToProfileResponse(doctor, entries), nil
}

func (u *profileUsecase) GetMyAppointments(ctx context.Context, userID uint) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}

	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = converter.AppointmentToResponse(&a)
	}
	return &dto.AppointmentListResponse{
		Appointments: responses,
		Total:        len(responses),
	}, nil
}
