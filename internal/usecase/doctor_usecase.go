package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-backend/internal/converter"
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"
	"clinic-appointment-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound       = errors.New("doctor not found")
	ErrVisitAlreadyRecorded = errors.New("a diagnosis has already been recorded for this appointment")
)

type DoctorUsecase interface {
	GetMyAppointments(ctx context.Context, userID uint) ([]dto.DoctorAppointmentResponse, error)
	// RecordDiagnosis creates the single visit for an appointment owned by
	// the requesting doctor. An appointment belonging to another doctor is
	// indistinguishable from a missing one.
	RecordDiagnosis(ctx context.Context, userID uint, req *dto.RecordDiagnosisRequest) (*dto.VisitResponse, error)
}

type doctorUsecase struct {
	log             *logrus.Logger
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	visitRepo       repository.VisitRepository
	auditService    service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:             log,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
		auditService:    auditService,
	}
}

func (u *doctorUsecase) GetMyAppointments(ctx context.Context, userID uint) ([]dto.DoctorAppointmentResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %d: %+v", doctor.ID, err)
		return nil, mapStorageErr(err)
	}

	now := time.Now()
	responses := make([]dto.DoctorAppointmentResponse, len(appointments))
	for i, a := range appointments {
		responses[i] = converter.AppointmentToDoctorResponse(&a, now)
	}
	return responses, nil
}

func (u *doctorUsecase) RecordDiagnosis(ctx context.Context, userID uint, req *dto.RecordDiagnosisRequest) (*dto.VisitResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find doctor for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	appointment, err := u.appointmentRepo.FindByIDForDoctor(ctx, req.AppointmentID, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", req.AppointmentID, err)
		return nil, mapStorageErr(err)
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	existing, err := u.visitRepo.FindByAppointmentID(ctx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing visit for appointment %d: %+v", appointment.ID, err)
		return nil, mapStorageErr(err)
	}
	if existing != nil {
		return nil, ErrVisitAlreadyRecorded
	}

	// Patient, doctor and slot are carried over from the appointment.
	visit := &entity.Visit{
		AppointmentID: &appointment.ID,
		PatientID:     appointment.PatientID,
		DoctorID:      appointment.DoctorID,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Diagnosis:     req.Diagnosis,
		Complaints:    req.Complaints,
	}

	if err := u.visitRepo.Create(ctx, visit); err != nil {
		if isDuplicateKeyError(err, "visits_appointment") {
			return nil, ErrVisitAlreadyRecorded
		}
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, mapStorageErr(err)
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionVisitRecord, entity.JSON{
		"visit_id":       visit.ID,
		"appointment_id": appointment.ID,
	})

	return converter.VisitToResponse(visit), nil
}
