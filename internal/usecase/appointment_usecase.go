package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"
	"clinic-appointment-backend/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrCabinetNotFound     = errors.New("cabinet not found")
	ErrSlotTaken           = errors.New("this time slot is already taken")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

type AppointmentUsecase interface {
	// CreateAppointment books a slot for the patient owning userID. The
	// read-then-write occupancy check is a fast path only; the unique index
	// on (doctor_id, date, time) decides races, and its violation surfaces
	// as ErrSlotTaken. Never auto-retried.
	CreateAppointment(ctx context.Context, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	// CancelAppointment deletes the appointment only when it belongs to the
	// requesting user; anything else reports not found.
	CancelAppointment(ctx context.Context, appointmentID, userID uint) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	cabinetRepo     repository.CabinetRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	cabinetRepo repository.CabinetRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		patientRepo:     patientRepo,
		cabinetRepo:     cabinetRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	patient, err := u.patientRepo.FindByUserID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient for user %d: %+v", userID, err)
		return nil, mapStorageErr(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	cabinet, err := u.cabinetRepo.FindByDoctorID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to resolve cabinet for doctor %d: %+v", req.DoctorID, err)
		return nil, mapStorageErr(err)
	}
	if cabinet == nil {
		return nil, ErrCabinetNotFound
	}

	// Fast-path occupancy check; the unique index backstops the race.
	taken, err := u.appointmentRepo.ExistsAt(ctx, req.DoctorID, date, req.Time)
	if err != nil {
		u.log.Warnf("Failed to check slot occupancy: %+v", err)
		return nil, mapStorageErr(err)
	}
	if taken {
		return nil, ErrSlotTaken
	}

	appointment := &entity.Appointment{
		DoctorID:  req.DoctorID,
		PatientID: patient.ID,
		CabinetID: cabinet.ID,
		Date:      date,
		Time:      req.Time,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		if isDuplicateKeyError(err, "appointments_doctor_slot") {
			// Lost the race to a concurrent booker for the same slot.
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, mapStorageErr(err)
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionAppointmentCreate, entity.JSON{
		"appointment_id": appointment.ID,
		"doctor_id":      req.DoctorID,
		"date":           req.Date,
		"time":           req.Time,
	})

	u.log.Infof("Appointment created: id=%d, doctor=%d, date=%s, time=%s", appointment.ID, req.DoctorID, req.Date, req.Time)

	return &dto.AppointmentResponse{
		ID:       appointment.ID,
		DoctorID: appointment.DoctorID,
		Date:     req.Date,
		Time:     req.Time,
		Cabinet:  cabinet.Number,
	}, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID, userID uint) error {
	affected, err := u.appointmentRepo.DeleteOwnedBy(ctx, appointmentID, userID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %d: %+v", appointmentID, err)
		return mapStorageErr(err)
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointmentID,
	})

	u.log.Infof("Appointment cancelled: id=%d", appointmentID)
	return nil
}
