package usecase

import (
	"context"
	"errors"

	"clinic-appointment-backend/internal/converter"
	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var ErrPatientAccessDenied = errors.New("no access to this patient's data")

// PatientUsecase exposes patient records to staff and to the patient
// themselves. Doctors and managers see every patient; a patient only their
// own record.
type PatientUsecase interface {
	GetInfo(ctx context.Context, requesterID uint, requesterRole string, patientID uint) (*dto.PatientInfoResponse, error)
	GetAppointments(ctx context.Context, requesterID uint, requesterRole string, patientID uint) (*dto.AppointmentListResponse, error)
	GetDiagnoses(ctx context.Context, requesterID uint, requesterRole string, patientID uint) ([]dto.PatientDiagnosisResponse, error)
}

type patientUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	visitRepo       repository.VisitRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	visitRepo repository.VisitRepository,
) PatientUsecase {
	return &patientUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		visitRepo:       visitRepo,
	}
}

// authorize loads the patient and enforces the access rule. The not-found
// and forbidden cases stay distinct here; handlers decide how much to
// reveal.
func (u *patientUsecase) authorize(ctx context.Context, requesterID uint, requesterRole string, patientID uint) (*entity.Patient, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", patientID, err)
		return nil, mapStorageErr(err)
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	switch requesterRole {
	case entity.RoleDoctor, entity.RoleManager, entity.RoleAdmin:
		return patient, nil
	case entity.RolePatient:
		if patient.UserID == requesterID {
			return patient, nil
		}
	}
	return nil, ErrPatientAccessDenied
}

func (u *patientUsecase) GetInfo(ctx context.Context, requesterID uint, requesterRole string, patientID uint) (*dto.PatientInfoResponse, error) {
	patient, err := u.authorize(ctx, requesterID, requesterRole, patientID)
	if err != nil {
		return nil, err
	}
	return converter.PatientToInfoResponse(patient), nil
}

func (u *patientUsecase) GetAppointments(ctx context.Context, requesterID uint, requesterRole string, patientID uint) (*dto.AppointmentListResponse, error) {
	patient, err := u.authorize(ctx, requesterID, requesterRole, patientID)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for patient %d: %+v", patient.ID, err)
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

func (u *patientUsecase) GetDiagnoses(ctx context.Context, requesterID uint, requesterRole string, patientID uint) ([]dto.PatientDiagnosisResponse, error) {
	patient, err := u.authorize(ctx, requesterID, requesterRole, patientID)
	if err != nil {
		return nil, err
	}

	visits, err := u.visitRepo.FindByPatientID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to load visits for patient %d: %+v", patient.ID, err)
		return nil, mapStorageErr(err)
	}

	responses := make([]dto.PatientDiagnosisResponse, len(visits))
	for i, v := range visits {
		responses[i] = converter.VisitToDiagnosisResponse(&v)
	}
	return responses, nil
}
