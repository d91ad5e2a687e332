package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type VisitRepository interface {
	Create(ctx context.Context, visit *entity.Visit) error
	FindByAppointmentID(ctx context.Context, appointmentID uint) (*entity.Visit, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Visit, error)
}
