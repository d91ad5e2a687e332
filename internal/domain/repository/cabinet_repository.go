package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type CabinetRepository interface {
	// FindByDoctorID resolves the cabinet a doctor sees patients in,
	// preferring the doctor's assigned cabinet and falling back to the
	// cabinet of any weekly schedule entry.
	FindByDoctorID(ctx context.Context, doctorID uint) (*entity.Cabinet, error)
}
