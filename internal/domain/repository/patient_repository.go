package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type PatientRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Patient, error)
	FindByUserID(ctx context.Context, userID uint) (*entity.Patient, error)
	Update(ctx context.Context, patient *entity.Patient) error
}
