package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type UserRepository interface {
	// CreateWithPatient inserts the user and its linked patient row in a
	// single transaction. Partial registration must never be visible.
	CreateWithPatient(ctx context.Context, user *entity.User, patient *entity.Patient) error
	FindByLogin(ctx context.Context, login string) (*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}
