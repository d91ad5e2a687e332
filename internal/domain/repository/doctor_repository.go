package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.Doctor, error)
	FindByUserID(ctx context.Context, userID uint) (*entity.Doctor, error)
	FindAllWithSchedule(ctx context.Context) ([]entity.Doctor, error)
	FindByDepartment(ctx context.Context, departmentID uint) ([]entity.Doctor, error)
}
