package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]entity.Department, error)
}
