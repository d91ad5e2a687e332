package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type ReportRepository interface {
	Create(ctx context.Context, report *entity.Report) error
	FindAll(ctx context.Context) ([]entity.Report, error)
	FindByID(ctx context.Context, id uint) (*entity.Report, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
