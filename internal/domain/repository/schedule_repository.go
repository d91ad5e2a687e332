package repository

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
)

type ScheduleRepository interface {
	// FindByDoctorAndDay returns nil when the doctor has no availability
	// window on that ISO day of week.
	FindByDoctorAndDay(ctx context.Context, doctorID uint, dayOfWeek int) (*entity.WeeklyScheduleEntry, error)
	FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.WeeklyScheduleEntry, error)
}
