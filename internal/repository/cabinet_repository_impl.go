package repository

import (
	"context"
	"errors"

	"clinic-appointment-backend/internal/domain/entity"
	domainRepo "clinic-appointment-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type cabinetRepository struct {
	db *gorm.DB
}

func NewCabinetRepository(db *gorm.DB) domainRepo.CabinetRepository {
	return &cabinetRepository{db: db}
}

func (r *cabinetRepository) FindByDoctorID(ctx context.Context, doctorID uint) (*entity.Cabinet, error) {
	var cabinet entity.Cabinet

	// Assigned cabinet first.
	err := r.db.WithContext(ctx).
		Joins("JOIN doctors ON doctors.cabinet_id = cabinets.id").
		Where("doctors.id = ?", doctorID).
		First(&cabinet).Error
	if err == nil {
		return &cabinet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Fall back to the cabinet of any weekly schedule entry.
	err = r.db.WithContext(ctx).
		Joins("JOIN weekly_schedule_entries ON weekly_schedule_entries.cabinet_id = cabinets.id").
		Where("weekly_schedule_entries.doctor_id = ?", doctorID).
		Order("weekly_schedule_entries.day_of_week ASC").
		First(&cabinet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cabinet, nil
}
