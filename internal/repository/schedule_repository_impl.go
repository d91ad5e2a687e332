package repository

import (
	"context"
	"errors"

	"clinic-appointment-backend/internal/domain/entity"
	domainRepo "clinic-appointment-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) domainRepo.ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) FindByDoctorAndDay(ctx context.Context, doctorID uint, dayOfWeek int) (*entity.WeeklyScheduleEntry, error) {
	var entry entity.WeeklyScheduleEntry
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND day_of_week = ?", doctorID, dayOfWeek).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.WeeklyScheduleEntry, error) {
	var entries []entity.WeeklyScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("Cabinet").
		Where("doctor_id = ?", doctorID).
		Order("day_of_week ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
