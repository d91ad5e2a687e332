package repository

import (
	"context"
	"errors"

	"clinic-appointment-backend/internal/domain/entity"
	domainRepo "clinic-appointment-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) domainRepo.VisitRepository {
	return &visitRepository{db: db}
}

func (r *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *visitRepository) FindByAppointmentID(ctx context.Context, appointmentID uint) (*entity.Visit, error) {
	var visit entity.Visit
	err := r.db.WithContext(ctx).Where("appointment_id = ?", appointmentID).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}
