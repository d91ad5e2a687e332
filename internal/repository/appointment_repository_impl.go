package repository

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-backend/internal/domain/entity"
	domainRepo "clinic-appointment-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	return r.db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByDoctorAndDate(ctx context.Context, doctorID uint, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND date = ?", doctorID, date).
		Order("time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsAt(ctx context.Context, doctorID uint, date time.Time, timeOfDay string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date = ? AND time = ?", doctorID, date, timeOfDay).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindByIDForDoctor(ctx context.Context, id, doctorID uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", id, doctorID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Cabinet").
		Preload("Visit").
		Where("doctor_id = ?", doctorID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Cabinet").
		Preload("Visit").
		Where("patient_id = ?", patientID).
		Order("date DESC, time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientUserID(ctx context.Context, userID uint) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := r.db.WithContext(ctx).
		Preload("Doctor").
		Preload("Cabinet").
		Preload("Visit").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("patients.user_id = ?", userID).
		Order("appointments.date DESC, appointments.time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// DeleteOwnedBy filters by the owning user inside the DELETE itself so an
// unauthorized caller cannot distinguish "not yours" from "does not exist".
func (r *appointmentRepository) DeleteOwnedBy(ctx context.Context, id, userID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND patient_id IN (?)",
			id,
			r.db.Model(&entity.Patient{}).Select("id").Where("user_id = ?", userID),
		).
		Delete(&entity.Appointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByDoctorAndRange(ctx context.Context, doctorID uint, from, to time.Time) (int64, int64, error) {
	var total, appeared int64
	base := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date >= ? AND date < ?", doctorID, from, to)
	if err := base.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where("doctor_id = ? AND date >= ? AND date < ? AND appearance = ?", doctorID, from, to, true).
		Count(&appeared).Error
	if err != nil {
		return 0, 0, err
	}
	return total, appeared, nil
}
