package repository

import (
	"context"
	"time"

	"clinic-appointment-backend/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByDoctorAndDate(ctx context.Context, doctorID uint, date time.Time) ([]entity.Appointment, error)
	ExistsAt(ctx context.Context, doctorID uint, date time.Time, timeOfDay string) (bool, error)
	// FindByIDForDoctor returns nil when the appointment does not exist or
	// does not belong to the given doctor; callers must not learn which.
	FindByIDForDoctor(ctx context.Context, id, doctorID uint) (*entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uint) ([]entity.Appointment, error)
	FindByPatientID(ctx context.Context, patientID uint) ([]entity.Appointment, error)
	FindByPatientUserID(ctx context.Context, userID uint) ([]entity.Appointment, error)
	// DeleteOwnedBy deletes the appointment only when it belongs to a patient
	// record owned by userID. Returns the number of rows removed.
	DeleteOwnedBy(ctx context.Context, id, userID uint) (int64, error)
	CountByDoctorAndRange(ctx context.Context, doctorID uint, from, to time.Time) (total, appeared int64, err error)
}
