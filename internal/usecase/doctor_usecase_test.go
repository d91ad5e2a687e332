package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

func doctorFor(userID uint) *stubDoctorRepo {
	return &stubDoctorRepo{
		findByUserID: func(ctx context.Context, uid uint) (*entity.Doctor, error) {
			if uid != userID {
				return nil, nil
			}
			return &entity.Doctor{ID: 3, UserID: userID}, nil
		},
	}
}

func TestRecordDiagnosis(t *testing.T) {
	t.Parallel()

	date, _ := time.Parse("2006-01-02", "2026-09-02")
	appointment := &entity.Appointment{
		ID:        55,
		DoctorID:  3,
		PatientID: 100,
		Date:      date,
		Time:      "09:30:00",
	}
	req := &dto.RecordDiagnosisRequest{AppointmentID: 55, Diagnosis: "ARVI", Complaints: "fever"}

	t.Run("creates the visit from the appointment", func(t *testing.T) {
		t.Parallel()

		appointmentRepo := &stubAppointmentRepo{
			findByIDForDoctor: func(ctx context.Context, id, doctorID uint) (*entity.Appointment, error) {
				if id != 55 || doctorID != 3 {
					return nil, nil
				}
				return appointment, nil
			},
		}
		var created *entity.Visit
		visitRepo := &stubVisitRepo{
			create: func(ctx context.Context, v *entity.Visit) error {
				v.ID = 77
				created = v
				return nil
			},
		}
		audit := &stubAuditService{}

		u := NewDoctorUsecase(newTestLogger(), doctorFor(2), appointmentRepo, visitRepo, audit)
		resp, err := u.RecordDiagnosis(context.Background(), 2, req)
		if err != nil {
			t.Fatalf("RecordDiagnosis: %v", err)
		}

		if resp.ID != 77 || resp.Diagnosis != "ARVI" {
			t.Errorf("response = %+v", resp)
		}
		if created.AppointmentID == nil || *created.AppointmentID != 55 {
			t.Error("visit must reference the appointment")
		}
		if created.PatientID != 100 || created.DoctorID != 3 {
			t.Errorf("visit parties = (%d, %d), want (100, 3)", created.PatientID, created.DoctorID)
		}
		if !created.Date.Equal(appointment.Date) || created.Time != appointment.Time {
			t.Error("visit must carry the appointment's slot")
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionVisitRecord {
			t.Errorf("audit actions = %v", audit.actions)
		}
	})

	t.Run("another doctor's appointment is not found", func(t *testing.T) {
		t.Parallel()

		u := NewDoctorUsecase(newTestLogger(), doctorFor(2), &stubAppointmentRepo{}, &stubVisitRepo{}, &stubAuditService{})
		_, err := u.RecordDiagnosis(context.Background(), 2, req)
		if !errors.Is(err, ErrAppointmentNotFound) {
			t.Errorf("err = %v, want ErrAppointmentNotFound", err)
		}
	})

	t.Run("second diagnosis is rejected", func(t *testing.T) {
		t.Parallel()

		appointmentRepo := &stubAppointmentRepo{
			findByIDForDoctor: func(ctx context.Context, id, doctorID uint) (*entity.Appointment, error) {
				return appointment, nil
			},
		}
		visitRepo := &stubVisitRepo{
			findByAppointmentID: func(ctx context.Context, appointmentID uint) (*entity.Visit, error) {
				return &entity.Visit{ID: 77}, nil
			},
			create: func(ctx context.Context, v *entity.Visit) error {
				t.Error("create must not be called when a visit already exists")
				return nil
			},
		}

		u := NewDoctorUsecase(newTestLogger(), doctorFor(2), appointmentRepo, visitRepo, &stubAuditService{})
		_, err := u.RecordDiagnosis(context.Background(), 2, req)
		if !errors.Is(err, ErrVisitAlreadyRecorded) {
			t.Errorf("err = %v, want ErrVisitAlreadyRecorded", err)
		}
	})

	t.Run("concurrent duplicate surfaces as already recorded", func(t *testing.T) {
		t.Parallel()

		appointmentRepo := &stubAppointmentRepo{
			findByIDForDoctor: func(ctx context.Context, id, doctorID uint) (*entity.Appointment, error) {
				return appointment, nil
			},
		}
		visitRepo := &stubVisitRepo{
			create: func(ctx context.Context, v *entity.Visit) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_visits_appointment"}
			},
		}

		u := NewDoctorUsecase(newTestLogger(), doctorFor(2), appointmentRepo, visitRepo, &stubAuditService{})
		_, err := u.RecordDiagnosis(context.Background(), 2, req)
		if !errors.Is(err, ErrVisitAlreadyRecorded) {
			t.Errorf("err = %v, want ErrVisitAlreadyRecorded", err)
		}
	})

	t.Run("no doctor record for user", func(t *testing.T) {
		t.Parallel()

		u := NewDoctorUsecase(newTestLogger(), &stubDoctorRepo{}, &stubAppointmentRepo{}, &stubVisitRepo{}, &stubAuditService{})
		_, err := u.RecordDiagnosis(context.Background(), 2, req)
		if !errors.Is(err, ErrDoctorNotFound) {
			t.Errorf("err = %v, want ErrDoctorNotFound", err)
		}
	})
}

func TestGetMyAppointments(t *testing.T) {
	t.Parallel()

	date, _ := time.Parse("2006-01-02", "2026-09-02")

	appointmentRepo := &stubAppointmentRepo{
		findByDoctorID: func(ctx context.Context, doctorID uint) ([]entity.Appointment, error) {
			return []entity.Appointment{
				{ID: 1, DoctorID: doctorID, PatientID: 100, Date: date, Time: "09:00:00"},
				{ID: 2, DoctorID: doctorID, PatientID: 101, Date: date, Time: "09:30:00"},
			}, nil
		},
	}

	u := NewDoctorUsecase(newTestLogger(), doctorFor(2), appointmentRepo, &stubVisitRepo{}, &stubAuditService{})
	got, err := u.GetMyAppointments(context.Background(), 2)
	if err != nil {
		t.Fatalf("GetMyAppointments: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Time != "09:00" || got[1].Time != "09:30" {
		t.Errorf("times = (%s, %s), want short HH:MM form", got[0].Time, got[1].Time)
	}
}
