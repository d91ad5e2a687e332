package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-appointment-backend/internal/domain/entity"
)

func TestPatientAccess(t *testing.T) {
	t.Parallel()

	patientRepo := &stubPatientRepo{
		findByID: func(ctx context.Context, id uint) (*entity.Patient, error) {
			if id != 100 {
				return nil, nil
			}
			return &entity.Patient{ID: 100, UserID: 9, FullName: "Ivanov I.I."}, nil
		},
	}

	newUsecase := func() PatientUsecase {
		return NewPatientUsecase(newTestLogger(), patientRepo, &stubAppointmentRepo{}, &stubVisitRepo{})
	}

	tests := []struct {
		name        string
		requesterID uint
		role        string
		patientID   uint
		wantErr     error
	}{
		{"doctor sees any patient", 2, entity.RoleDoctor, 100, nil},
		{"manager sees any patient", 4, entity.RoleManager, 100, nil},
		{"admin sees any patient", 1, entity.RoleAdmin, 100, nil},
		{"patient sees own record", 9, entity.RolePatient, 100, nil},
		{"patient denied another record", 8, entity.RolePatient, 100, ErrPatientAccessDenied},
		{"unknown role denied", 9, "intern", 100, ErrPatientAccessDenied},
		{"missing patient", 2, entity.RoleDoctor, 999, ErrPatientNotFound},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			u := newUsecase()
			info, err := u.GetInfo(context.Background(), tt.requesterID, tt.role, tt.patientID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetInfo: %v", err)
			}
			if info.ID != 100 || info.FullName != "Ivanov I.I." {
				t.Errorf("info = %+v", info)
			}
		})
	}
}

func TestPatientDiagnosesScopedByAccess(t *testing.T) {
	t.Parallel()

	patientRepo := &stubPatientRepo{
		findByID: func(ctx context.Context, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: 100, UserID: 9}, nil
		},
	}
	visitRepo := &stubVisitRepo{
		findByPatientID: func(ctx context.Context, patientID uint) ([]entity.Visit, error) {
			return []entity.Visit{
				{ID: 1, PatientID: patientID, Diagnosis: "ARVI", Time: "09:30:00"},
			}, nil
		},
	}

	u := NewPatientUsecase(newTestLogger(), patientRepo, &stubAppointmentRepo{}, visitRepo)

	diagnoses, err := u.GetDiagnoses(context.Background(), 9, entity.RolePatient, 100)
	if err != nil {
		t.Fatalf("GetDiagnoses: %v", err)
	}
	if len(diagnoses) != 1 || diagnoses[0].Diagnosis != "ARVI" {
		t.Errorf("diagnoses = %+v", diagnoses)
	}
	if diagnoses[0].Time != "09:30" {
		t.Errorf("time = %q, want short HH:MM form", diagnoses[0].Time)
	}

	if _, err := u.GetDiagnoses(context.Background(), 8, entity.RolePatient, 100); !errors.Is(err, ErrPatientAccessDenied) {
		t.Errorf("err = %v, want ErrPatientAccessDenied", err)
	}
}
