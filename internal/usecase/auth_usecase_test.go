package usecase

import (
	"context"
	"errors"
	"testing"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/service"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(hash)
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates patient account", func(t *testing.T) {
		t.Parallel()

		var gotUser *entity.User
		var gotPatient *entity.Patient
		userRepo := &stubUserRepo{
			createWithPatient: func(ctx context.Context, user *entity.User, patient *entity.Patient) error {
				user.ID = 42
				gotUser = user
				gotPatient = patient
				return nil
			},
		}
		audit := &stubAuditService{}

		u := NewAuthUsecase(newTestLogger(), userRepo, &stubSessionService{}, audit)
		resp, err := u.Register(context.Background(), &dto.RegisterRequest{Login: "ivanov", Password: "secret1"})
		if err != nil {
			t.Fatalf("Register: %v", err)
		}

		if resp.ID != 42 || resp.Login != "ivanov" || resp.Role != entity.RolePatient {
			t.Errorf("response = %+v, want id=42 login=ivanov role=patient", resp)
		}
		if gotUser.RoleID != entity.RoleIDPatient {
			t.Errorf("RoleID = %d, want %d", gotUser.RoleID, entity.RoleIDPatient)
		}
		if gotUser.PasswordHash == "secret1" || gotUser.PasswordHash == "" {
			t.Error("password must be stored hashed")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(gotUser.PasswordHash), []byte("secret1")); err != nil {
			t.Errorf("stored hash does not verify: %v", err)
		}
		if gotPatient == nil {
			t.Error("patient row must be created alongside the user")
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionUserRegister {
			t.Errorf("audit actions = %v", audit.actions)
		}
	})

	t.Run("duplicate login", func(t *testing.T) {
		t.Parallel()

		userRepo := &stubUserRepo{
			createWithPatient: func(ctx context.Context, user *entity.User, patient *entity.Patient) error {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_users_login"}
			},
		}

		u := NewAuthUsecase(newTestLogger(), userRepo, &stubSessionService{}, &stubAuditService{})
		_, err := u.Register(context.Background(), &dto.RegisterRequest{Login: "ivanov", Password: "secret1"})
		if !errors.Is(err, ErrLoginAlreadyExists) {
			t.Errorf("err = %v, want ErrLoginAlreadyExists", err)
		}
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	user := func(t *testing.T) *entity.User {
		return &entity.User{
			ID:           7,
			Login:        "ivanov",
			PasswordHash: hashPassword(t, "secret1"),
			RoleID:       entity.RoleIDPatient,
			Role:         entity.Role{ID: entity.RoleIDPatient, RoleName: entity.RolePatient},
		}
	}

	t.Run("success returns session token", func(t *testing.T) {
		t.Parallel()

		stored := user(t)
		userRepo := &stubUserRepo{
			findByLogin: func(ctx context.Context, login string) (*entity.User, error) {
				return stored, nil
			},
		}
		sessions := &stubSessionService{
			create: func(ctx context.Context, userID uint, role string) (string, error) {
				if userID != 7 || role != entity.RolePatient {
					t.Errorf("session created for (%d, %s), want (7, patient)", userID, role)
				}
				return "opaque-token", nil
			},
		}

		u := NewAuthUsecase(newTestLogger(), userRepo, sessions, &stubAuditService{})
		resp, token, err := u.Login(context.Background(), &dto.LoginRequest{Login: "ivanov", Password: "secret1"})
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if token != "opaque-token" {
			t.Errorf("token = %q", token)
		}
		if resp.ID != 7 || resp.Role != entity.RolePatient {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		stored := user(t)
		userRepo := &stubUserRepo{
			findByLogin: func(ctx context.Context, login string) (*entity.User, error) {
				return stored, nil
			},
		}

		u := NewAuthUsecase(newTestLogger(), userRepo, &stubSessionService{}, &stubAuditService{})
		_, _, err := u.Login(context.Background(), &dto.LoginRequest{Login: "ivanov", Password: "wrong"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown login yields the same error", func(t *testing.T) {
		t.Parallel()

		u := NewAuthUsecase(newTestLogger(), &stubUserRepo{}, &stubSessionService{}, &stubAuditService{})
		_, _, err := u.Login(context.Background(), &dto.LoginRequest{Login: "nobody", Password: "whatever"})
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})
}

func TestLogout(t *testing.T) {
	t.Parallel()

	t.Run("deletes the session", func(t *testing.T) {
		t.Parallel()

		sessions := &stubSessionService{
			get: func(ctx context.Context, token string) (*service.Session, error) {
				return &service.Session{UserID: 7, Role: entity.RolePatient}, nil
			},
		}
		audit := &stubAuditService{}
		u := NewAuthUsecase(newTestLogger(), &stubUserRepo{}, sessions, audit)
		if err := u.Logout(context.Background(), "some-token"); err != nil {
			t.Fatalf("Logout: %v", err)
		}
		if len(sessions.deletions) != 1 || sessions.deletions[0] != "some-token" {
			t.Errorf("deletions = %v", sessions.deletions)
		}
		if len(audit.actions) != 1 || audit.actions[0] != entity.AuditActionUserLogout {
			t.Errorf("audit actions = %v", audit.actions)
		}
	})

	t.Run("unknown token still deletes without audit", func(t *testing.T) {
		t.Parallel()

		sessions := &stubSessionService{}
		audit := &stubAuditService{}
		u := NewAuthUsecase(newTestLogger(), &stubUserRepo{}, sessions, audit)
		if err := u.Logout(context.Background(), "stale-token"); err != nil {
			t.Fatalf("Logout: %v", err)
		}
		if len(sessions.deletions) != 1 {
			t.Errorf("deletions = %v", sessions.deletions)
		}
		if len(audit.actions) != 0 {
			t.Errorf("audit actions = %v, want none", audit.actions)
		}
	})

	t.Run("empty token is a no-op", func(t *testing.T) {
		t.Parallel()

		sessions := &stubSessionService{}
		u := NewAuthUsecase(newTestLogger(), &stubUserRepo{}, sessions, &stubAuditService{})
		if err := u.Logout(context.Background(), ""); err != nil {
			t.Fatalf("Logout: %v", err)
		}
		if len(sessions.deletions) != 0 {
			t.Errorf("deletions = %v, want none", sessions.deletions)
		}
	})
}
