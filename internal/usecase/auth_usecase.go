package usecase

import (
	"context"
	"errors"

	"clinic-appointment-backend/internal/delivery/dto"
	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"
	"clinic-appointment-backend/internal/service"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	// Login verifies credentials and returns the public user fields plus an
	// opaque session token. The password hash never leaves this layer.
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error)
	// Logout is idempotent: an unknown token is not an error.
	Logout(ctx context.Context, token string) error
}

type authUsecase struct {
	log            *logrus.Logger
	userRepo       repository.UserRepository
	sessionService service.SessionService
	auditService   service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	sessionService service.SessionService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		userRepo:       userRepo,
		sessionService: sessionService,
		auditService:   auditService,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Login:        req.Login,
		PasswordHash: string(hashedPassword),
		RoleID:       entity.RoleIDPatient,
	}
	patient := &entity.Patient{}

	// User and patient rows are created in one transaction; a duplicate
	// login aborts both.
	if err := u.userRepo.CreateWithPatient(ctx, user, patient); err != nil {
		if isDuplicateKeyError(err, "users_login") {
			return nil, ErrLoginAlreadyExists
		}
		u.log.Warnf("Failed to register user: %+v", err)
		return nil, mapStorageErr(err)
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserRegister, entity.JSON{"login": user.Login})

	return &dto.UserResponse{
		ID:    user.ID,
		Login: user.Login,
		Role:  entity.RolePatient,
	}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	user, err := u.userRepo.FindByLogin(ctx, req.Login)
	if err != nil {
		u.log.Warnf("Failed to find user by login: %+v", err)
		return nil, "", mapStorageErr(err)
	}
	if user == nil {
		// Same error as a bad password, never revealing which part failed.
		return nil, "", ErrInvalidCredentials
	}

	// bcrypt comparison is constant-time over the derived key.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.sessionService.Create(ctx, user.ID, user.Role.RoleName)
	if err != nil {
		u.log.Warnf("Failed to create session: %+v", err)
		return nil, "", mapStorageErr(err)
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserLogin, entity.JSON{"login": user.Login})

	return &dto.UserResponse{
		ID:    user.ID,
		Login: user.Login,
		Role:  user.Role.RoleName,
	}, token, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	// Best-effort: resolve the session before deleting so the audit entry
	// carries the user.
	session, err := u.sessionService.Get(ctx, token)
	if err != nil {
		u.log.Warnf("Failed to resolve session on logout: %+v", err)
	}

	if err := u.sessionService.Delete(ctx, token); err != nil {
		u.log.Warnf("Failed to delete session: %+v", err)
		return mapStorageErr(err)
	}

	if session != nil {
		u.auditService.Record(ctx, &session.UserID, entity.AuditActionUserLogout, nil)
	}
	return nil
}
