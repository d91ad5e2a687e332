package service

import (
	"context"

	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// AuditService records domain events into the audit trail. Failures are
// logged and swallowed: auditing must never fail the triggering operation.
type AuditService interface {
	Record(ctx context.Context, userID *uint, action string, metadata entity.JSON)
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Record(ctx context.Context, userID *uint, action string, metadata entity.JSON) {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log for %s: %+v", action, err)
	}
}
