package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const sessionKeyPrefix = "session:"

// Session is the server-side state an opaque token resolves to.
type Session struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
}

// SessionService owns opaque session tokens: creation with a fixed TTL,
// lookup, and deletion. Reads never extend the TTL; a session is valid for
// exactly the configured duration from creation.
type SessionService interface {
	Create(ctx context.Context, userID uint, role string) (string, error)
	// Get returns nil when the token is unknown or expired.
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

type redisSessionService struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

func NewSessionService(client *redis.Client, log *logrus.Logger, ttl time.Duration) SessionService {
	return &redisSessionService{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func (s *redisSessionService) Create(ctx context.Context, userID uint, role string) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(Session{UserID: userID, Role: role})
	if err != nil {
		return "", err
	}

	key := sessionKeyPrefix + token
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		s.log.Warnf("Failed to store session: %+v", err)
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

func (s *redisSessionService) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		s.log.Warnf("Failed to read session: %+v", err)
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionService) Delete(ctx context.Context, token string) error {
	// Unconditional DEL keeps logout idempotent.
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		s.log.Warnf("Failed to delete session: %+v", err)
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
