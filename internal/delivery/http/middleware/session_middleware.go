package middleware

import (
	"context"
	"net/http"

	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/pkg/response"
)

type contextKey string

const (
	UserIDKey       contextKey = "user_id"
	RoleKey         contextKey = "role"
	SessionTokenKey contextKey = "session_token"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "session_id"

type SessionMiddleware struct {
	sessionService service.SessionService
}

func NewSessionMiddleware(sessionService service.SessionService) *SessionMiddleware {
	return &SessionMiddleware{sessionService: sessionService}
}

// Authenticate resolves the session cookie against the session store and
// attaches the caller's identity to the request context. Lookup never
// extends the session TTL.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			response.Unauthorized(w, "Authentication required")
			return
		}

		session, err := m.sessionService.Get(r.Context(), cookie.Value)
		if err != nil {
			response.ServiceUnavailable(w, "Failed to validate session")
			return
		}
		if session == nil {
			response.Unauthorized(w, "Session expired")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, session.UserID)
		ctx = context.WithValue(ctx, RoleKey, session.Role)
		ctx = context.WithValue(ctx, SessionTokenKey, cookie.Value)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts the authenticated user ID from context
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetRoleFromContext extracts the authenticated role from context
func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}

// GetSessionTokenFromContext extracts the raw session token from context
func GetSessionTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(SessionTokenKey).(string)
	return token, ok
}
