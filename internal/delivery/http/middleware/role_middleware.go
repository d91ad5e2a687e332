package middleware

import (
	"net/http"

	"clinic-appointment-backend/internal/domain/entity"
	"clinic-appointment-backend/pkg/response"
)

// RequireRole returns middleware that rejects callers whose session role
// is not in the allowed set. It must run after Authenticate.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}
			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "Insufficient permissions")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor limits access to doctor accounts.
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequireReporting limits access to manager and admin accounts.
func RequireReporting(next http.Handler) http.Handler {
	return RequireRole(entity.RoleManager, entity.RoleAdmin)(next)
}
