package auth

import (
	"log/slog"
	"net/http"
)

// RBACAuthorization is the server-side permission gate: routes wrapped by it
// are only reachable when the resolved permission set grants the named action.
type RBACAuthorization struct {
	logger *slog.Logger
}

func NewRBACAuthorization(logger *slog.Logger) *RBACAuthorization {
	return &RBACAuthorization{logger: logger}
}

func (ra *RBACAuthorization) Check(next http.HandlerFunc, action Permission) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user == nil {
			ra.logger.Warn("authorization check failed: user not found in context")
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		if !user.HasPermission(action) {
			ra.logger.WarnContext(r.Context(), "access denied: insufficient permissions",
				"user_id", user.ID,
				"role", user.Role,
				"required_permission", action)
			http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	}
}

func (ra *RBACAuthorization) Middleware(action Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return ra.Check(next.ServeHTTP, action)
	}
}

func (ra *RBACAuthorization) RequireCreate() func(http.Handler) http.Handler {
	return ra.Middleware(PermissionCreate)
}

func (ra *RBACAuthorization) RequireEdit() func(http.Handler) http.Handler {
	return ra.Middleware(PermissionEdit)
}

func (ra *RBACAuthorization) RequireDelete() func(http.Handler) http.Handler {
	return ra.Middleware(PermissionDelete)
}

func (ra *RBACAuthorization) RequireManageUsers() func(http.Handler) http.Handler {
	return ra.Middleware(PermissionManageUsers)
}

func (ra *RBACAuthorization) RequireViewPendingTasks() func(http.Handler) http.Handler {
	return ra.Middleware(PermissionViewPendingTasks)
}
