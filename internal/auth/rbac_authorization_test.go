package auth

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("RBACAuthorization", func() {
	var (
		rbac    *RBACAuthorization
		reached bool
	)

	okHandler := func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	}

	userWithRole := func(role Role) *User {
		return &User{
			ID:          "u-1",
			Role:        role,
			Permissions: PermissionsForRole(role),
		}
	}

	serve := func(action Permission, user *User) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/empresas", nil)
		if user != nil {
			req = req.WithContext(ContextWithUser(req.Context(), user))
		}
		w := httptest.NewRecorder()
		rbac.Check(okHandler, action).ServeHTTP(w, req)
		return w
	}

	ginkgo.BeforeEach(func() {
		rbac = NewRBACAuthorization(slog.New(slog.NewTextHandler(io.Discard, nil)))
		reached = false
	})

	ginkgo.It("should answer 401 when no user was resolved", func() {
		w := serve(PermissionCreate, nil)

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusUnauthorized))
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should deny every action for a user whose role did not resolve", func() {
		for _, action := range []Permission{
			PermissionCreate,
			PermissionEdit,
			PermissionDelete,
			PermissionManageUsers,
			PermissionViewPendingTasks,
		} {
			w := serve(action, userWithRole(RoleNone))
			gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		}
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should pass a registrador through to the handler on create", func() {
		w := serve(PermissionCreate, userWithRole(RoleRegistrador))

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(reached).To(gomega.BeTrue())
	})

	ginkgo.It("should deny edit to a registrador", func() {
		w := serve(PermissionEdit, userWithRole(RoleRegistrador))

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))
		gomega.Expect(reached).To(gomega.BeFalse())
	})

	ginkgo.It("should let a coordinador edit but not create", func() {
		gomega.Expect(serve(PermissionEdit, userWithRole(RoleCoordinador)).Code).To(gomega.Equal(http.StatusOK))
		gomega.Expect(serve(PermissionCreate, userWithRole(RoleCoordinador)).Code).To(gomega.Equal(http.StatusForbidden))
	})

	ginkgo.It("should let an admin manage users", func() {
		w := serve(PermissionManageUsers, userWithRole(RoleAdmin))

		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	})

	ginkgo.It("should gate a wrapped http.Handler the same way", func() {
		mw := rbac.RequireDelete()
		wrapped := mw(http.HandlerFunc(okHandler))

		req := httptest.NewRequest(http.MethodDelete, "/empresas/e-1", nil)
		req = req.WithContext(ContextWithUser(req.Context(), userWithRole(RoleRegistrador)))
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusForbidden))

		req = httptest.NewRequest(http.MethodDelete, "/empresas/e-1", nil)
		req = req.WithContext(ContextWithUser(req.Context(), userWithRole(RoleAdmin)))
		w = httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)
		gomega.Expect(w.Code).To(gomega.Equal(http.StatusOK))
	})
})
