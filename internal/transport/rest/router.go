package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/ceac-fct/placement-management/internal/asignacion"
	"github.com/ceac-fct/placement-management/internal/auth"
	"github.com/ceac-fct/placement-management/internal/ciclo"
	"github.com/ceac-fct/placement-management/internal/dashboard"
	"github.com/ceac-fct/placement-management/internal/empresa"
	"github.com/ceac-fct/placement-management/internal/estudiante"
	"github.com/ceac-fct/placement-management/internal/pendingtask"
	"github.com/ceac-fct/placement-management/internal/transport/middleware"
	"github.com/ceac-fct/placement-management/internal/transport/swagger"
	"github.com/ceac-fct/placement-management/internal/user"
	"github.com/go-chi/chi"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Empresa     *empresa.Handler
	Estudiante  *estudiante.Handler
	Ciclo       *ciclo.Handler
	Asignacion  *asignacion.Handler
	PendingTask *pendingtask.Handler
	Dashboard   *dashboard.Handler
}

// RegisterAllRoutes wires the HTTP surface. Mutating entity routes sit behind
// the permission gate; read routes only require authentication.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, allowedOrigins string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)
	rbac := auth.NewRBACAuthorization(logger)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// OpenAPI document and Swagger UI live outside the API prefix.
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.Me)
			pr.Get("/dashboard/stats", h.Dashboard.GetStats)

			registerEntityRoutes(pr, "/empresas", rbac, entityHandlers{
				list:   h.Empresa.List,
				get:    h.Empresa.Get,
				create: h.Empresa.Create,
				update: h.Empresa.Update,
				delete: h.Empresa.Delete,
			})
			registerEntityRoutes(pr, "/estudiantes", rbac, entityHandlers{
				list:   h.Estudiante.List,
				get:    h.Estudiante.Get,
				create: h.Estudiante.Create,
				update: h.Estudiante.Update,
				delete: h.Estudiante.Delete,
			})
			registerEntityRoutes(pr, "/ciclos-formativos", rbac, entityHandlers{
				list:   h.Ciclo.List,
				get:    h.Ciclo.Get,
				create: h.Ciclo.Create,
				update: h.Ciclo.Update,
				delete: h.Ciclo.Delete,
			})

			pr.Route("/asignaciones", func(ar chi.Router) {
				ar.Get("/", h.Asignacion.List)
				ar.Get("/recent", h.Asignacion.Recent)
				ar.Get("/{id}", h.Asignacion.Get)
				ar.With(rbac.RequireCreate()).Post("/", h.Asignacion.Create)
				ar.With(rbac.RequireEdit()).Put("/{id}", h.Asignacion.Update)
				ar.With(rbac.RequireDelete()).Delete("/{id}", h.Asignacion.Delete)
			})

			pr.Route("/pending-tasks", func(tr chi.Router) {
				tr.Use(rbac.RequireViewPendingTasks())
				tr.Get("/", h.PendingTask.List)
				tr.Post("/", h.PendingTask.Create)
				tr.Get("/{id}", h.PendingTask.Get)
				tr.Delete("/{id}", h.PendingTask.Delete)
			})

			pr.Route("/users", func(ur chi.Router) {
				ur.Use(rbac.RequireManageUsers())
				ur.Get("/", h.User.List)
				ur.Post("/", h.User.Create)
				ur.Get("/{id}", h.User.Get)
				ur.Put("/{id}", h.User.Update)
				ur.Delete("/{id}", h.User.Delete)
			})
		})
	})
}

type entityHandlers struct {
	list   http.HandlerFunc
	get    http.HandlerFunc
	create http.HandlerFunc
	update http.HandlerFunc
	delete http.HandlerFunc
}

func registerEntityRoutes(r chi.Router, pattern string, rbac *auth.RBACAuthorization, h entityHandlers) {
	r.Route(pattern, func(er chi.Router) {
		er.Get("/", h.list)
		er.Get("/{id}", h.get)
		er.With(rbac.RequireCreate()).Post("/", h.create)
		er.With(rbac.RequireEdit()).Put("/{id}", h.update)
		er.With(rbac.RequireDelete()).Delete("/{id}", h.delete)
	})
}
