package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ceac-fct/placement-management/internal"
	"github.com/ceac-fct/placement-management/internal/asignacion"
	asignacionpg "github.com/ceac-fct/placement-management/internal/asignacion/postgres"
	"github.com/ceac-fct/placement-management/internal/auth"
	authpg "github.com/ceac-fct/placement-management/internal/auth/postgres"
	"github.com/ceac-fct/placement-management/internal/ciclo"
	ciclopg "github.com/ceac-fct/placement-management/internal/ciclo/postgres"
	"github.com/ceac-fct/placement-management/internal/core/events"
	"github.com/ceac-fct/placement-management/internal/dashboard"
	dashboardpg "github.com/ceac-fct/placement-management/internal/dashboard/postgres"
	"github.com/ceac-fct/placement-management/internal/empresa"
	empresapg "github.com/ceac-fct/placement-management/internal/empresa/postgres"
	"github.com/ceac-fct/placement-management/internal/estudiante"
	estudiantepg "github.com/ceac-fct/placement-management/internal/estudiante/postgres"
	"github.com/ceac-fct/placement-management/internal/pendingtask"
	pendingtaskpg "github.com/ceac-fct/placement-management/internal/pendingtask/postgres"
	"github.com/ceac-fct/placement-management/internal/transport"
	"github.com/ceac-fct/placement-management/internal/transport/rest"
	"github.com/ceac-fct/placement-management/internal/user"
	userpg "github.com/ceac-fct/placement-management/internal/user/postgres"
	"github.com/ceac-fct/placement-management/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config   *internal.Config
	DB       *sqlx.DB
	Gorm     *gorm.DB
	Router   *chi.Mux
	Handlers rest.Handlers
	Logger   *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, deps.Handlers, deps.Config.Server.AllowedOrigins, deps.Logger)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	slog.Info("Starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:         addr,
		Handler:      deps.Router,
		ReadTimeout:  deps.Config.Server.ReadTimeout,
		WriteTimeout: deps.Config.Server.WriteTimeout,
		IdleTimeout:  deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		slog.Info("Received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			slog.Error("Database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(os.Getenv("APP_ENV"))
	lg := logger.LoggerWrapper()

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	bus := events.NewEventBus(lg)
	events.NewAuditLogger(lg).Register(bus)

	baseHandler := transport.NewBaseHandler(lg)

	tokenGen := auth.NewJWTTokenGenerator(
		config.Security.AccessTokenSecret,
		config.Security.RefreshTokenSecret,
		config.Security.AccessTokenDuration,
		config.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authpg.NewRepository(gormDB), tokenGen, config.Security.BCryptCost, lg)

	empresaRepo := empresapg.NewEmpresaRepository(gormDB)
	estudianteRepo := estudiantepg.NewEstudianteRepository(gormDB)
	cicloRepo := ciclopg.NewCicloRepository(gormDB)
	asignacionRepo := asignacionpg.NewAsignacionRepository(gormDB)
	pendingTaskRepo := pendingtaskpg.NewPendingTaskRepository(gormDB)
	userRepo := userpg.NewUserRepository(gormDB)
	dashboardRepo := dashboardpg.NewDashboardRepository(gormDB)

	empresaService := empresa.NewService(empresaRepo, lg)
	estudianteService := estudiante.NewService(estudianteRepo, lg)
	cicloService := ciclo.NewService(cicloRepo, lg)
	asignacionService := asignacion.NewService(asignacionRepo, estudianteRepo, empresaRepo, bus, lg)
	pendingTaskService := pendingtask.NewService(pendingTaskRepo, bus, lg)
	userService := user.NewService(userRepo, bus, config.Security.BCryptCost, lg)
	dashboardService := dashboard.NewService(dashboardRepo, asignacionService, lg)

	handlers := rest.Handlers{
		Auth:        auth.NewHandler(authService),
		User:        user.NewHandler(baseHandler, userService),
		Empresa:     empresa.NewHandler(baseHandler, empresaService),
		Estudiante:  estudiante.NewHandler(baseHandler, estudianteService),
		Ciclo:       ciclo.NewHandler(baseHandler, cicloService),
		Asignacion:  asignacion.NewHandler(baseHandler, asignacionService),
		PendingTask: pendingtask.NewHandler(baseHandler, pendingTaskService),
		Dashboard:   dashboard.NewHandler(baseHandler, dashboardService),
	}

	return &Dependencies{
		Config:   config,
		DB:       db,
		Gorm:     gormDB,
		Router:   chi.NewRouter(),
		Handlers: handlers,
		Logger:   lg,
	}, nil
}

// initDB opens the pgx-backed connection pool used for health checks and by
// the ORM session below.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the already-open pool so both share one set of
// connection limits.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
}
