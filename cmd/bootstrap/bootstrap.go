package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-appointment-backend/config"
	deliveryHttp "clinic-appointment-backend/internal/delivery/http"
	"clinic-appointment-backend/internal/delivery/http/handler"
	"clinic-appointment-backend/internal/delivery/http/middleware"
	"clinic-appointment-backend/internal/infrastructure/cache"
	"clinic-appointment-backend/internal/infrastructure/database"
	"clinic-appointment-backend/internal/repository"
	"clinic-appointment-backend/internal/service"
	"clinic-appointment-backend/internal/usecase"
	"clinic-appointment-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Apply schema migrations
	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	cabinetRepo := repository.NewCabinetRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)
	reportRepo := repository.NewReportRepository(db)

	// Initialize services
	sessionService := service.NewSessionService(redisClient, log, cfg.Session.TTL)
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, sessionService, auditService)
	slotUsecase := usecase.NewSlotUsecase(log, scheduleRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, patientRepo, cabinetRepo, appointmentRepo, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, appointmentRepo, visitRepo, auditService)
	profileUsecase := usecase.NewProfileUsecase(log, patientRepo, doctorRepo, scheduleRepo, appointmentRepo, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(log, doctorRepo, departmentRepo)
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, appointmentRepo, visitRepo)
	reportUsecase := usecase.NewReportUsecase(log, doctorRepo, scheduleRepo, appointmentRepo, reportRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.Session.TTL)
	appointmentHandler := handler.NewAppointmentHandler(slotUsecase, appointmentUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase)
	patientHandler := handler.NewPatientHandler(patientUsecase)
	reportHandler := handler.NewReportHandler(reportUsecase, customValidator)

	// Initialize middleware
	sessionMiddleware := middleware.NewSessionMiddleware(sessionService)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		appointmentHandler,
		doctorHandler,
		profileHandler,
		scheduleHandler,
		patientHandler,
		reportHandler,
		sessionMiddleware,
		cfg.App.CORSOrigin,
		cfg.App.RequestTimeout,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
