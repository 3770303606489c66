package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	deliveryHttp "clinicbook/internal/delivery/http"
	"clinicbook/internal/delivery/http/handler"
	"clinicbook/internal/delivery/http/middleware"
	"clinicbook/internal/infrastructure/cache"
	"clinicbook/internal/infrastructure/database"
	"clinicbook/internal/repository"
	"clinicbook/internal/service"
	"clinicbook/internal/usecase"
	"clinicbook/pkg/validator"

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

	// Apply schema migrations
	if err := database.RunMigrations(db, cfg.DB.Name); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis only when the slot cache is enabled; the resolver
	// works without it.
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
	} else {
		logrus.Info("Slot cache disabled, skipping Redis connection")
	}

	// Initialize all layers
	server := initializeServer(cfg, db, app.RedisClient)
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

	// Initialize transaction store and repositories
	store := repository.NewTransactor(db)
	doctorRepo := repository.NewDoctorRepository()
	locationRepo := repository.NewLocationRepository()
	doctorLocationRepo := repository.NewDoctorLocationRepository()
	slotRepo := repository.NewAvailabilitySlotRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize slot cache (nil client means cache is disabled)
	slotCache := service.NewSlotCache(redisClient, log, cfg.Cache.TTL)

	// Initialize usecases
	doctorUsecase := usecase.NewDoctorUsecase(store, log, doctorRepo, locationRepo)
	locationUsecase := usecase.NewLocationUsecase(store, log, locationRepo, doctorRepo, doctorLocationRepo)
	availabilityUsecase := usecase.NewAvailabilityUsecase(store, log, doctorLocationRepo, slotRepo, appointmentRepo, slotCache)
	bookingUsecase := usecase.NewBookingUsecase(store, log, doctorLocationRepo, slotRepo, appointmentRepo, slotCache)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	locationHandler := handler.NewLocationHandler(locationUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(bookingUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, locationHandler, availabilityHandler, appointmentHandler, corsMiddleware, loggingMiddleware)
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
