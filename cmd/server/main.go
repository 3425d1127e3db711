package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	_ "github.com/lib/pq"

	httpapi "github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/api/http"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/config"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/logger"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/repository/postgres"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/security"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/service"
	"github.com/DuongHuynhTrung/Rental-Vehicle-sub000/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting rental vehicle backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Platform account", "account_id", cfg.Platform.AccountID, "fee_percent", cfg.Platform.FeePercent)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Storage Service
	logger.Info("Using local filesystem storage", "upload_dir", cfg.Storage.UploadDir)
	storageService, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)

	// Initialize Services
	authSvc := service.NewAuthService(store.Users(), tokenManager)
	userSvc := service.NewUserService(store.Users())
	vehicleSvc := service.NewVehicleService(store.Vehicles(), store.Users())
	bookingSvc := service.NewBookingService(store, emailSvc, cfg.Platform.AccountID, cfg.Platform.FeePercent)
	detailSvc := service.NewBookingDetailService(store.BookingDetails(), store.Bookings())
	commentSvc := service.NewCommentService(store)

	// Initialize HTTP handlers
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Auth:     httpapi.NewAuthHandler(authSvc),
		Users:    httpapi.NewUserHandler(userSvc, commentSvc),
		Vehicles: httpapi.NewVehicleHandler(vehicleSvc, storageService),
		Bookings: httpapi.NewBookingHandler(bookingSvc, detailSvc, commentSvc),
		AuthMW:   httpapi.NewAuthMiddleware(tokenManager),
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
