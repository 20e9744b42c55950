package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "rental-backoffice/internal/api/http"
	"rental-backoffice/internal/config"
	"rental-backoffice/internal/jobs"
	"rental-backoffice/internal/logger"
	"rental-backoffice/internal/repository/postgres"
	"rental-backoffice/internal/scheduler"
	"rental-backoffice/internal/security"
	"rental-backoffice/internal/service"
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
	logger.Info("Starting Rental Back-Office...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

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
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	productSvc := service.NewProductService(store.ProductRepository)
	customerSvc := service.NewCustomerService(store.CustomerRepository)
	rentalSvc := service.NewRentalService(store.RentalRepository, store.ProductRepository, productSvc, customerSvc)
	invoiceSvc := service.NewInvoiceService(rentalSvc, productSvc, customerSvc, cfg.Settings)

	// Initialize HTTP router
	router := httpapi.NewRouter(tokenManager, authSvc, productSvc, customerSvc, rentalSvc, invoiceSvc)

	// Start overdue reminder scheduler alongside the server
	jobRunner := jobs.NewJobRunner(store.RentalRepository, store.CustomerRepository, emailSvc, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	cronScheduler.Start()
	defer cronScheduler.Stop()

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
