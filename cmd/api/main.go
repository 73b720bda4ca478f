package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/alhuzaifa/tailor-api/internal/application/service"
	"github.com/alhuzaifa/tailor-api/internal/config"
	"github.com/alhuzaifa/tailor-api/internal/infrastructure/database"
	"github.com/alhuzaifa/tailor-api/internal/infrastructure/repository"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/handler"
	"github.com/alhuzaifa/tailor-api/internal/presentation/http/routes"
	"github.com/alhuzaifa/tailor-api/internal/realtime"
	"github.com/alhuzaifa/tailor-api/pkg/logging"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.App.LogLevel)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bill number sequence
	if err := database.SeedBillSequence(db, cfg.Billing.BillNoStart, cfg.Billing.BillNoPrefix); err != nil {
		log.Fatalf("Failed to seed bill sequence: %v", err)
	}

	// Initialize repositories
	billRepo := repository.NewBillRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	alterationRepo := repository.NewAlterationRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	sampleRepo := repository.NewSampleRepository(db)

	// Initialize the change notification hub
	hub := realtime.NewHub()

	// Initialize services
	billService := service.NewBillService(billRepo, workerRepo, customerRepo, hub, cfg.Billing.BillNoMode)
	workerService := service.NewWorkerService(workerRepo, billRepo, hub)
	alterationService := service.NewAlterationService(alterationRepo, hub)
	customerService := service.NewCustomerService(customerRepo, billRepo)
	sampleService := service.NewSampleService(sampleRepo, hub)
	dashboardService := service.NewDashboardService(billRepo, workerRepo, alterationRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Bill:       handler.NewBillHandler(billService),
		Worker:     handler.NewWorkerHandler(workerService),
		Alteration: handler.NewAlterationHandler(alterationService),
		Customer:   handler.NewCustomerHandler(customerService),
		Sample:     handler.NewSampleHandler(sampleService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Stream:     handler.NewStreamHandler(hub),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg})

	// Start server
	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
