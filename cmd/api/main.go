package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/config"
	"github.com/jumjum/admin-api/internal/infrastructure/upstream"
	"github.com/jumjum/admin-api/internal/presentation/http/handler"
	"github.com/jumjum/admin-api/internal/presentation/http/routes"
	"github.com/jumjum/admin-api/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Billing API client (the remote persistence boundary)
	billRepo := upstream.NewClient(&cfg.Upstream)

	// Initialize services
	reportService := service.NewReportService(billRepo, cfg.Business, cfg.Upstream.AllBillsLimit)
	billsService := service.NewBillsService(billRepo, cfg.Upstream.AllBillsLimit)
	statsService := service.NewStatsService(billRepo, cfg.Upstream.AllBillsLimit)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.Timeout,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, cfg.Printer.Type)

	// Initialize handlers
	handlers := &routes.Handlers{
		Report:    handler.NewReportHandler(reportService),
		Bills:     handler.NewBillsHandler(billsService),
		Dashboard: handler.NewDashboardHandler(statsService),
		Printer:   handler.NewPrinterHandler(printerService, reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, cfg)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)
	log.Printf("Upstream billing API: %s", cfg.Upstream.BaseURL)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
