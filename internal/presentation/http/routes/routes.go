package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/config"
	"github.com/jumjum/admin-api/internal/presentation/http/handler"
	"github.com/jumjum/admin-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Report    *handler.ReportHandler
	Bills     *handler.BillsHandler
	Dashboard *handler.DashboardHandler
	Printer   *handler.PrinterHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerReportRoutes(v1, h)
		registerBillRoutes(v1, h)
		registerDashboardRoutes(v1, h)
		registerPrinterRoutes(v1, h)
	}

	return router
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("", h.Report.Get)
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/csv", h.Report.DownloadCSV)
		reports.GET("/print", h.Report.Print)
		reports.POST("/thermal", h.Printer.PrintReport)
	}
}

func registerBillRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/bills", h.Bills.List)
}

func registerDashboardRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/dashboard", h.Dashboard.GetStats)
}

func registerPrinterRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/printer/status", h.Printer.GetStatus)
}
