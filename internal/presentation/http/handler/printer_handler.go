package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles thermal-printer HTTP requests.
type PrinterHandler struct {
	printerService *service.PrinterService
	reportService  *service.ReportService
}

// NewPrinterHandler creates a new printer handler.
func NewPrinterHandler(printerService *service.PrinterService, reportService *service.ReportService) *PrinterHandler {
	return &PrinterHandler{
		printerService: printerService,
		reportService:  reportService,
	}
}

// GetStatus returns the current printer connection status.
func (h *PrinterHandler) GetStatus(c *gin.Context) {
	status := h.printerService.GetStatus()
	response.OK(c, "Printer status retrieved", status)
}

// PrintReport generates a report for the query filters and sends it to
// the thermal printer.
func (h *PrinterHandler) PrintReport(c *gin.Context) {
	q, err := buildReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report := h.reportService.GenerateReport(c.Request.Context(), q)

	if err := h.printerService.PrintReport(report); err != nil {
		// Return the report anyway (useful when printer type is "none")
		response.OK(c, "Report generated but printing failed", gin.H{
			"report":  report,
			"warning": err.Error(),
		})
		return
	}

	response.OK(c, "Report sent to printer", gin.H{
		"report": report,
	})
}
