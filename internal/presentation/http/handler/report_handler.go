package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/response"
)

// ReportHandler handles billing-report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Get returns an aggregated billing report as JSON
func (h *ReportHandler) Get(c *gin.Context) {
	q, err := buildReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report := h.reportService.GenerateReport(c.Request.Context(), q)
	response.OK(c, "Report generated successfully", report)
}

// Summary returns the all/kitchen/bar revenue totals for the filter set
func (h *ReportHandler) Summary(c *gin.Context) {
	q, err := buildReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	summary := h.reportService.GenerateSummary(c.Request.Context(), q)
	response.OK(c, "Report summary generated successfully", summary)
}

// DownloadCSV returns the report as a CSV attachment
func (h *ReportHandler) DownloadCSV(c *gin.Context) {
	q, err := buildReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report := h.reportService.GenerateReport(c.Request.Context(), q)
	csv := h.reportService.RenderCSV(report)

	c.Header("Content-Disposition", `attachment; filename="`+h.reportService.CSVFileName(q)+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(csv))
}

// Print returns the report as a self-contained printable HTML document
func (h *ReportHandler) Print(c *gin.Context) {
	q, err := buildReportQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report := h.reportService.GenerateReport(c.Request.Context(), q)
	html := h.reportService.RenderHTML(report)

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
