package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/domain/enum"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/request"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/response"
	"github.com/jumjum/admin-api/pkg/pagination"
)

// BillsHandler handles bill history HTTP requests
type BillsHandler struct {
	billsService *service.BillsService
}

// NewBillsHandler creates a new bills handler
func NewBillsHandler(billsService *service.BillsService) *BillsHandler {
	return &BillsHandler{billsService: billsService}
}

// List returns a page of bill history, newest first
func (h *BillsHandler) List(c *gin.Context) {
	var req request.BillHistoryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	period := enum.PeriodAll
	if req.Period != "" {
		parsed, err := enum.ParsePeriod(req.Period)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		period = parsed
	}

	page := h.billsService.ListBills(c.Request.Context(), service.BillHistoryQuery{
		Period: period,
		Search: req.Search,
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
	})

	response.OK(c, "Bills retrieved successfully", page)
}
