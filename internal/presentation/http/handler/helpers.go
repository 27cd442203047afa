package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jumjum/admin-api/internal/application/service"
	"github.com/jumjum/admin-api/internal/domain/enum"
	"github.com/jumjum/admin-api/internal/presentation/http/dto/request"
	"github.com/jumjum/admin-api/pkg/apperror"
)

// buildReportQuery parses and validates report filter query parameters.
// Unknown period/category values and malformed dates are a 400; a custom
// period missing either bound is not an error (the report comes back
// empty downstream).
func buildReportQuery(c *gin.Context) (service.ReportQuery, error) {
	var req request.ReportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		return service.ReportQuery{}, apperror.NewBadRequestError("Invalid query parameters: " + err.Error())
	}

	period, err := enum.ParsePeriod(req.Period)
	if err != nil {
		return service.ReportQuery{}, apperror.NewBadRequestError(err.Error())
	}

	category, err := enum.ParseCategory(req.Category)
	if err != nil {
		return service.ReportQuery{}, apperror.NewBadRequestError(err.Error())
	}

	q := service.ReportQuery{Period: period, Category: category}

	if req.Start != "" {
		start, err := parseDay(req.Start)
		if err != nil {
			return service.ReportQuery{}, apperror.NewBadRequestError("Invalid start date (use YYYY-MM-DD)")
		}
		q.Start = &start
	}
	if req.End != "" {
		end, err := parseDay(req.End)
		if err != nil {
			return service.ReportQuery{}, apperror.NewBadRequestError("Invalid end date (use YYYY-MM-DD)")
		}
		q.End = &end
	}

	return q, nil
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
