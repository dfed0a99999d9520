package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/server/http/dto"
)

// ReportHandler computes and serves performance projections.
type ReportHandler struct {
	facade ReportFacade
	now    func() time.Time
}

// NewReportHandler creates ReportHandler instance.
func NewReportHandler(facade ReportFacade) *ReportHandler {
	return &ReportHandler{facade: facade, now: time.Now}
}

// Generate handles POST /api/orders/report.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	date := h.now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		date = parsed
	}

	report, text, err := h.facade.GenerateReport(c.Request.Context(), CurrentOperatorID(c), req.Orders, date)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrJSONDecode):
			c.JSON(http.StatusBadRequest, dto.ProcessErrorResponse{Error: err.Error()})
		case errors.Is(err, domainErrors.ErrNoSession):
			c.Status(http.StatusNotFound)
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Report: report, Text: text})
}

// Last handles GET /api/orders/report.
func (h *ReportHandler) Last(c *gin.Context) {
	report, text := h.facade.Report(CurrentOperatorID(c))
	if report == nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Report: *report, Text: text})
}
