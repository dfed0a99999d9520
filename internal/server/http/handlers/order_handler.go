package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/f1rstgear/gearflow/internal/domain/errors"
	"github.com/f1rstgear/gearflow/internal/server/http/dto"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandler processes chat intake, exports, and spreadsheet pushes.
type OrderHandler struct {
	facade OrderFacade
	now    func() time.Time
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade, now: time.Now}
}

// Process handles POST /api/orders/process.
func (h *OrderHandler) Process(c *gin.Context) {
	var req dto.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.ProcessOrders(c.Request.Context(), CurrentOperatorID(c), req.Text)
	if err != nil {
		resp := dto.ProcessErrorResponse{Error: err.Error()}
		if result != nil {
			resp.Summary = result.Summary
		}
		switch {
		case errors.Is(err, domainErrors.ErrMalformedInput):
			c.JSON(http.StatusBadRequest, resp)
		case errors.Is(err, domainErrors.ErrExtraction):
			c.JSON(http.StatusBadGateway, resp)
		default:
			c.JSON(http.StatusInternalServerError, resp)
		}
		return
	}

	c.JSON(http.StatusOK, dto.ProcessResponse{
		Orders:   result.Batch,
		Sizes:    result.Sizes,
		Summary:  result.Summary,
		Warnings: result.Warnings,
	})
}

// Export handles GET /api/orders/export.
func (h *OrderHandler) Export(c *gin.Context) {
	data, err := h.facade.ExportExcel(CurrentOperatorID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoSession) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// JSON handles GET /api/orders/json.
func (h *OrderHandler) JSON(c *gin.Context) {
	text, err := h.facade.ExportJSON(CurrentOperatorID(c))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNoSession) {
			c.Status(http.StatusNotFound)
			return
		}
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="orders.json"`)
	c.Data(http.StatusOK, "application/json", []byte(text))
}

// Push handles POST /api/orders/push.
func (h *OrderHandler) Push(c *gin.Context) {
	url, err := h.facade.PushToSheet(c.Request.Context(), CurrentOperatorID(c), h.now())
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNoSession):
			c.Status(http.StatusNotFound)
		case errors.Is(err, domainErrors.ErrSpreadsheetAuth), errors.Is(err, domainErrors.ErrSpreadsheetWrite):
			c.JSON(http.StatusBadGateway, dto.ProcessErrorResponse{Error: err.Error()})
		default:
			c.Status(http.StatusInternalServerError)
		}
		return
	}

	c.JSON(http.StatusOK, dto.PushResponse{URL: url})
}
