package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/averros/digiwallet/internal/pkg/httputil"
	"github.com/averros/digiwallet/internal/pkg/logger"
	"github.com/averros/digiwallet/services/fraud"
)

const defaultFlaggedLimit = 100

// FraudHandler handles administrative HTTP requests for the fraud subsystem
type FraudHandler struct {
	fraudUC fraud.FraudUC
}

// NewFraudHandler creates a new fraud handler
func NewFraudHandler(fraudUC fraud.FraudUC) *FraudHandler {
	return &FraudHandler{
		fraudUC: fraudUC,
	}
}

// Rescan triggers the batch scan over the trailing 24 hours of records and
// returns the scan summary
func (h *FraudHandler) Rescan(c echo.Context) error {
	summary, err := h.fraudUC.Rescan(c.Request().Context())
	if err != nil {
		logger.Error("fraud rescan failed", logger.Err(err))
		return httputil.InternalServerErrorResponse(c, "Rescan failed")
	}

	return httputil.SuccessResponse(c, http.StatusOK, "Fraud rescan completed", summary)
}

// ListFlagged returns flagged transactions for review, newest first
func (h *FraudHandler) ListFlagged(c echo.Context) error {
	limit := defaultFlaggedLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return httputil.BadRequestResponse(c, "Invalid limit")
		}
		limit = parsed
	}

	records, err := h.fraudUC.ListFlagged(c.Request().Context(), limit)
	if err != nil {
		logger.Error("failed to list flagged transactions", logger.Err(err))
		return httputil.InternalServerErrorResponse(c, "Failed to list flagged transactions")
	}

	return httputil.SuccessResponse(c, http.StatusOK, "Flagged transactions fetched successfully", records)
}
