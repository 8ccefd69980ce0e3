package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"store-service/app/domain"
	"store-service/app/port"
)

// StoreHandler handles store-related HTTP requests
type StoreHandler struct {
	handleValidator port.HandleValidator
	logger          *slog.Logger
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(handleValidator port.HandleValidator, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{
		handleValidator: handleValidator,
		logger:          logger,
	}
}

// CheckAvailability reports whether a handle can be claimed. The answer
// is advisory; a racing signup can still take the handle before the
// caller submits.
// @Summary Check handle availability
// @Description Check whether a store handle is syntactically valid and not yet claimed
// @Tags stores
// @Accept json
// @Produce json
// @Param handle query string true "Candidate handle, including the @ prefix"
// @Success 200 {object} AvailabilityResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/stores/availability [get]
func (h *StoreHandler) CheckAvailability(c echo.Context) error {
	ctx := c.Request().Context()

	raw := c.QueryParam("handle")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "handle query parameter is required",
		})
	}

	handle := domain.StoreHandle(raw)

	available, err := h.handleValidator.Validate(ctx, handle)
	if err != nil {
		// Fail closed: a registry failure reports the handle as taken
		// rather than risking a duplicate claim
		h.logger.Warn("handle availability check failed",
			"handle", handle.Normalized(),
			"error", err)
		return c.JSON(http.StatusOK, AvailabilityResponse{
			Handle:    string(handle.Normalized()),
			Available: false,
		})
	}

	return c.JSON(http.StatusOK, AvailabilityResponse{
		Handle:    string(handle.Normalized()),
		Available: available,
	})
}

// Response types

type AvailabilityResponse struct {
	Handle    string `json:"handle"`
	Available bool   `json:"available"`
}
