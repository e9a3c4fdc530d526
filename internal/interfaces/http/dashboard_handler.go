package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/analytics"
)

// DashboardHandler handles the metrics endpoint (protected).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler builds the handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Metrics GET /api/dashboard
func (h *DashboardHandler) Metrics(c *fiber.Ctx) error {
	metrics, err := h.uc.Metrics()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(metrics)
}
