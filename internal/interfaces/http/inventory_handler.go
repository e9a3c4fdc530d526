package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/usecase"
)

// InventoryHandler handles stock HTTP requests (protected).
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler builds the handler.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List GET /api/inventory?search=&category=
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Query("search"), c.Query("category"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Summary GET /api/inventory/summary
func (h *InventoryHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// Adjust POST /api/inventory/:id/adjust
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	item, err := h.uc.Adjust(c.Params("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(item)
}
