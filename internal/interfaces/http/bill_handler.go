package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Iamyashjain/handy-sales-manager/internal/application/dto"
	"github.com/Iamyashjain/handy-sales-manager/internal/application/usecase"
)

// BillHandler handles ad-hoc bill previews (protected).
type BillHandler struct {
	uc *usecase.BillUseCase
}

// NewBillHandler builds the handler.
func NewBillHandler(uc *usecase.BillUseCase) *BillHandler {
	return &BillHandler{uc: uc}
}

// Preview POST /api/bills/preview
func (h *BillHandler) Preview(c *fiber.Ctx) error {
	var in dto.BillRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	bill, err := h.uc.Preview(in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(bill)
}
