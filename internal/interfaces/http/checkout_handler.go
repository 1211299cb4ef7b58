package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
)

// CheckoutHandler maneja la conversión del carrito en ventas.
type CheckoutHandler struct {
	uc *usecase.CheckoutUseCase
}

// NewCheckoutHandler construye el handler.
func NewCheckoutHandler(uc *usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// Checkout procesa el carrito completo y devuelve las ventas creadas.
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	out, err := h.uc.Checkout(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
