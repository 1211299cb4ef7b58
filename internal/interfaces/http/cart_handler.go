package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
)

// CartHandler maneja las peticiones HTTP del carrito del consumidor.
// Las líneas se direccionan por índice dentro del carrito.
type CartHandler struct {
	uc *usecase.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *usecase.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// Get devuelve el carrito con su total.
func (h *CartHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega un producto al carrito.
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddToCartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Add(GetActor(c), in.ProductID, in.Quantity)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ChangeQuantity ajusta la cantidad de la línea :index con un delta.
func (h *CartHandler) ChangeQuantity(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	var in dto.ChangeQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ChangeQuantity(GetActor(c), index, in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem elimina la línea :index del carrito.
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	out, err := h.uc.Remove(GetActor(c), index)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Clear vacía el carrito.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.uc.Clear(GetActor(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
