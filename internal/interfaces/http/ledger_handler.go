package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/agromercado-api/internal/application/usecase"
)

// LedgerHandler maneja las consultas del libro de ventas y el tablero.
type LedgerHandler struct {
	uc *usecase.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List devuelve el historial del actor: ventas si es productor, compras si
// es consumidor.
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListForActor(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stats devuelve los números del tablero del productor.
func (h *LedgerHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.ProducerStats(GetActor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
