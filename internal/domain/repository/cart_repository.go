package repository

import "github.com/jhoicas/agromercado-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para el carrito por
// comprador. La clave es compuesta (colección, buyerID); no se derivan
// claves del email.
type CartRepository interface {
	Get(buyerID string) ([]entity.CartLine, error)
	Save(buyerID string, lines []entity.CartLine) error
	Clear(buyerID string) error
}
