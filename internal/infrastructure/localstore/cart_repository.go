package localstore

import (
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre el almacén local.
// Cada carrito vive bajo la clave compuesta (carts, buyerID).
type CartRepo struct {
	store *Store
}

// NewCartRepository construye el adaptador de persistencia para carritos.
func NewCartRepository(store *Store) *CartRepo {
	return &CartRepo{store: store}
}

// Get devuelve las líneas del carrito del comprador (vacío si no tiene).
func (r *CartRepo) Get(buyerID string) ([]entity.CartLine, error) {
	var lines []entity.CartLine
	if err := r.store.LoadOwned(CollectionCarts, buyerID, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// Save reemplaza el carrito completo del comprador.
func (r *CartRepo) Save(buyerID string, lines []entity.CartLine) error {
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return r.store.SaveOwned(CollectionCarts, buyerID, lines)
}

// Clear vacía el carrito del comprador.
func (r *CartRepo) Clear(buyerID string) error {
	return r.store.DeleteOwned(CollectionCarts, buyerID)
}
