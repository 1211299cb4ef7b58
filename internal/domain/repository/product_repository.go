package repository

import "github.com/jhoicas/agromercado-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateAll reemplaza la colección completa preservando el orden; lo usa
	// el checkout para persistir todos los decrementos de stock de una vez.
	UpdateAll(products []*entity.Product) error
	// List devuelve los productos en orden de inserción.
	List() ([]*entity.Product, error)
	ListByProducer(producerID string) ([]*entity.Product, error)
	// Delete es idempotente: borrar un ID inexistente no es error.
	Delete(id string) error
}
