package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

// DefaultUnit unidad por defecto cuando el productor no indica una.
const DefaultUnit = "kg"

// CatalogUseCase casos de uso del catálogo: publicación, edición, borrado y
// búsqueda de productos. Las mutaciones exigen un actor productor y solo
// sobre sus propios productos.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List devuelve el catálogo en orden de inserción. Con término de búsqueda
// filtra por substring case-insensitive contra nombre O descripción; vacío
// devuelve todo.
func (uc *CatalogUseCase) List(search string) ([]dto.ProductResponse, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// ListByOwner devuelve los productos de un productor.
func (uc *CatalogUseCase) ListByOwner(producerID string) ([]dto.ProductResponse, error) {
	products, err := uc.products.ListByProducer(producerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

// GetByID obtiene un producto por ID, nil si no existe.
func (uc *CatalogUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Create publica un producto a nombre del actor. Exige sesión de productor,
// nombre no vacío, precio > 0 y cantidad >= 0. La propiedad queda fija.
func (uc *CatalogUseCase) Create(actor *entity.User, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if actor == nil {
		return nil, domain.ErrNoSession
	}
	if !actor.IsProducer() {
		return nil, domain.ErrRoleNotAllowed
	}
	if strings.TrimSpace(in.Name) == "" || !in.Price.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	unit := strings.TrimSpace(in.Unit)
	if unit == "" {
		unit = DefaultUnit
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		ProducerID:  actor.ID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Unit:        unit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update edita un producto del actor. Los campos presentes sobrescriben, los
// ausentes se conservan. Devuelve ErrNotFound si el producto no existe y
// ErrForbidden si el actor no es el dueño.
func (uc *CatalogUseCase) Update(actor *entity.User, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if actor == nil {
		return nil, domain.ErrNoSession
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.ProducerID != actor.ID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.Quantity = *in.Quantity
	}
	if in.Unit != nil && strings.TrimSpace(*in.Unit) != "" {
		product.Unit = *in.Unit
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del actor. Borrar un ID inexistente es un no-op.
// No toca carritos ni transacciones existentes: conservan su copia del
// nombre y precio, la historia es inmutable aunque el producto desaparezca.
func (uc *CatalogUseCase) Delete(actor *entity.User, id string) error {
	if actor == nil {
		return domain.ErrNoSession
	}
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return nil
	}
	if product.ProducerID != actor.ID {
		return domain.ErrForbidden
	}
	return uc.products.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		ProducerID:  p.ProducerID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Unit:        p.Unit,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
