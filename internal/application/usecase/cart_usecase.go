package usecase

import (
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito por comprador. Todas las operaciones
// reciben el actor de forma explícita (nada de estado ambiente): sin sesión
// devuelven ErrNoSession y con sesión de productor ErrRoleNotAllowed: un
// productor no tiene carrito.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

func requireConsumer(actor *entity.User) error {
	if actor == nil {
		return domain.ErrNoSession
	}
	if !actor.IsConsumer() {
		return domain.ErrRoleNotAllowed
	}
	return nil
}

// Get devuelve el carrito del actor con su total.
func (uc *CartUseCase) Get(actor *entity.User) (*dto.CartResponse, error) {
	if err := requireConsumer(actor); err != nil {
		return nil, err
	}
	lines, err := uc.carts.Get(actor.ID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// Add agrega un producto al carrito tomando una copia de nombre, precio y
// productor al momento de agregar: cambios posteriores al producto no alteran
// la línea. Si ya hay línea para el producto las cantidades se suman.
// Devuelve ErrNotFound si el producto no existe y ErrInvalidInput si la
// cantidad no es positiva.
func (uc *CartUseCase) Add(actor *entity.User, productID string, quantity int) (*dto.CartResponse, error) {
	if err := requireConsumer(actor); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.carts.Get(actor.ID)
	if err != nil {
		return nil, err
	}
	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, entity.CartLine{
			ProductID:  product.ID,
			Name:       product.Name,
			Price:      product.Price,
			ProducerID: product.ProducerID,
			Quantity:   quantity,
		})
	}
	if err := uc.carts.Save(actor.ID, lines); err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// ChangeQuantity suma delta a la cantidad de la línea en el índice dado. Si
// el resultado baja de 1 la línea se elimina por completo, no se deja en
// cero. Devuelve ErrNotFound si el índice no existe.
func (uc *CartUseCase) ChangeQuantity(actor *entity.User, index, delta int) (*dto.CartResponse, error) {
	if err := requireConsumer(actor); err != nil {
		return nil, err
	}
	lines, err := uc.carts.Get(actor.ID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrNotFound
	}
	lines[index].Quantity += delta
	if lines[index].Quantity < 1 {
		lines = append(lines[:index], lines[index+1:]...)
	}
	if err := uc.carts.Save(actor.ID, lines); err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// Remove elimina la línea en el índice dado.
func (uc *CartUseCase) Remove(actor *entity.User, index int) (*dto.CartResponse, error) {
	if err := requireConsumer(actor); err != nil {
		return nil, err
	}
	lines, err := uc.carts.Get(actor.ID)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrNotFound
	}
	lines = append(lines[:index], lines[index+1:]...)
	if err := uc.carts.Save(actor.ID, lines); err != nil {
		return nil, err
	}
	return toCartResponse(lines), nil
}

// Clear vacía el carrito del actor.
func (uc *CartUseCase) Clear(actor *entity.User) error {
	if err := requireConsumer(actor); err != nil {
		return err
	}
	return uc.carts.Clear(actor.ID)
}

func toCartResponse(lines []entity.CartLine) *dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, dto.CartLineResponse{
			ProductID:  l.ProductID,
			Name:       l.Name,
			Price:      l.Price,
			ProducerID: l.ProducerID,
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal(),
		})
	}
	return &dto.CartResponse{
		Items: items,
		Total: entity.CartTotal(lines),
	}
}
