package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

// CheckoutUseCase convierte el carrito del actor en decrementos de stock más
// registros inmutables en el libro de ventas. Es la única operación
// multi-colección del sistema: todo el trabajo se prepara en memoria y se
// persiste al final, de modo que el llamador nunca observa un estado a
// medias; las únicas fallas previas a tocar estado son falta de sesión,
// rol equivocado y carrito vacío.
type CheckoutUseCase struct {
	carts        repository.CartRepository
	products     repository.ProductRepository
	transactions repository.TransactionRepository
}

// NewCheckoutUseCase construye el caso de uso.
func NewCheckoutUseCase(
	carts repository.CartRepository,
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{carts: carts, products: products, transactions: transactions}
}

// Checkout procesa las líneas en orden de carrito. Por cada línea busca el
// producto vivo: si existe, decrementa su stock sin bajar de 0 (una compra
// mayor al disponible deja el stock en 0, no falla); si ya no existe, la
// venta se registra igual con Outcome=orphaned: el libro prefiere historia
// completa sobre integridad referencial estricta. Al final persiste los
// productos, agrega las transacciones y vacía el carrito.
func (uc *CheckoutUseCase) Checkout(actor *entity.User) ([]dto.TransactionResponse, error) {
	if err := requireConsumer(actor); err != nil {
		return nil, err
	}
	lines, err := uc.carts.Get(actor.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := time.Now()
	txs := make([]*entity.Transaction, 0, len(lines))
	for _, line := range lines {
		outcome := entity.OutcomeOrphaned
		if p, ok := byID[line.ProductID]; ok {
			p.Quantity -= line.Quantity
			if p.Quantity < 0 {
				p.Quantity = 0
			}
			p.UpdatedAt = now
			outcome = entity.OutcomeApplied
		}
		txs = append(txs, &entity.Transaction{
			ID:          uuid.New().String(),
			ProductID:   line.ProductID,
			ProductName: line.Name,
			BuyerID:     actor.ID,
			BuyerName:   actor.Name,
			ProducerID:  line.ProducerID,
			Price:       line.Price,
			Quantity:    line.Quantity,
			Outcome:     outcome,
			CreatedAt:   now,
		})
	}

	if err := uc.products.UpdateAll(products); err != nil {
		return nil, err
	}
	if err := uc.transactions.Append(txs...); err != nil {
		return nil, err
	}
	if err := uc.carts.Clear(actor.ID); err != nil {
		return nil, err
	}

	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, *toTransactionResponse(t))
	}
	return out, nil
}
