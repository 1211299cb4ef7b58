package usecase

import (
	"github.com/jhoicas/agromercado-api/internal/application/dto"
	"github.com/jhoicas/agromercado-api/internal/domain"
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

// LedgerUseCase consultas sobre el libro de ventas: historial por rol y
// estadísticas del tablero del productor.
type LedgerUseCase struct {
	transactions repository.TransactionRepository
	products     repository.ProductRepository
}

// NewLedgerUseCase construye el caso de uso.
func NewLedgerUseCase(transactions repository.TransactionRepository, products repository.ProductRepository) *LedgerUseCase {
	return &LedgerUseCase{transactions: transactions, products: products}
}

// ListForActor devuelve las transacciones del actor: sus ventas si es
// productor, sus compras si es consumidor.
func (uc *LedgerUseCase) ListForActor(actor *entity.User) ([]dto.TransactionResponse, error) {
	if actor == nil {
		return nil, domain.ErrNoSession
	}
	var (
		txs []*entity.Transaction
		err error
	)
	if actor.IsProducer() {
		txs, err = uc.transactions.ListByProducer(actor.ID)
	} else {
		txs, err = uc.transactions.ListByBuyer(actor.ID)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txs))
	for _, t := range txs {
		out = append(out, *toTransactionResponse(t))
	}
	return out, nil
}

// ProducerStats calcula los números del tablero del productor: productos
// publicados, ventas registradas e ingreso total (Σ precio × cantidad).
func (uc *LedgerUseCase) ProducerStats(actor *entity.User) (*dto.ProducerStatsResponse, error) {
	if actor == nil {
		return nil, domain.ErrNoSession
	}
	if !actor.IsProducer() {
		return nil, domain.ErrRoleNotAllowed
	}
	txs, err := uc.transactions.ListByProducer(actor.ID)
	if err != nil {
		return nil, err
	}
	products, err := uc.products.ListByProducer(actor.ID)
	if err != nil {
		return nil, err
	}
	stats := &dto.ProducerStatsResponse{
		Products:     len(products),
		Transactions: len(txs),
	}
	for _, t := range txs {
		stats.Revenue = stats.Revenue.Add(t.Total())
	}
	return stats, nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	if t == nil {
		return nil
	}
	return &dto.TransactionResponse{
		ID:          t.ID,
		ProductID:   t.ProductID,
		ProductName: t.ProductName,
		BuyerID:     t.BuyerID,
		BuyerName:   t.BuyerName,
		ProducerID:  t.ProducerID,
		Price:       t.Price,
		Quantity:    t.Quantity,
		Outcome:     t.Outcome,
		CreatedAt:   t.CreatedAt,
	}
}
