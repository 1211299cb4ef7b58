package localstore

import (
	"github.com/jhoicas/agromercado-api/internal/domain/entity"
	"github.com/jhoicas/agromercado-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del puerto TransactionRepository sobre el
// almacén local. Solo agrega y lee: el libro de ventas es append-only.
type TransactionRepo struct {
	store *Store
}

// NewTransactionRepository construye el adaptador de persistencia para el libro de ventas.
func NewTransactionRepository(store *Store) *TransactionRepo {
	return &TransactionRepo{store: store}
}

func (r *TransactionRepo) load() ([]*entity.Transaction, error) {
	var txs []*entity.Transaction
	if err := r.store.Load(CollectionTransactions, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// Append agrega transacciones al final del libro.
func (r *TransactionRepo) Append(txs ...*entity.Transaction) error {
	if len(txs) == 0 {
		return nil
	}
	all, err := r.load()
	if err != nil {
		return err
	}
	all = append(all, txs...)
	return r.store.Save(CollectionTransactions, all)
}

// List devuelve el libro completo en orden cronológico de registro.
func (r *TransactionRepo) List() ([]*entity.Transaction, error) {
	return r.load()
}

// ListByBuyer devuelve las compras de un consumidor.
func (r *TransactionRepo) ListByBuyer(buyerID string) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool { return t.BuyerID == buyerID })
}

// ListByProducer devuelve las ventas de un productor.
func (r *TransactionRepo) ListByProducer(producerID string) ([]*entity.Transaction, error) {
	return r.filter(func(t *entity.Transaction) bool { return t.ProducerID == producerID })
}

func (r *TransactionRepo) filter(keep func(*entity.Transaction) bool) ([]*entity.Transaction, error) {
	all, err := r.load()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Transaction, 0, len(all))
	for _, t := range all {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}
