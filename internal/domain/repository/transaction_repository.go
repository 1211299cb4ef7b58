package repository

import "github.com/jhoicas/agromercado-api/internal/domain/entity"

// TransactionRepository define el puerto del libro de ventas. Es append-only:
// no existe Update ni Delete, la historia no se reescribe.
type TransactionRepository interface {
	Append(txs ...*entity.Transaction) error
	List() ([]*entity.Transaction, error)
	ListByBuyer(buyerID string) ([]*entity.Transaction, error)
	ListByProducer(producerID string) ([]*entity.Transaction, error)
}
