package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultado de aplicar una línea de checkout sobre el stock vivo.
const (
	// OutcomeApplied: el producto existía y su stock fue decrementado.
	OutcomeApplied = "applied"
	// OutcomeOrphaned: el producto ya no existía; la venta se registra igual
	// (el libro es append-only y completo) pero no hubo stock que tocar.
	OutcomeOrphaned = "orphaned"
)

// Transaction es un registro inmutable del libro de ventas. Guarda copias de
// nombre y precio al momento de la venta: borrar el producto después no
// reescribe la historia.
type Transaction struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	BuyerID     string          `json:"buyer_id"`
	BuyerName   string          `json:"buyer_name"`
	ProducerID  string          `json:"producer_id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Outcome     string          `json:"outcome"` // applied, orphaned
	CreatedAt   time.Time       `json:"created_at"`
}

// Total devuelve precio × cantidad de la venta.
func (t Transaction) Total() decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(t.Quantity)))
}
