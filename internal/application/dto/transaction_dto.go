package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionResponse salida de una venta registrada en el libro.
type TransactionResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	BuyerID     string          `json:"buyer_id"`
	BuyerName   string          `json:"buyer_name"`
	ProducerID  string          `json:"producer_id"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Outcome     string          `json:"outcome"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ProducerStatsResponse salida del tablero del productor.
type ProducerStatsResponse struct {
	Products     int             `json:"products"`
	Transactions int             `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
}
