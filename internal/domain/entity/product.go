package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto publicado por un productor.
// Quantity es el stock restante; lo decrementa el checkout y nunca baja de 0.
// La propiedad (ProducerID) se fija al crear y no es transferible.
type Product struct {
	ID          string          `json:"id"`
	ProducerID  string          `json:"producer_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"` // precio unitario, siempre > 0
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"` // kg, litro, docena...
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
