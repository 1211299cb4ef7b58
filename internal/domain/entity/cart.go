package entity

import "github.com/shopspring/decimal"

// CartLine es una línea del carrito de un consumidor. Name, Price y
// ProducerID son una copia tomada al momento de agregar: cambios posteriores
// al producto no alteran lo que el comprador vio.
type CartLine struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ProducerID string          `json:"producer_id"`
	Quantity   int             `json:"quantity"` // siempre >= 1; la línea se elimina si baja de 1
}

// Subtotal devuelve precio × cantidad de la línea.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartTotal suma los subtotales de todas las líneas.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
