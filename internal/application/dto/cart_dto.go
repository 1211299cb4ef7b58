package dto

import "github.com/shopspring/decimal"

// AddToCartRequest entrada para agregar un producto al carrito.
type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// ChangeQuantityRequest entrada para ajustar la cantidad de una línea.
// Delta puede ser negativo; si el resultado baja de 1 la línea se elimina.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartLineResponse salida de una línea del carrito.
type CartLineResponse struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	ProducerID string          `json:"producer_id"`
	Quantity   int             `json:"quantity"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// CartResponse salida del carrito completo.
type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}
