package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para publicar un producto.
type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Quantity    int             `json:"quantity" validate:"min=0"`
	Unit        string          `json:"unit" validate:"omitempty,max=20"`
}

// UpdateProductRequest entrada para editar un producto. Solo los campos
// presentes sobrescriben; los ausentes se conservan.
type UpdateProductRequest struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	Quantity    *int             `json:"quantity,omitempty"`
	Unit        *string          `json:"unit,omitempty"`
}

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID          string          `json:"id"`
	ProducerID  string          `json:"producer_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
