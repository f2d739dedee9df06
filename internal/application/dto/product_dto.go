package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest body para POST /api/products. La cantidad inicial entra
// por aquí solo al crear; después únicamente la mueve el motor de ajustes.
type CreateProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	ReorderLevel  int64           `json:"reorder_level"`
	CriticalLevel int64           `json:"critical_level"`
	CategoryID    int64           `json:"category_id"`
	BrandID       int64           `json:"brand_id"`
}

// UpdateProductRequest body para PUT /api/products/:id. Campos nil no se tocan.
// No permite modificar Quantity (se maneja vía movimientos).
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	ReorderLevel  *int64           `json:"reorder_level,omitempty"`
	CriticalLevel *int64           `json:"critical_level,omitempty"`
	CategoryID    *int64           `json:"category_id,omitempty"`
	BrandID       *int64           `json:"brand_id,omitempty"`
}

// ProductResponse representación de un producto en la API.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int64           `json:"quantity"`
	ReorderLevel  int64           `json:"reorder_level"`
	CriticalLevel int64           `json:"critical_level"`
	CategoryID    int64           `json:"category_id"`
	BrandID       int64           `json:"brand_id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
