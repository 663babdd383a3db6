package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Name          string          `json:"name" validate:"required,min=1,max=255"`
	Description   string          `json:"description" validate:"omitempty,max=2000"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"category_id" validate:"omitempty,uuid"`
	Brand         string          `json:"brand" validate:"omitempty,max=100"`
	Unit          string          `json:"unit" validate:"omitempty,max=50"`
	MinStockLevel int             `json:"min_stock_level" validate:"omitempty,min=0"`
}

// UpdateProductRequest campos editables de un producto.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string          `json:"description" validate:"omitempty,max=2000"`
	Price         *decimal.Decimal `json:"price"`
	CategoryID    *string          `json:"category_id" validate:"omitempty,uuid"`
	Brand         *string          `json:"brand" validate:"omitempty,max=100"`
	Unit          *string          `json:"unit" validate:"omitempty,max=50"`
	MinStockLevel *int             `json:"min_stock_level" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	CategoryID    string          `json:"category_id,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	Unit          string          `json:"unit,omitempty"`
	MinStockLevel int             `json:"min_stock_level"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Page     PageResponse      `json:"page"`
}
