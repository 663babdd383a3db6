package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Operaciones de ajuste de existencias.
const (
	AdjustOpAdd    = "add"
	AdjustOpRemove = "remove"
	AdjustOpSet    = "set"
)

// CreateStockRequest entrada para crear un registro de existencias.
// Las tres cantidades se aceptan por separado: available no se deriva.
type CreateStockRequest struct {
	ProductID         string           `json:"product_id" validate:"required,uuid"`
	VendorID          string           `json:"vendor_id" validate:"omitempty,uuid"`
	QuantityOnHand    int              `json:"quantity_on_hand" validate:"omitempty,min=0"`
	QuantityReserved  int              `json:"quantity_reserved" validate:"omitempty,min=0"`
	QuantityAvailable int              `json:"quantity_available" validate:"omitempty,min=0"`
	Location          string           `json:"location" validate:"omitempty,max=100"`
	Warehouse         string           `json:"warehouse" validate:"omitempty,max=100"`
	Shelf             string           `json:"shelf" validate:"omitempty,max=50"`
	BatchNumber       string           `json:"batch_number" validate:"omitempty,max=100"`
	ExpiryDate        *time.Time       `json:"expiry_date"`
	CostPerUnit       *decimal.Decimal `json:"cost_per_unit"`
	Notes             string           `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateStockRequest campos editables de un registro de existencias.
type UpdateStockRequest struct {
	VendorID          *string          `json:"vendor_id" validate:"omitempty,uuid"`
	QuantityOnHand    *int             `json:"quantity_on_hand" validate:"omitempty,min=0"`
	QuantityReserved  *int             `json:"quantity_reserved" validate:"omitempty,min=0"`
	QuantityAvailable *int             `json:"quantity_available" validate:"omitempty,min=0"`
	Location          *string          `json:"location" validate:"omitempty,max=100"`
	Warehouse         *string          `json:"warehouse" validate:"omitempty,max=100"`
	Shelf             *string          `json:"shelf" validate:"omitempty,max=50"`
	BatchNumber       *string          `json:"batch_number" validate:"omitempty,max=100"`
	ExpiryDate        *time.Time       `json:"expiry_date"`
	CostPerUnit       *decimal.Decimal `json:"cost_per_unit"`
	Notes             *string          `json:"notes" validate:"omitempty,max=2000"`
}

// AdjustStockRequest ajuste de quantity_on_hand (add, remove o set).
type AdjustStockRequest struct {
	Operation string `json:"operation" validate:"required,oneof=add remove set"`
	Quantity  int    `json:"quantity" validate:"required,min=0"`
	Reason    string `json:"reason" validate:"omitempty,max=500"`
}

// StockResponse salida de un registro de existencias.
type StockResponse struct {
	ID                string           `json:"id"`
	ProductID         string           `json:"product_id"`
	VendorID          string           `json:"vendor_id,omitempty"`
	QuantityOnHand    int              `json:"quantity_on_hand"`
	QuantityReserved  int              `json:"quantity_reserved"`
	QuantityAvailable int              `json:"quantity_available"`
	Location          string           `json:"location,omitempty"`
	Warehouse         string           `json:"warehouse,omitempty"`
	Shelf             string           `json:"shelf,omitempty"`
	BatchNumber       string           `json:"batch_number,omitempty"`
	ExpiryDate        *time.Time       `json:"expiry_date,omitempty"`
	CostPerUnit       *decimal.Decimal `json:"cost_per_unit,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	LastCounted       *time.Time       `json:"last_counted,omitempty"`
	IsActive          bool             `json:"is_active"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// StockListResponse listado paginado de existencias.
type StockListResponse struct {
	Inventory []StockResponse `json:"inventory"`
	Page      PageResponse    `json:"page"`
}
