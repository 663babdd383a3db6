package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockRecord representa la existencia de un producto en una ubicación.
//
// QuantityOnHand, QuantityReserved y QuantityAvailable son campos independientes:
// available NO se deriva de on_hand - reserved. El contrato heredado los trata
// como asignables por separado; los tests marcan esta semántica explícitamente.
type StockRecord struct {
	ID                string
	ProductID         string
	VendorID          string // vacío = sin proveedor asociado
	QuantityOnHand    int
	QuantityReserved  int
	QuantityAvailable int
	Location          string
	Warehouse         string
	Shelf             string
	BatchNumber       string
	ExpiryDate        *time.Time
	CostPerUnit       *decimal.Decimal
	Notes             string
	LastCounted       *time.Time
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
