package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto o SKU del inventario.
type Product struct {
	ID            string
	SKU           string // único
	Name          string
	Description   string
	Price         decimal.Decimal
	CategoryID    string // vacío = sin categoría
	Brand         string
	Unit          string // kg, litro, pieza, etc.
	MinStockLevel int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
