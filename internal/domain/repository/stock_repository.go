package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// StockListFilter criterios de listado de existencias.
type StockListFilter struct {
	ProductID     string
	ProductSearch string // busca por nombre de producto
	Location      string
	LowStockOnly  bool // on_hand <= min_stock_level del producto
	Limit         int
	Offset        int
}

// StockRepository define el puerto de persistencia para StockRecord (DIP).
type StockRepository interface {
	Create(ctx context.Context, record *entity.StockRecord) error
	GetByID(ctx context.Context, id string) (*entity.StockRecord, error)
	Update(ctx context.Context, record *entity.StockRecord) error
	List(ctx context.Context, filter StockListFilter) ([]*entity.StockRecord, int, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockRecord, error)
	ListLowStock(ctx context.Context) ([]*entity.StockRecord, error)
	Delete(ctx context.Context, id string) error
	// AdjustOnHand aplica un delta atómico sobre quantity_on_hand y devuelve
	// la cantidad resultante. Un solo UPDATE condicional: un delta que
	// dejaría la cantidad por debajo de cero devuelve ErrConflict sin
	// modificar la fila.
	AdjustOnHand(ctx context.Context, id string, delta int) (int, error)
}
