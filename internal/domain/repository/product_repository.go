package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// ProductListFilter criterios de listado de productos.
type ProductListFilter struct {
	Search     string // busca en name y sku
	CategoryID string
	IsActive   *bool
	Limit      int
	Offset     int
}

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, filter ProductListFilter) ([]*entity.Product, int, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
}
