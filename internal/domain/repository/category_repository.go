package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, int, error)
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	// CountProducts cuenta los productos que referencian la categoría
	// (el borrado se rechaza mientras sea > 0).
	CountProducts(ctx context.Context, categoryID string) (int, error)
}
