package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

// CategoryUseCase gestión de categorías de productos.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categories repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, log: log}
}

// Create registra una categoría nueva. El nombre es único.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	existing, err := uc.categories.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	category := &entity.Category{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

// Get obtiene una categoría por id.
func (uc *CategoryUseCase) Get(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	return categoryToResponse(category), nil
}

// List lista categorías paginadas.
func (uc *CategoryUseCase) List(ctx context.Context, page dto.PageRequest) (*dto.CategoryListResponse, error) {
	page.DefaultPage()
	categories, total, err := uc.categories.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CategoryListResponse{
		Categories: make([]dto.CategoryResponse, 0, len(categories)),
		Page:       dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, *categoryToResponse(c))
	}
	return out, nil
}

// Update aplica cambios parciales sobre una categoría.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil && *in.Name != category.Name {
		other, err := uc.categories.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		category.Name = *in.Name
	}
	if in.Description != nil {
		category.Description = *in.Description
	}
	category.UpdatedAt = time.Now()
	if err := uc.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return categoryToResponse(category), nil
}

// Delete elimina una categoría. Se rechaza con conflicto mientras existan
// productos que la referencien.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	count, err := uc.categories.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrConflict
	}
	return uc.categories.Delete(ctx, id)
}

// SetActive activa o desactiva una categoría (idempotente).
func (uc *CategoryUseCase) SetActive(ctx context.Context, id string, active bool) error {
	category, err := uc.categories.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return domain.ErrNotFound
	}
	return uc.categories.SetActive(ctx, id, active)
}

func categoryToResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
