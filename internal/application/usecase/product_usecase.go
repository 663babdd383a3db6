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

// ProductUseCase gestión del catálogo de productos.
type ProductUseCase struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(products repository.ProductRepository, categories repository.CategoryRepository, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{products: products, categories: categories, log: log}
}

// Create registra un producto nuevo. El SKU es único y la categoría, si se
// indica, debe existir.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	existing, err := uc.products.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.CategoryID != "" {
		category, err := uc.categories.GetByID(ctx, in.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.NewString(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		CategoryID:    in.CategoryID,
		Brand:         in.Brand,
		Unit:          in.Unit,
		MinStockLevel: in.MinStockLevel,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	return productToResponse(product), nil
}

// Get obtiene un producto por id.
func (uc *ProductUseCase) Get(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return productToResponse(product), nil
}

// GetBySKU obtiene un producto por SKU.
func (uc *ProductUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return productToResponse(product), nil
}

// List lista productos con filtros opcionales.
func (uc *ProductUseCase) List(ctx context.Context, filter repository.ProductListFilter, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	products, total, err := uc.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.ProductListResponse{
		Products: make([]dto.ProductResponse, 0, len(products)),
		Page:     dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, p := range products {
		out.Products = append(out.Products, *productToResponse(p))
	}
	return out, nil
}

// Update aplica cambios parciales sobre un producto. El SKU no es editable.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.CategoryID != nil {
		if *in.CategoryID != "" {
			category, err := uc.categories.GetByID(ctx, *in.CategoryID)
			if err != nil {
				return nil, err
			}
			if category == nil {
				return nil, domain.ErrInvalidInput
			}
		}
		product.CategoryID = *in.CategoryID
	}
	if in.Brand != nil {
		product.Brand = *in.Brand
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStockLevel != nil {
		product.MinStockLevel = *in.MinStockLevel
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return productToResponse(product), nil
}

// Delete elimina un producto y sus existencias asociadas (cascada).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, id)
}

// SetActive activa o desactiva un producto (idempotente).
func (uc *ProductUseCase) SetActive(ctx context.Context, id string, active bool) error {
	product, err := uc.products.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.SetActive(ctx, id, active)
}

func productToResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		CategoryID:    p.CategoryID,
		Brand:         p.Brand,
		Unit:          p.Unit,
		MinStockLevel: p.MinStockLevel,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
