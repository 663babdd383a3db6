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

// InventoryUseCase gestión de existencias por producto y ubicación.
type InventoryUseCase struct {
	stock    repository.StockRepository
	products repository.ProductRepository
	vendors  repository.VendorRepository
	log      *logger.Logger
}

// NewInventoryUseCase construye el caso de uso de existencias.
func NewInventoryUseCase(stock repository.StockRepository, products repository.ProductRepository, vendors repository.VendorRepository, log *logger.Logger) *InventoryUseCase {
	return &InventoryUseCase{stock: stock, products: products, vendors: vendors, log: log}
}

// Create registra existencias de un producto. Las tres cantidades se toman
// tal cual del request: available no se deriva de on_hand - reserved.
func (uc *InventoryUseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	product, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.VendorID != "" {
		vendor, err := uc.vendors.GetByID(ctx, in.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	record := &entity.StockRecord{
		ID:                uuid.NewString(),
		ProductID:         in.ProductID,
		VendorID:          in.VendorID,
		QuantityOnHand:    in.QuantityOnHand,
		QuantityReserved:  in.QuantityReserved,
		QuantityAvailable: in.QuantityAvailable,
		Location:          in.Location,
		Warehouse:         in.Warehouse,
		Shelf:             in.Shelf,
		BatchNumber:       in.BatchNumber,
		ExpiryDate:        in.ExpiryDate,
		CostPerUnit:       in.CostPerUnit,
		Notes:             in.Notes,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.stock.Create(ctx, record); err != nil {
		return nil, err
	}
	uc.log.Info().Str("stock_id", record.ID).Str("product_id", record.ProductID).Msg("existencias creadas")
	return stockToResponse(record), nil
}

// Get obtiene un registro de existencias por id.
func (uc *InventoryUseCase) Get(ctx context.Context, id string) (*dto.StockResponse, error) {
	record, err := uc.stock.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	return stockToResponse(record), nil
}

// List lista existencias con filtros opcionales.
func (uc *InventoryUseCase) List(ctx context.Context, filter repository.StockListFilter, page dto.PageRequest) (*dto.StockListResponse, error) {
	page.DefaultPage()
	filter.Limit = page.Limit
	filter.Offset = page.Offset
	records, total, err := uc.stock.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.StockListResponse{
		Inventory: make([]dto.StockResponse, 0, len(records)),
		Page:      dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}
	for _, r := range records {
		out.Inventory = append(out.Inventory, *stockToResponse(r))
	}
	return out, nil
}

// ListByProduct lista todas las existencias de un producto.
func (uc *InventoryUseCase) ListByProduct(ctx context.Context, productID string) ([]dto.StockResponse, error) {
	product, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	records, err := uc.stock.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *stockToResponse(r))
	}
	return out, nil
}

// ListLowStock lista existencias con on_hand por debajo del mínimo del producto.
func (uc *InventoryUseCase) ListLowStock(ctx context.Context) ([]dto.StockResponse, error) {
	records, err := uc.stock.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockResponse, 0, len(records))
	for _, r := range records {
		out = append(out, *stockToResponse(r))
	}
	return out, nil
}

// Update aplica cambios parciales. Cada cantidad se actualiza por separado.
func (uc *InventoryUseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	record, err := uc.stock.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	if in.VendorID != nil {
		if *in.VendorID != "" {
			vendor, err := uc.vendors.GetByID(ctx, *in.VendorID)
			if err != nil {
				return nil, err
			}
			if vendor == nil {
				return nil, domain.ErrInvalidInput
			}
		}
		record.VendorID = *in.VendorID
	}
	if in.QuantityOnHand != nil {
		record.QuantityOnHand = *in.QuantityOnHand
	}
	if in.QuantityReserved != nil {
		record.QuantityReserved = *in.QuantityReserved
	}
	if in.QuantityAvailable != nil {
		record.QuantityAvailable = *in.QuantityAvailable
	}
	if in.Location != nil {
		record.Location = *in.Location
	}
	if in.Warehouse != nil {
		record.Warehouse = *in.Warehouse
	}
	if in.Shelf != nil {
		record.Shelf = *in.Shelf
	}
	if in.BatchNumber != nil {
		record.BatchNumber = *in.BatchNumber
	}
	if in.ExpiryDate != nil {
		record.ExpiryDate = in.ExpiryDate
	}
	if in.CostPerUnit != nil {
		record.CostPerUnit = in.CostPerUnit
	}
	if in.Notes != nil {
		record.Notes = *in.Notes
	}
	record.UpdatedAt = time.Now()
	if err := uc.stock.Update(ctx, record); err != nil {
		return nil, err
	}
	return stockToResponse(record), nil
}

// Adjust ajusta quantity_on_hand con las operaciones add, remove o set.
// add y remove se resuelven con un solo UPDATE atómico (delta); remove nunca
// deja la cantidad por debajo de cero.
func (uc *InventoryUseCase) Adjust(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.StockResponse, error) {
	record, err := uc.stock.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, domain.ErrNotFound
	}
	switch in.Operation {
	case dto.AdjustOpAdd:
		if _, err := uc.stock.AdjustOnHand(ctx, id, in.Quantity); err != nil {
			return nil, err
		}
	case dto.AdjustOpRemove:
		// El piso lo impone el propio UPDATE condicional del repositorio:
		// un retiro que dejaría la cantidad en negativo devuelve ErrConflict.
		if _, err := uc.stock.AdjustOnHand(ctx, id, -in.Quantity); err != nil {
			return nil, err
		}
	case dto.AdjustOpSet:
		record.QuantityOnHand = in.Quantity
		record.UpdatedAt = time.Now()
		if err := uc.stock.Update(ctx, record); err != nil {
			return nil, err
		}
	default:
		return nil, domain.ErrInvalidInput
	}
	uc.log.Info().
		Str("stock_id", id).
		Str("operation", in.Operation).
		Int("quantity", in.Quantity).
		Str("reason", in.Reason).
		Msg("ajuste de existencias")
	updated, err := uc.stock.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return stockToResponse(updated), nil
}

// Delete elimina un registro de existencias.
func (uc *InventoryUseCase) Delete(ctx context.Context, id string) error {
	record, err := uc.stock.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNotFound
	}
	return uc.stock.Delete(ctx, id)
}

func stockToResponse(r *entity.StockRecord) *dto.StockResponse {
	return &dto.StockResponse{
		ID:                r.ID,
		ProductID:         r.ProductID,
		VendorID:          r.VendorID,
		QuantityOnHand:    r.QuantityOnHand,
		QuantityReserved:  r.QuantityReserved,
		QuantityAvailable: r.QuantityAvailable,
		Location:          r.Location,
		Warehouse:         r.Warehouse,
		Shelf:             r.Shelf,
		BatchNumber:       r.BatchNumber,
		ExpiryDate:        r.ExpiryDate,
		CostPerUnit:       r.CostPerUnit,
		Notes:             r.Notes,
		LastCounted:       r.LastCounted,
		IsActive:          r.IsActive,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}
