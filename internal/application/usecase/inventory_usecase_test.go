package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

type inventoryFixture struct {
	uc       *usecase.InventoryUseCase
	stock    *fakeStockRepo
	products *fakeProductRepo
	vendors  *fakeVendorRepo
}

func newInventoryFixture() *inventoryFixture {
	products := newFakeProductRepo()
	stock := newFakeStockRepo(products)
	vendors := newFakeVendorRepo()
	return &inventoryFixture{
		uc:       usecase.NewInventoryUseCase(stock, products, vendors, logger.Nop()),
		stock:    stock,
		products: products,
		vendors:  vendors,
	}
}

func (f *inventoryFixture) seedProduct(t *testing.T, minStock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		ID:            uuid.NewString(),
		SKU:           "SKU-" + uuid.NewString()[:8],
		Name:          "Tornillo M6",
		MinStockLevel: minStock,
		IsActive:      true,
	}
	require.NoError(t, f.products.Create(context.Background(), p))
	return p
}

func (f *inventoryFixture) seedStock(t *testing.T, productID string, onHand int) *entity.StockRecord {
	t.Helper()
	r := &entity.StockRecord{
		ID:             uuid.NewString(),
		ProductID:      productID,
		QuantityOnHand: onHand,
		Location:       "bodega-norte",
		IsActive:       true,
	}
	require.NoError(t, f.stock.Create(context.Background(), r))
	return r
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta de existencias
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryCreate_ProductoInexistente(t *testing.T) {
	f := newInventoryFixture()

	_, err := f.uc.Create(context.Background(), dto.CreateStockRequest{
		ProductID:      uuid.NewString(),
		QuantityOnHand: 10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryCreate_ProveedorInexistente(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)

	_, err := f.uc.Create(context.Background(), dto.CreateStockRequest{
		ProductID: p.ID,
		VendorID:  uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryCreate_CantidadesIndependientes(t *testing.T) {
	// Las tres cantidades se aceptan tal cual: available NO se deriva de
	// on_hand - reserved. Es el contrato heredado del modelo de datos.
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)

	resp, err := f.uc.Create(context.Background(), dto.CreateStockRequest{
		ProductID:         p.ID,
		QuantityOnHand:    100,
		QuantityReserved:  30,
		QuantityAvailable: 9999,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, resp.QuantityOnHand)
	assert.Equal(t, 30, resp.QuantityReserved)
	assert.Equal(t, 9999, resp.QuantityAvailable, "available se persiste tal cual, sin derivar")
	assert.True(t, resp.IsActive)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ajustes
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryAdjust_Add(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)

	resp, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpAdd, Quantity: 7, Reason: "recepción de compra",
	})
	require.NoError(t, err)
	assert.Equal(t, 17, resp.QuantityOnHand)
}

func TestInventoryAdjust_Remove(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)

	resp, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpRemove, Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 6, resp.QuantityOnHand)
}

func TestInventoryAdjust_RemovePorDebajoDeCero(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 3)

	_, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpRemove, Quantity: 4,
	})
	assert.ErrorIs(t, err, domain.ErrConflict, "remove nunca deja on_hand negativo")

	actual, err := f.stock.GetByID(context.Background(), r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, actual.QuantityOnHand, "un remove rechazado no modifica nada")
}

func TestInventoryAdjust_RemoveExacto(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 4)

	resp, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpRemove, Quantity: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.QuantityOnHand)
}

func TestInventoryAdjust_Set(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)

	resp, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpSet, Quantity: 42, Reason: "conteo físico",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, resp.QuantityOnHand)
}

func TestInventoryAdjust_OperacionDesconocida(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)

	_, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: "duplicate", Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventoryAdjust_RegistroInexistente(t *testing.T) {
	f := newInventoryFixture()

	_, err := f.uc.Adjust(context.Background(), uuid.NewString(), dto.AdjustStockRequest{
		Operation: dto.AdjustOpAdd, Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInventoryAdjust_NoTocaLasOtrasCantidades(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)
	r.QuantityReserved = 3
	r.QuantityAvailable = 7
	require.NoError(t, f.stock.Update(context.Background(), r))

	resp, err := f.uc.Adjust(context.Background(), r.ID, dto.AdjustStockRequest{
		Operation: dto.AdjustOpAdd, Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.QuantityOnHand)
	assert.Equal(t, 3, resp.QuantityReserved)
	assert.Equal(t, 7, resp.QuantityAvailable, "el ajuste solo mueve on_hand")
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock bajo
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryListLowStock_UmbralPorProducto(t *testing.T) {
	f := newInventoryFixture()
	bajo := f.seedProduct(t, 10)
	alto := f.seedProduct(t, 2)
	rBajo := f.seedStock(t, bajo.ID, 10) // on_hand == min_stock_level cuenta como bajo
	f.seedStock(t, alto.ID, 50)

	out, err := f.uc.ListLowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rBajo.ID, out[0].ID)
}

func TestInventoryListLowStock_IgnoraInactivos(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 10)
	r := f.seedStock(t, p.ID, 1)
	r.IsActive = false
	require.NoError(t, f.stock.Update(context.Background(), r))

	out, err := f.uc.ListLowStock(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestInventoryUpdate_CantidadesPorSeparado(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	r := f.seedStock(t, p.ID, 10)

	disponible := 123
	resp, err := f.uc.Update(context.Background(), r.ID, dto.UpdateStockRequest{
		QuantityAvailable: &disponible,
	})
	require.NoError(t, err)
	assert.Equal(t, 10, resp.QuantityOnHand, "on_hand no se toca")
	assert.Equal(t, 123, resp.QuantityAvailable)
}

func TestInventoryListByProduct(t *testing.T) {
	f := newInventoryFixture()
	p := f.seedProduct(t, 5)
	otro := f.seedProduct(t, 5)
	f.seedStock(t, p.ID, 10)
	f.seedStock(t, p.ID, 20)
	f.seedStock(t, otro.ID, 30)

	out, err := f.uc.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestInventoryDelete_Inexistente(t *testing.T) {
	f := newInventoryFixture()

	err := f.uc.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
