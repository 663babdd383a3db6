package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Proveedores
// ──────────────────────────────────────────────────────────────────────────────

func TestVendorCreate_TipoPorDefectoPurchase(t *testing.T) {
	uc := usecase.NewVendorUseCase(newFakeVendorRepo(), logger.Nop())

	resp, err := uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Aceros del Norte"})
	require.NoError(t, err)
	assert.Equal(t, entity.VendorTypePurchase, resp.VendorType)
	assert.True(t, resp.IsActive)
}

func TestVendorCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewVendorUseCase(newFakeVendorRepo(), logger.Nop())
	_, err := uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Aceros del Norte"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Aceros del Norte"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVendorUpdate_RenombrarANombreOcupado(t *testing.T) {
	uc := usecase.NewVendorUseCase(newFakeVendorRepo(), logger.Nop())
	_, err := uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Aceros del Norte"})
	require.NoError(t, err)
	otro, err := uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Plásticos del Sur"})
	require.NoError(t, err)

	nombre := "Aceros del Norte"
	_, err = uc.Update(context.Background(), otro.ID, dto.UpdateVendorRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestVendorList_FiltroPorTipo(t *testing.T) {
	uc := usecase.NewVendorUseCase(newFakeVendorRepo(), logger.Nop())
	_, err := uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Aceros", VendorType: entity.VendorTypePurchase})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateVendorRequest{Name: "Chatarras", VendorType: entity.VendorTypeScrap})
	require.NoError(t, err)

	resp, err := uc.List(context.Background(), repository.VendorListFilter{VendorType: entity.VendorTypeScrap}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Vendors, 1)
	assert.Equal(t, "Chatarras", resp.Vendors[0].Name)
	assert.Equal(t, 1, resp.Page.Total)
}

func TestVendorGet_Inexistente(t *testing.T) {
	uc := usecase.NewVendorUseCase(newFakeVendorRepo(), logger.Nop())

	_, err := uc.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_ConProductosAsociados(t *testing.T) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo(products)
	catUC := usecase.NewCategoryUseCase(categories, logger.Nop())
	prodUC := usecase.NewProductUseCase(products, categories, logger.Nop())

	cat, err := catUC.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tornillería"})
	require.NoError(t, err)
	_, err = prodUC.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo M6", CategoryID: cat.ID,
	})
	require.NoError(t, err)

	err = catUC.Delete(context.Background(), cat.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "una categoría con productos no se elimina")
}

func TestCategoryDelete_SinProductos(t *testing.T) {
	categories := newFakeCategoryRepo(newFakeProductRepo())
	uc := usecase.NewCategoryUseCase(categories, logger.Nop())

	cat, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tornillería"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), cat.ID))
	_, err = uc.Get(context.Background(), cat.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo(nil), logger.Nop())
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tornillería"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tornillería"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func newProductFixture() (*usecase.ProductUseCase, *fakeProductRepo, *fakeCategoryRepo) {
	products := newFakeProductRepo()
	categories := newFakeCategoryRepo(products)
	return usecase.NewProductUseCase(products, categories, logger.Nop()), products, categories
}

func TestProductCreate_SKUDuplicado(t *testing.T) {
	uc, _, _ := newProductFixture()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "TOR-001", Name: "Tornillo M6"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{SKU: "TOR-001", Name: "Otro producto"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_PrecioNegativo(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo M6", Price: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_CategoriaInexistente(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo M6", CategoryID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetBySKU(t *testing.T) {
	uc, _, _ := newProductFixture()
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		SKU: "TOR-001", Name: "Tornillo M6", Price: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)

	resp, err := uc.GetBySKU(context.Background(), "TOR-001")
	require.NoError(t, err)
	assert.Equal(t, "Tornillo M6", resp.Name)
	assert.True(t, resp.Price.Equal(decimal.RequireFromString("12.50")))
}

func TestProductGetBySKU_Inexistente(t *testing.T) {
	uc, _, _ := newProductFixture()

	_, err := uc.GetBySKU(context.Background(), "NO-EXISTE")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdate_SKUInmutable(t *testing.T) {
	// UpdateProductRequest no expone el SKU: un update no lo cambia.
	uc, products, _ := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "TOR-001", Name: "Tornillo M6"})
	require.NoError(t, err)

	nombre := "Tornillo M8"
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Equal(t, "TOR-001", resp.SKU)
	assert.Equal(t, "Tornillo M8", resp.Name)

	stored, err := products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "TOR-001", stored.SKU)
}

func TestProductSetActive_Desactiva(t *testing.T) {
	uc, products, _ := newProductFixture()
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "TOR-001", Name: "Tornillo M6"})
	require.NoError(t, err)

	require.NoError(t, uc.SetActive(context.Background(), created.ID, false))
	stored, err := products.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestProductList_Paginacion(t *testing.T) {
	uc, _, _ := newProductFixture()
	for _, name := range []string{"Arandela", "Broca", "Clavo", "Destornillador"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{SKU: "SKU-" + name, Name: name})
		require.NoError(t, err)
	}

	resp, err := uc.List(context.Background(), repository.ProductListFilter{}, dto.PageRequest{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Products, 2)
	assert.Equal(t, 4, resp.Page.Total)
}
