package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// ProductHandler maneja el CRUD del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler de productos.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateProductRequest  true  "datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	product, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        search       query  string  false  "busca en nombre y sku"
// @Param        category_id  query  string  false  "filtro por categoría"
// @Param        limit        query  int     false  "tamaño de página"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	filter := repository.ProductListFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category_id"),
	}
	if v := c.Query("is_active"); v != "" {
		active := v == "true"
		filter.IsActive = &active
	}
	out, err := h.uc.List(c.Context(), filter, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener producto por id
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c *fiber.Ctx) error {
	product, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// GetBySKU godoc
// @Summary      Obtener producto por SKU
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        sku  path  string  true  "SKU del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/sku/{sku} [get]
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	product, err := h.uc.GetBySKU(c.Context(), c.Params("sku"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// Update godoc
// @Summary      Actualizar producto (el SKU no es editable)
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                    true  "id del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "campos editables"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	product, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(product)
}

// SetStatus godoc
// @Summary      Activar o desactivar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "id del producto"
// @Param        body  body  dto.SetStatusRequest  true  "estado deseado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/status [patch]
func (h *ProductHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), *in.IsActive); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado de producto actualizado"})
}

// Delete godoc
// @Summary      Eliminar producto (las existencias caen en cascada)
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del producto"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "producto eliminado"})
}
