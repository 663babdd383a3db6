package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// InventoryHandler maneja las existencias por producto y ubicación.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

// NewInventoryHandler construye el handler de existencias.
func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear registro de existencias
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateStockRequest  true  "product_id y cantidades"
// @Success      201   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/inventory [post]
func (h *InventoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	record, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

// List godoc
// @Summary      Listar existencias
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        product_id  query  string  false  "filtro por producto"
// @Param        search      query  string  false  "busca por nombre de producto"
// @Param        location    query  string  false  "filtro por ubicación"
// @Param        low_stock   query  bool    false  "solo bajo mínimo"
// @Param        limit       query  int     false  "tamaño de página"
// @Param        offset      query  int     false  "desplazamiento"
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	filter := repository.StockListFilter{
		ProductID:     c.Query("product_id"),
		ProductSearch: c.Query("search"),
		Location:      c.Query("location"),
		LowStockOnly:  c.Query("low_stock") == "true",
	}
	out, err := h.uc.List(c.Context(), filter, page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Existencias en o por debajo del mínimo del producto
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  dto.StockResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.Context())
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// ByProduct godoc
// @Summary      Existencias de un producto
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del producto"
// @Success      200  {array}   dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/product/{id} [get]
func (h *InventoryHandler) ByProduct(c *fiber.Ctx) error {
	out, err := h.uc.ListByProduct(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener registro de existencias por id
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del registro"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [get]
func (h *InventoryHandler) Get(c *fiber.Ctx) error {
	record, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

// Update godoc
// @Summary      Actualizar registro de existencias
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "id del registro"
// @Param        body  body  dto.UpdateStockRequest  true  "campos editables"
// @Success      200   {object}  dto.StockResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [put]
func (h *InventoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	record, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

// Adjust godoc
// @Summary      Ajustar quantity_on_hand (add, remove, set)
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "id del registro"
// @Param        body  body  dto.AdjustStockRequest  true  "operation, quantity, reason"
// @Success      200   {object}  dto.StockResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/{id}/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	record, err := h.uc.Adjust(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(record)
}

// Delete godoc
// @Summary      Eliminar registro de existencias
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del registro"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "registro eliminado"})
}
