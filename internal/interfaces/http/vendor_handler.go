package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// VendorHandler maneja el CRUD de proveedores.
type VendorHandler struct {
	uc *usecase.VendorUseCase
}

// NewVendorHandler construye el handler de proveedores.
func NewVendorHandler(uc *usecase.VendorUseCase) *VendorHandler {
	return &VendorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateVendorRequest  true  "datos del proveedor"
// @Success      201   {object}  dto.VendorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendors [post]
func (h *VendorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVendorRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	vendor, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(vendor)
}

// List godoc
// @Summary      Listar proveedores
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        search       query  string  false  "busca en nombre y contacto"
// @Param        vendor_type  query  string  false  "purchase|service|scrap"
// @Param        limit        query  int     false  "tamaño de página"
// @Param        offset       query  int     false  "desplazamiento"
// @Success      200  {object}  dto.VendorListResponse
// @Router       /api/vendors [get]
func (h *VendorHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	filter := repository.VendorListFilter{
		Search:     c.Query("search"),
		VendorType: c.Query("vendor_type"),
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
// @Summary      Obtener proveedor por id
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del proveedor"
// @Success      200  {object}  dto.VendorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [get]
func (h *VendorHandler) Get(c *fiber.Ctx) error {
	vendor, err := h.uc.Get(c.Context(), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(vendor)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                   true  "id del proveedor"
// @Param        body  body  dto.UpdateVendorRequest  true  "campos editables"
// @Success      200   {object}  dto.VendorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [put]
func (h *VendorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVendorRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	vendor, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(vendor)
}

// SetStatus godoc
// @Summary      Activar o desactivar proveedor
// @Tags         vendors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                true  "id del proveedor"
// @Param        body  body  dto.SetStatusRequest  true  "estado deseado"
// @Success      200   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/vendors/{id}/status [patch]
func (h *VendorHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.SetStatusRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.uc.SetActive(c.Context(), c.Params("id"), *in.IsActive); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "estado de proveedor actualizado"})
}

// Delete godoc
// @Summary      Eliminar proveedor
// @Tags         vendors
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del proveedor"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendors/{id} [delete]
func (h *VendorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "proveedor eliminado"})
}
