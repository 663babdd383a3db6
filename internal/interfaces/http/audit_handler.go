package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
)

// AuditHandler expone la lectura del registro de auditoría.
type AuditHandler struct {
	uc *usecase.AuditUseCase
}

// NewAuditHandler construye el handler de auditoría.
func NewAuditHandler(uc *usecase.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

// List godoc
// @Summary      Listar entradas de auditoría (más reciente primero)
// @Tags         audit
// @Produce      json
// @Security     BearerAuth
// @Param        actor_id  query  string  false  "filtrar por actor"
// @Param        limit     query  int     false  "tamaño de página"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {object}  dto.AuditListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/audit-logs [get]
func (h *AuditHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.uc.List(c.Context(), c.Query("actor_id"), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}
