package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/auth"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/policy"
)

// UserHandler maneja la administración de cuentas.
type UserHandler struct {
	users *usecase.UserUseCase
	auth  *auth.AuthUseCase
}

// NewUserHandler construye el handler de cuentas.
func NewUserHandler(users *usecase.UserUseCase, authUC *auth.AuthUseCase) *UserHandler {
	return &UserHandler{users: users, auth: authUC}
}

// Create godoc
// @Summary      Aprovisionar cuenta (roles no administrativos)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "email, password, role"
// @Success      201   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	user, err := h.auth.CreateUser(c.Context(), GetUserID(c), GetRole(c), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List godoc
// @Summary      Listar cuentas visibles para el actor
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        role    query  string  false  "filtro por rol"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	out, err := h.users.List(c.Context(), GetUserID(c), GetRole(c), c.Query("role"), page)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener cuenta por id
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la cuenta"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Context(), GetUserID(c), GetRole(c), c.Params("id"))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// Update godoc
// @Summary      Actualizar cuenta
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                 true  "id de la cuenta"
// @Param        body  body  dto.UpdateUserRequest  true  "campos editables"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	user, err := h.users.Update(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(user)
}

// Delete godoc
// @Summary      Eliminar cuenta (nunca la propia)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.Delete(c.Context(), GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta eliminada"})
}

// Block godoc
// @Summary      Bloquear cuenta (idempotente, nunca la propia)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/block [post]
func (h *UserHandler) Block(c *fiber.Ctx) error {
	if err := h.users.Block(c.Context(), GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta bloqueada"})
}

// Unblock godoc
// @Summary      Desbloquear cuenta (idempotente)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id de la cuenta"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/unblock [post]
func (h *UserHandler) Unblock(c *fiber.Ctx) error {
	if err := h.users.Unblock(c.Context(), GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "cuenta desbloqueada"})
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ChangePasswordRequest  true  "current_password, new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/users/me/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.users.ChangeOwnPassword(c.Context(), GetUserID(c), in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña actualizada"})
}

// SetPassword godoc
// @Summary      Reset administrativo de contraseña (nunca la propia)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                  true  "id de la cuenta"
// @Param        body  body  dto.SetPasswordRequest  true  "new_password"
// @Success      200   {object}  dto.MessageResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) SetPassword(c *fiber.Ctx) error {
	var in dto.SetPasswordRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.users.SetPassword(c.Context(), GetUserID(c), GetRole(c), c.Params("id"), in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "contraseña restablecida"})
}

// AvailableRoles godoc
// @Summary      Roles aprovisionables por el nivel administrativo
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.AvailableRolesResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/roles/available [get]
func (h *UserHandler) AvailableRoles(c *fiber.Ctx) error {
	return c.JSON(dto.AvailableRolesResponse{Roles: policy.AssignableRoles()})
}
