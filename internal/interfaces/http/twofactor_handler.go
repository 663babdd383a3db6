package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/unitedfins/inventory-api/internal/application/auth"
	"github.com/unitedfins/inventory-api/internal/application/dto"
)

// TwoFactorHandler maneja el reset de contraseña por OTP y el alta de 2FA.
type TwoFactorHandler struct {
	uc *auth.TwoFactorUseCase
}

// NewTwoFactorHandler construye el handler de 2FA.
func NewTwoFactorHandler(uc *auth.TwoFactorUseCase) *TwoFactorHandler {
	return &TwoFactorHandler{uc: uc}
}

// RequestOTP godoc
// @Summary      Solicitar código para reset de contraseña
// @Description  La respuesta tiene la misma forma exista o no la cuenta.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RequestOTPRequest  true  "email, method (sms|authenticator)"
// @Success      200   {object}  dto.RequestOTPResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password/request-otp [post]
func (h *TwoFactorHandler) RequestOTP(c *fiber.Ctx) error {
	var in dto.RequestOTPRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.RequestOTP(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// VerifyOTP godoc
// @Summary      Verificar código y resetear contraseña
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerifyOTPRequest  true  "email, code, new_password, confirm_password"
// @Success      200   {object}  dto.VerifyOTPResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/password/verify-otp [post]
func (h *TwoFactorHandler) VerifyOTP(c *fiber.Ctx) error {
	var in dto.VerifyOTPRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	out, err := h.uc.VerifyOTPAndReset(c.Context(), in)
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Enable godoc
// @Summary      Aprovisionar 2FA (fase uno)
// @Description  Genera secreto, URI de aprovisionamiento y códigos de respaldo.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.EnableTwoFactorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/enable [post]
func (h *TwoFactorHandler) Enable(c *fiber.Ctx) error {
	out, err := h.uc.Enable(c.Context(), GetUserID(c))
	if err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(out)
}

// Confirm godoc
// @Summary      Confirmar 2FA (fase dos)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.ConfirmTwoFactorRequest  true  "code"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/2fa/confirm [post]
func (h *TwoFactorHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmTwoFactorRequest
	if err := parseAndValidate(c, &in); err != nil {
		return err
	}
	if err := h.uc.Confirm(c.Context(), GetUserID(c), in); err != nil {
		return errorResponse(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "2FA activado"})
}
