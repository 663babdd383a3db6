package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los mapean
// a códigos de estado; ninguno debe propagarse como fallo no controlado.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Autenticación
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrAccountInactive    = errors.New("cuenta inactiva")
	ErrAccountBlocked     = errors.New("cuenta bloqueada")

	// Flujo OTP / 2FA
	ErrInvalidOrExpiredCode    = errors.New("código inválido o expirado")
	ErrPasswordMismatch        = errors.New("las contraseñas no coinciden")
	ErrPhoneNotRegistered      = errors.New("no hay teléfono registrado para esta cuenta")
	ErrTwoFactorNotEnabled     = errors.New("2FA no está habilitado para esta cuenta")
	ErrInvalidVerificationCode = errors.New("código de verificación inválido")
)
