package entity

import "time"

// Propósitos de un código de un solo uso.
const (
	OTPPurposePasswordReset     = "password_reset"
	OTPPurposeLoginVerification = "login_verification"
)

// OneTimeCode código numérico de 6 dígitos de corta vida ligado a una cuenta.
// Se consume una sola vez (IsUsed pasa a true, nunca se borra); la expiración
// se comprueba de forma perezosa al verificar, no hay barrido en segundo plano.
type OneTimeCode struct {
	ID        string
	UserID    string
	Code      string // 6 dígitos
	Purpose   string // ver constantes OTPPurpose*
	IsUsed    bool
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired indica si el código ya venció en el instante dado.
func (c *OneTimeCode) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
