package entity

import "time"

// Acciones auditables (conjunto cerrado).
const (
	AuditLogin          = "login"
	AuditLogout         = "logout"
	AuditRegister       = "register"
	AuditBlock          = "block"
	AuditUnblock        = "unblock"
	AuditChangePassword = "change_password"
	AuditResetPassword  = "reset_password"
	AuditDelete         = "delete"
	AuditUpdate         = "update"
	AuditEnable2FA      = "enable_2fa"
)

// AuditLog registro append-only de una mutación sensible.
// ActorID es una referencia débil: sobrevive al borrado del actor (queda en nil),
// el registro nunca se modifica ni se elimina.
type AuditLog struct {
	ID        int64
	ActorID   *string
	Action    string // ver constantes Audit*
	Details   string
	CreatedAt time.Time
}
