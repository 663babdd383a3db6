package entity

import "time"

// Roles válidos para User. La jerarquía empieza en admin: el registro público
// crea admins y los admins aprovisionan el resto de roles.
const (
	RoleSuperAdmin       = "super_admin"
	RoleAdmin            = "admin"
	RoleStoreKeeper      = "store_keeper"
	RoleInventoryManager = "inventory_manager"
	RoleRequester        = "requester"
	RoleVendor           = "vendor"
	RoleViewer           = "viewer"
)

// Roles devuelve la enumeración completa de roles.
func Roles() []string {
	return []string{
		RoleSuperAdmin, RoleAdmin, RoleStoreKeeper,
		RoleInventoryManager, RoleRequester, RoleVendor, RoleViewer,
	}
}

// ValidRole indica si s es un rol conocido.
func ValidRole(s string) bool {
	for _, r := range Roles() {
		if r == s {
			return true
		}
	}
	return false
}

// User representa una cuenta autenticable del sistema.
// El estado de bloqueo y los datos de contacto/2FA viven en Profile (1:1, siempre presente).
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ver constantes Role*
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
