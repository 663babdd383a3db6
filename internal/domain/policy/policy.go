// Package policy concentra las reglas de autorización sobre cuentas:
// quién puede crear, ver, bloquear o eliminar a quién. Son funciones puras
// sobre (rol del actor, rol/identidad del objetivo); el middleware HTTP y los
// casos de uso las consultan en lugar de repetir comparaciones de roles.
package policy

import "github.com/unitedfins/inventory-api/internal/domain/entity"

// Scope delimita qué cuentas puede ver un actor al listar.
type Scope int

const (
	// ScopeAll ve todas las cuentas (super_admin).
	ScopeAll Scope = iota
	// ScopeAllExceptSuperAdmin ve todas menos super_admin (admin).
	ScopeAllExceptSuperAdmin
	// ScopeSelf ve únicamente su propia cuenta (resto de roles).
	ScopeSelf
)

// IsAdminTier indica si el rol pertenece al nivel administrativo {admin, super_admin}.
func IsAdminTier(role string) bool {
	return role == entity.RoleAdmin || role == entity.RoleSuperAdmin
}

// CanCreateUser decide si un actor puede aprovisionar una cuenta con el rol dado.
// Solo el nivel administrativo crea cuentas, y nunca cuentas administrativas:
// los admin entran por el registro público, no por aprovisionamiento.
func CanCreateUser(actorRole, targetRole string) bool {
	if !IsAdminTier(actorRole) {
		return false
	}
	if IsAdminTier(targetRole) {
		return false
	}
	return entity.ValidRole(targetRole)
}

// ListScope devuelve el alcance de visibilidad del actor al listar cuentas.
func ListScope(actorRole string) Scope {
	switch actorRole {
	case entity.RoleSuperAdmin:
		return ScopeAll
	case entity.RoleAdmin:
		return ScopeAllExceptSuperAdmin
	default:
		return ScopeSelf
	}
}

// CanViewUser decide si el actor puede ver la cuenta objetivo. Sigue el mismo
// alcance que el listado: un admin no ve super_admins (el handler responde 404,
// no 403, para no revelar su existencia).
func CanViewUser(actorRole, actorID, targetRole, targetID string) bool {
	switch ListScope(actorRole) {
	case ScopeAll:
		return true
	case ScopeAllExceptSuperAdmin:
		return targetRole != entity.RoleSuperAdmin
	default:
		return actorID == targetID
	}
}

// CanManageUser decide si el actor puede bloquear, desbloquear, eliminar,
// actualizar o resetear la credencial de la cuenta objetivo. Requiere nivel
// administrativo y prohíbe siempre el auto-objetivo (un admin no se bloquea
// ni se elimina a sí mismo).
func CanManageUser(actorRole, actorID, targetID string) bool {
	if !IsAdminTier(actorRole) {
		return false
	}
	return actorID != targetID
}

// IsSelfTarget indica si la operación apunta a la propia cuenta del actor.
func IsSelfTarget(actorID, targetID string) bool {
	return actorID == targetID
}

// AssignableRoles devuelve los roles que el nivel administrativo puede aprovisionar.
func AssignableRoles() []string {
	return []string{
		entity.RoleStoreKeeper,
		entity.RoleInventoryManager,
		entity.RoleRequester,
		entity.RoleVendor,
		entity.RoleViewer,
	}
}
