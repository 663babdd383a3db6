package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// UserListFilter criterios de listado de cuentas. ExcludeRoles y OnlyUserID
// materializan el alcance decidido por policy.ListScope.
type UserListFilter struct {
	Role         string   // filtro opcional por rol exacto
	ExcludeRoles []string // roles invisibles para el actor
	OnlyUserID   string   // restringir el listado a una sola cuenta
	Limit        int
	Offset       int
}

// UserRepository define el puerto de persistencia para User y su Profile (DIP).
// No hay lookup ambiental de "usuario actual": todo componente que necesite
// cuentas recibe este puerto inyectado.
type UserRepository interface {
	// CreateWithProfile persiste cuenta y perfil en la misma transacción:
	// un User sin Profile no existe en ningún momento observable.
	CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetProfile(ctx context.Context, userID string) (*entity.Profile, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateProfile(ctx context.Context, profile *entity.Profile) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
	SetBlocked(ctx context.Context, userID string, blocked bool) error
	List(ctx context.Context, filter UserListFilter) ([]*entity.User, error)
	Delete(ctx context.Context, id string) error

	// SaveTwoFactorSetup guarda secreto y códigos de respaldo sin activar 2FA
	// (fase uno del alta en dos fases).
	SaveTwoFactorSetup(ctx context.Context, userID, secret string, backupCodes []string) error
	// EnableTwoFactor activa la bandera tras confirmar un código válido.
	EnableTwoFactor(ctx context.Context, userID string) error
	// ConsumeBackupCode elimina el código del set si está presente, en un solo
	// update condicional. Devuelve false si el código no estaba.
	ConsumeBackupCode(ctx context.Context, userID, code string) (bool, error)
	// RecordTOTPUse registra el TOTP consumido salvo que sea igual al último
	// usado (anti-replay). Devuelve false si el código se repite.
	RecordTOTPUse(ctx context.Context, userID, code string) (bool, error)
}
