package usecase

import (
	"context"
	"time"

	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/policy"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas: listado con alcance por rol, bloqueo,
// borrado y gestión de credenciales. Toda mutación sensible queda auditada.
type UserUseCase struct {
	users repository.UserRepository
	audit repository.AuditLogRepository
	log   *logger.Logger
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(users repository.UserRepository, audit repository.AuditLogRepository, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, audit: audit, log: log}
}

// List lista cuentas según el alcance del actor: super_admin ve todo, admin
// todo menos super_admin, el resto únicamente su propia cuenta.
func (uc *UserUseCase) List(ctx context.Context, actorID, actorRole, roleFilter string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	filter := repository.UserListFilter{
		Role:   roleFilter,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	switch policy.ListScope(actorRole) {
	case policy.ScopeAll:
		// sin restricciones
	case policy.ScopeAllExceptSuperAdmin:
		filter.ExcludeRoles = []string{entity.RoleSuperAdmin}
	default:
		filter.OnlyUserID = actorID
	}
	users, err := uc.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := &dto.UserListResponse{
		Users: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, u := range users {
		profile, err := uc.users.GetProfile(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		out.Users = append(out.Users, *userToResponse(u, profile))
	}
	return out, nil
}

// Get obtiene una cuenta visible para el actor. Un objetivo fuera de alcance
// responde como inexistente: no se revela que la cuenta exista.
func (uc *UserUseCase) Get(ctx context.Context, actorID, actorRole, targetID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil || !policy.CanViewUser(actorRole, actorID, user.Role, user.ID) {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return userToResponse(user, profile), nil
}

// Update actualiza los campos editables de una cuenta (nivel admin,
// prohibido contra la propia cuenta: un admin no se desactiva a sí mismo).
func (uc *UserUseCase) Update(ctx context.Context, actorID, actorRole, targetID string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanManageUser(actorRole, actorID, targetID) {
		return nil, domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if user == nil || !policy.CanViewUser(actorRole, actorID, user.Role, user.ID) {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if in.Role != nil {
		// Nunca se asciende una cuenta al nivel administrativo por update.
		if policy.IsAdminTier(*in.Role) || !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *in.Role
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if in.Name != nil || in.Phone != nil {
		if in.Name != nil {
			profile.Name = *in.Name
		}
		if in.Phone != nil {
			profile.PhoneNumber = *in.Phone
		}
		profile.UpdatedAt = time.Now()
		if err := uc.users.UpdateProfile(ctx, profile); err != nil {
			return nil, err
		}
	}
	uc.appendAudit(ctx, actorID, entity.AuditUpdate, "actualización de cuenta "+user.Email)
	return userToResponse(user, profile), nil
}

// Delete elimina una cuenta (hard delete; el perfil cae en cascada).
// Prohibido contra la propia cuenta. Las entradas de auditoría del eliminado
// sobreviven con el actor en nil.
func (uc *UserUseCase) Delete(ctx context.Context, actorID, actorRole, targetID string) error {
	if !policy.CanManageUser(actorRole, actorID, targetID) {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil || !policy.CanViewUser(actorRole, actorID, user.Role, user.ID) {
		return domain.ErrUserNotFound
	}
	if err := uc.users.Delete(ctx, targetID); err != nil {
		return err
	}
	uc.appendAudit(ctx, actorID, entity.AuditDelete, "eliminación de cuenta "+user.Email)
	return nil
}

// Block marca la cuenta como bloqueada (idempotente, prohibido contra sí mismo).
func (uc *UserUseCase) Block(ctx context.Context, actorID, actorRole, targetID string) error {
	return uc.setBlocked(ctx, actorID, actorRole, targetID, true)
}

// Unblock quita el bloqueo (idempotente).
func (uc *UserUseCase) Unblock(ctx context.Context, actorID, actorRole, targetID string) error {
	return uc.setBlocked(ctx, actorID, actorRole, targetID, false)
}

func (uc *UserUseCase) setBlocked(ctx context.Context, actorID, actorRole, targetID string, blocked bool) error {
	if !policy.CanManageUser(actorRole, actorID, targetID) {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil || !policy.CanViewUser(actorRole, actorID, user.Role, user.ID) {
		return domain.ErrUserNotFound
	}
	if err := uc.users.SetBlocked(ctx, targetID, blocked); err != nil {
		return err
	}
	action := entity.AuditBlock
	detail := "bloqueo de cuenta " + user.Email
	if !blocked {
		action = entity.AuditUnblock
		detail = "desbloqueo de cuenta " + user.Email
	}
	uc.appendAudit(ctx, actorID, action, detail)
	return nil
}

// ChangeOwnPassword cambio de credencial propio: exige la contraseña actual.
func (uc *UserUseCase) ChangeOwnPassword(ctx context.Context, actorID string, in dto.ChangePasswordRequest) error {
	user, err := uc.users.GetByID(ctx, actorID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)); err != nil {
		return domain.ErrInvalidCredentials
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, actorID, string(hash)); err != nil {
		return err
	}
	uc.appendAudit(ctx, actorID, entity.AuditChangePassword, "cambio de contraseña propio")
	return nil
}

// SetPassword reset administrativo: sin prueba de credencial actual, nunca
// contra la propia cuenta (para eso está ChangeOwnPassword).
func (uc *UserUseCase) SetPassword(ctx context.Context, actorID, actorRole, targetID string, in dto.SetPasswordRequest) error {
	if !policy.CanManageUser(actorRole, actorID, targetID) {
		return domain.ErrForbidden
	}
	user, err := uc.users.GetByID(ctx, targetID)
	if err != nil {
		return err
	}
	if user == nil || !policy.CanViewUser(actorRole, actorID, user.Role, user.ID) {
		return domain.ErrUserNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := uc.users.UpdatePassword(ctx, targetID, string(hash)); err != nil {
		return err
	}
	uc.appendAudit(ctx, actorID, entity.AuditResetPassword, "reset administrativo de contraseña para "+user.Email)
	return nil
}

func (uc *UserUseCase) appendAudit(ctx context.Context, actorID, action, details string) {
	entry := &entity.AuditLog{ActorID: &actorID, Action: action, Details: details, CreatedAt: time.Now()}
	if err := uc.audit.Append(ctx, entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar auditoría")
	}
}

func userToResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
	if u == nil {
		return nil
	}
	resp := &dto.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if p != nil {
		resp.UUID = p.UUID
		resp.Name = p.Name
		resp.Phone = p.PhoneNumber
		resp.Blocked = p.Blocked
	}
	return resp
}
