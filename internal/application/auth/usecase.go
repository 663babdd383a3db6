package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/ports"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/policy"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
	"github.com/unitedfins/inventory-api/pkg/jwt"
	"github.com/unitedfins/inventory-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// TokenConfig configuración para emisión de tokens.
type TokenConfig struct {
	Secret         string
	AccessMinutes  int
	RefreshMinutes int
	Issuer         string
}

// AuthUseCase casos de uso de autenticación: registro, login, refresh y logout.
// Cada mutación sensible deja una entrada de auditoría.
type AuthUseCase struct {
	users     repository.UserRepository
	audit     repository.AuditLogRepository
	blacklist ports.TokenBlacklist
	tokens    TokenConfig
	log       *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(
	users repository.UserRepository,
	audit repository.AuditLogRepository,
	blacklist ports.TokenBlacklist,
	tokens TokenConfig,
	log *logger.Logger,
) *AuthUseCase {
	return &AuthUseCase{users: users, audit: audit, blacklist: blacklist, tokens: tokens, log: log}
}

// RegisterAdmin registro público: crea una cuenta con rol admin, sin importar
// lo que pida el cliente. Es el punto de entrada de la jerarquía; el resto de
// roles se aprovisiona desde cuentas admin.
func (uc *AuthUseCase) RegisterAdmin(ctx context.Context, in dto.RegisterAdminRequest) (*dto.UserResponse, error) {
	return uc.createAccount(ctx, nil, in.Email, in.Password, in.Name, in.Phone, entity.RoleAdmin)
}

// CreateUser aprovisionamiento de cuentas no administrativas por el nivel admin.
func (uc *AuthUseCase) CreateUser(ctx context.Context, actorID, actorRole string, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !policy.CanCreateUser(actorRole, in.Role) {
		return nil, domain.ErrForbidden
	}
	return uc.createAccount(ctx, &actorID, in.Email, in.Password, in.Name, in.Phone, in.Role)
}

func (uc *AuthUseCase) createAccount(ctx context.Context, actorID *string, email, password, name, phone, role string) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	if name == "" {
		name = email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	profile := &entity.Profile{
		UserID:      user.ID,
		UUID:        uuid.New().String(),
		Name:        name,
		PhoneNumber: phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.users.CreateWithProfile(ctx, user, profile); err != nil {
		return nil, err
	}
	registeredBy := user.ID
	if actorID != nil {
		registeredBy = *actorID
	}
	uc.appendAudit(ctx, &registeredBy, entity.AuditRegister, "registro de cuenta "+user.Email)
	return toUserResponse(user, profile), nil
}

// Login verifica email/password y estado de la cuenta, emite el par de tokens
// y registra la entrada de auditoría.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile.Blocked {
		return nil, domain.ErrAccountBlocked
	}

	access, err := jwt.GenerateAccess(uc.tokens.Secret, user.ID, user.Role, uc.tokens.Issuer, uc.tokens.AccessMinutes)
	if err != nil {
		return nil, err
	}
	refresh, _, err := jwt.GenerateRefresh(uc.tokens.Secret, user.ID, user.Role, uc.tokens.Issuer, uc.tokens.RefreshMinutes)
	if err != nil {
		return nil, err
	}
	uc.appendAudit(ctx, &user.ID, entity.AuditLogin, "inicio de sesión de "+user.Email)

	return &dto.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
		User:         *toUserResponse(user, profile),
	}, nil
}

// Refresh emite un nuevo access token a partir de un refresh token vigente
// y no revocado. La cuenta debe seguir activa y sin bloquear.
func (uc *AuthUseCase) Refresh(ctx context.Context, in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	claims, err := jwt.ParseRefresh(uc.tokens.Secret, in.RefreshToken)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	revoked, err := uc.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if profile.Blocked {
		return nil, domain.ErrAccountBlocked
	}
	access, err := jwt.GenerateAccess(uc.tokens.Secret, user.ID, user.Role, uc.tokens.Issuer, uc.tokens.AccessMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access, TokenType: "bearer"}, nil
}

// Logout revoca el refresh token presentado (queda en blacklist hasta su
// expiración natural) y registra la auditoría. El descarte del access token
// es responsabilidad del cliente.
func (uc *AuthUseCase) Logout(ctx context.Context, actorID string, in dto.LogoutRequest) error {
	claims, err := jwt.ParseRefresh(uc.tokens.Secret, in.RefreshToken)
	if err != nil {
		return domain.ErrInvalidInput
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl > 0 {
		if err := uc.blacklist.Revoke(ctx, claims.ID, ttl); err != nil {
			return err
		}
	}
	uc.appendAudit(ctx, &actorID, entity.AuditLogout, "cierre de sesión")
	return nil
}

// Me devuelve la cuenta autenticada con su perfil.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	profile, err := uc.users.GetProfile(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, profile), nil
}

// appendAudit registra la entrada; un fallo de auditoría no tumba la operación.
func (uc *AuthUseCase) appendAudit(ctx context.Context, actorID *string, action, details string) {
	entry := &entity.AuditLog{ActorID: actorID, Action: action, Details: details, CreatedAt: time.Now()}
	if err := uc.audit.Append(ctx, entry); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("no se pudo registrar auditoría")
	}
}

func toUserResponse(u *entity.User, p *entity.Profile) *dto.UserResponse {
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
