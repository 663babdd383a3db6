package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/unitedfins/inventory-api/internal/domain"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
// Mantiene el pool (no un Querier) porque CreateWithProfile abre su propia
// transacción: cuenta y perfil nacen juntos o no nacen.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para cuentas.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

const userColumns = `id, email, password_hash, role, is_active, created_at, updated_at`

const profileColumns = `user_id, uuid, name, phone_number, latitude, longitude, blocked,
	totp_secret, totp_enabled, last_otp_used, backup_codes, created_at, updated_at`

// CreateWithProfile persiste cuenta y perfil en una sola transacción.
func (r *UserRepo) CreateWithProfile(ctx context.Context, user *entity.User, profile *entity.Profile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.PasswordHash, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO profiles (user_id, uuid, name, phone_number, latitude, longitude, blocked,
			totp_secret, totp_enabled, last_otp_used, backup_codes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		profile.UserID, profile.UUID, profile.Name, profile.PhoneNumber,
		profile.Latitude, profile.Longitude, profile.Blocked,
		profile.TOTPSecret, profile.TOTPEnabled, profile.LastOTPUsed, profile.BackupCodes,
		profile.CreatedAt, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.getUser(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) getUser(ctx context.Context, query string, arg any) (*entity.User, error) {
	var u entity.User
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetProfile obtiene el perfil 1:1 de una cuenta.
func (r *UserRepo) GetProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	var p entity.Profile
	err := r.pool.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1`, userID).Scan(
		&p.UserID, &p.UUID, &p.Name, &p.PhoneNumber, &p.Latitude, &p.Longitude, &p.Blocked,
		&p.TOTPSecret, &p.TOTPEnabled, &p.LastOTPUsed, &p.BackupCodes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// Update actualiza los campos mutables de una cuenta (no el email ni el hash).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET role = $2, is_active = $3, updated_at = $4 WHERE id = $1`,
		user.ID, user.Role, user.IsActive, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdateProfile actualiza los datos de contacto del perfil.
func (r *UserRepo) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET name = $2, phone_number = $3, latitude = $4, longitude = $5, updated_at = $6
		WHERE user_id = $1`,
		profile.UserID, profile.Name, profile.PhoneNumber, profile.Latitude, profile.Longitude, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// UpdatePassword reemplaza el hash de la contraseña.
func (r *UserRepo) UpdatePassword(ctx context.Context, userID, passwordHash string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`,
		userID, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// SetBlocked fija el estado de bloqueo (idempotente).
func (r *UserRepo) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET blocked = $2, updated_at = now() WHERE user_id = $1`,
		userID, blocked,
	)
	if err != nil {
		return fmt.Errorf("set blocked: %w", err)
	}
	return nil
}

// List lista cuentas aplicando el alcance materializado en el filtro.
func (r *UserRepo) List(ctx context.Context, filter repository.UserListFilter) ([]*entity.User, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}
	if filter.Role != "" {
		where = append(where, "role = "+arg(filter.Role))
	}
	if len(filter.ExcludeRoles) > 0 {
		where = append(where, "role != ALL("+arg(filter.ExcludeRoles)+")")
	}
	if filter.OnlyUserID != "" {
		where = append(where, "id = "+arg(filter.OnlyUserID))
	}
	query := `SELECT ` + userColumns + ` FROM users`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC LIMIT " + arg(filter.Limit) + " OFFSET " + arg(filter.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// Delete elimina la cuenta. El perfil cae en cascada; las entradas de auditoría
// del actor quedan con actor_id en NULL (ON DELETE SET NULL).
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// SaveTwoFactorSetup guarda secreto y códigos de respaldo sin activar la bandera.
func (r *UserRepo) SaveTwoFactorSetup(ctx context.Context, userID, secret string, backupCodes []string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET totp_secret = $2, backup_codes = $3, totp_enabled = false,
			last_otp_used = '', updated_at = now()
		WHERE user_id = $1`,
		userID, secret, backupCodes,
	)
	if err != nil {
		return fmt.Errorf("save 2fa setup: %w", err)
	}
	return nil
}

// EnableTwoFactor activa la bandera tras confirmar un código válido.
func (r *UserRepo) EnableTwoFactor(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET totp_enabled = true, updated_at = now() WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("enable 2fa: %w", err)
	}
	return nil
}

// ConsumeBackupCode elimina el código del array en un solo update condicional:
// dos consumos concurrentes del mismo código no pueden tener éxito ambos.
func (r *UserRepo) ConsumeBackupCode(ctx context.Context, userID, code string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE profiles SET backup_codes = array_remove(backup_codes, $2), updated_at = now()
		WHERE user_id = $1 AND $2 = ANY(backup_codes)`,
		userID, code,
	)
	if err != nil {
		return false, fmt.Errorf("consume backup code: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// RecordTOTPUse registra el código consumido salvo que repita el último usado.
// El IS DISTINCT FROM hace la comprobación y la escritura atómicas.
func (r *UserRepo) RecordTOTPUse(ctx context.Context, userID, code string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE profiles SET last_otp_used = $2, updated_at = now()
		WHERE user_id = $1 AND last_otp_used IS DISTINCT FROM $2`,
		userID, code,
	)
	if err != nil {
		return false, fmt.Errorf("record totp use: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
