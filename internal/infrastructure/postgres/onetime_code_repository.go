package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

var _ repository.OneTimeCodeRepository = (*OneTimeCodeRepo)(nil)

// OneTimeCodeRepo implementación de OneTimeCodeRepository sobre PostgreSQL.
type OneTimeCodeRepo struct {
	q Querier
}

// NewOneTimeCodeRepository construye el adaptador de códigos de un solo uso.
func NewOneTimeCodeRepository(q Querier) *OneTimeCodeRepo {
	return &OneTimeCodeRepo{q: q}
}

// Create persiste un código nuevo.
func (r *OneTimeCodeRepo) Create(ctx context.Context, code *entity.OneTimeCode) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO password_reset_otps (id, user_id, code, purpose, is_used, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		code.ID, code.UserID, code.Code, code.Purpose, code.IsUsed, code.CreatedAt, code.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("insert otp: %w", err)
	}
	return nil
}

// Consume marca como usado el código que haga match y siga vigente. Un solo
// update condicional: verificaciones concurrentes no pueden consumirlo dos veces.
func (r *OneTimeCodeRepo) Consume(ctx context.Context, userID, code, purpose string, now time.Time) (bool, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE password_reset_otps SET is_used = true
		WHERE user_id = $1 AND code = $2 AND purpose = $3
			AND is_used = false AND expires_at > $4`,
		userID, code, purpose, now,
	)
	if err != nil {
		return false, fmt.Errorf("consume otp: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}
