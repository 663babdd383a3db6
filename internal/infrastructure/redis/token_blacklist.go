package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/unitedfins/inventory-api/internal/application/ports"
)

var _ ports.TokenBlacklist = (*TokenBlacklist)(nil)

const blacklistPrefix = "auth:revoked:"

// TokenBlacklist lista de revocación de refresh tokens sobre Redis.
// Cada JTI revocado vive con TTL igual al tiempo restante del token: la clave
// expira sola cuando el token ya no sirve, no hay barrido.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist construye la lista de revocación con el cliente Redis.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Revoke registra el JTI hasta que el token expire por sí solo.
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token ya vencido: nada que revocar.
		return nil
	}
	if err := b.client.Set(ctx, blacklistPrefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked consulta si el JTI fue revocado.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, blacklistPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revoked token: %w", err)
	}
	return n > 0, nil
}
