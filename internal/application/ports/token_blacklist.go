package ports

import (
	"context"
	"time"
)

// TokenBlacklist define el puerto de revocación de refresh tokens.
// El logout registra el JTI del token presentado hasta su expiración natural;
// el refresh consulta antes de emitir un nuevo access token.
type TokenBlacklist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
