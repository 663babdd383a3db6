package repository

import (
	"context"
	"time"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// OneTimeCodeRepository define el puerto de persistencia para códigos de un solo uso.
type OneTimeCodeRepository interface {
	Create(ctx context.Context, code *entity.OneTimeCode) error
	// Consume marca como usado el código que coincida con (userID, code, purpose)
	// y siga sin usar y sin expirar al instante now. La comprobación y la marca
	// son un único update condicional: dos verificaciones concurrentes con el
	// mismo código no pueden consumirlo ambas. Devuelve false si no hubo match.
	Consume(ctx context.Context, userID, code, purpose string, now time.Time) (bool, error)
}
