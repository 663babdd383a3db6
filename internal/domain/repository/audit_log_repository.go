package repository

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

// AuditLogRepository define el puerto del registro de auditoría.
// Solo inserción y lectura: las entradas nunca se modifican ni se borran.
type AuditLogRepository interface {
	Append(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error)
	ListByActor(ctx context.Context, actorID string, limit, offset int) ([]*entity.AuditLog, error)
}
