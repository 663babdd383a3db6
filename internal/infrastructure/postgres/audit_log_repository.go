package postgres

import (
	"context"
	"fmt"

	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo implementación de AuditLogRepository sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla es append-only.
type AuditLogRepo struct {
	q Querier
}

// NewAuditLogRepository construye el adaptador del registro de auditoría.
func NewAuditLogRepository(q Querier) *AuditLogRepo {
	return &AuditLogRepo{q: q}
}

// Append inserta una entrada. El ID es una secuencia generada por la base.
func (r *AuditLogRepo) Append(ctx context.Context, log *entity.AuditLog) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO audit_logs (actor_id, action, details, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		log.ActorID, log.Action, log.Details, log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// List lista entradas de más reciente a más antigua.
func (r *AuditLogRepo) List(ctx context.Context, limit, offset int) ([]*entity.AuditLog, error) {
	return r.list(ctx, `
		SELECT id, actor_id, action, details, created_at
		FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`,
		limit, offset)
}

// ListByActor lista las entradas de un actor concreto.
func (r *AuditLogRepo) ListByActor(ctx context.Context, actorID string, limit, offset int) ([]*entity.AuditLog, error) {
	return r.list(ctx, `
		SELECT id, actor_id, action, details, created_at
		FROM audit_logs WHERE actor_id = $1
		ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`,
		actorID, limit, offset)
}

func (r *AuditLogRepo) list(ctx context.Context, query string, args ...any) ([]*entity.AuditLog, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.ActorID, &l.Action, &l.Details, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
