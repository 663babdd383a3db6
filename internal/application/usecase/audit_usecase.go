package usecase

import (
	"context"

	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
	"github.com/unitedfins/inventory-api/internal/domain/repository"
)

// AuditUseCase lectura del registro de auditoría (solo nivel admin; el gate
// vive en el router). Las entradas nunca se modifican ni se borran.
type AuditUseCase struct {
	audit repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso de auditoría.
func NewAuditUseCase(audit repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{audit: audit}
}

// List lista entradas de auditoría, opcionalmente filtradas por actor.
func (uc *AuditUseCase) List(ctx context.Context, actorID string, page dto.PageRequest) (*dto.AuditListResponse, error) {
	page.DefaultPage()
	var (
		entries []*entity.AuditLog
		err     error
	)
	if actorID != "" {
		entries, err = uc.audit.ListByActor(ctx, actorID, page.Limit, page.Offset)
	} else {
		entries, err = uc.audit.List(ctx, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := &dto.AuditListResponse{
		Entries: make([]dto.AuditLogResponse, 0, len(entries)),
		Page:    dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, dto.AuditLogResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			Action:    e.Action,
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}
