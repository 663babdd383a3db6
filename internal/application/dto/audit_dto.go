package dto

import "time"

// AuditLogResponse salida de una entrada de auditoría.
// ActorID queda en null si la cuenta del actor fue eliminada.
type AuditLogResponse struct {
	ID        int64     `json:"id"`
	ActorID   *string   `json:"actor_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditListResponse listado paginado de auditoría (más reciente primero).
type AuditListResponse struct {
	Entries []AuditLogResponse `json:"entries"`
	Page    PageResponse       `json:"page"`
}
