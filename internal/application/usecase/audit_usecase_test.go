package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unitedfins/inventory-api/internal/application/dto"
	"github.com/unitedfins/inventory-api/internal/application/usecase"
	"github.com/unitedfins/inventory-api/internal/domain/entity"
)

func TestAuditList_Todas(t *testing.T) {
	audit := &fakeAuditRepo{}
	uc := usecase.NewAuditUseCase(audit)

	actor := "u-admin"
	for _, action := range []string{entity.AuditRegister, entity.AuditLogin, entity.AuditBlock} {
		require.NoError(t, audit.Append(context.Background(), &entity.AuditLog{
			ActorID: &actor, Action: action, CreatedAt: time.Now(),
		}))
	}

	resp, err := uc.List(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Entries, 3)
}

func TestAuditList_PorActor(t *testing.T) {
	audit := &fakeAuditRepo{}
	uc := usecase.NewAuditUseCase(audit)

	uno, otro := "u-uno", "u-otro"
	require.NoError(t, audit.Append(context.Background(), &entity.AuditLog{ActorID: &uno, Action: entity.AuditLogin}))
	require.NoError(t, audit.Append(context.Background(), &entity.AuditLog{ActorID: &otro, Action: entity.AuditLogin}))
	require.NoError(t, audit.Append(context.Background(), &entity.AuditLog{ActorID: &uno, Action: entity.AuditLogout}))

	resp, err := uc.List(context.Background(), "u-uno", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	for _, e := range resp.Entries {
		require.NotNil(t, e.ActorID)
		assert.Equal(t, "u-uno", *e.ActorID)
	}
}

func TestAuditList_ActorEliminadoQuedaEnNull(t *testing.T) {
	// La referencia al actor es débil: la entrada sobrevive con actor_id nulo.
	audit := &fakeAuditRepo{}
	uc := usecase.NewAuditUseCase(audit)

	require.NoError(t, audit.Append(context.Background(), &entity.AuditLog{
		ActorID: nil, Action: entity.AuditDelete, Details: "eliminación de cuenta",
	}))

	resp, err := uc.List(context.Background(), "", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Nil(t, resp.Entries[0].ActorID)
}
