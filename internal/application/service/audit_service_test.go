package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fiadopro/fiado-api/internal/domain/entity"
	"github.com/fiadopro/fiado-api/internal/domain/enum"
	"github.com/fiadopro/fiado-api/pkg/pagination"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditRecord(t *testing.T) {
	t.Run("stores actor and request context", func(t *testing.T) {
		repo := newFakeAuditRepo()
		svc := NewAuditService(repo)
		actorID := uuid.New()

		svc.Record(context.Background(), &actorID, enum.AuditActionPaymentRecorded, "Payment of R$ 5.00 recorded", entity.RequestContext{
			Path:      "/api/v1/accounts/abc/payments",
			Method:    "POST",
			IP:        "10.0.0.7",
			UserAgent: "curl/8.4",
			Extra:     entity.JSONMap{"amount": "5.00"},
		})

		require.Len(t, repo.events, 1)
		event := repo.events[0]
		assert.Equal(t, actorID, *event.ActorID)
		assert.Equal(t, enum.AuditActionPaymentRecorded, event.Action)
		assert.Equal(t, "POST", event.Method)
		assert.Equal(t, "10.0.0.7", event.IP)
		assert.Equal(t, "5.00", event.Extra["amount"])
	})

	t.Run("truncates oversized request context", func(t *testing.T) {
		repo := newFakeAuditRepo()
		svc := NewAuditService(repo)

		svc.Record(context.Background(), nil, enum.AuditActionOther, "noise", entity.RequestContext{
			Path:      "/" + strings.Repeat("a", 500),
			Method:    "PROPFINDXYZ",
			UserAgent: strings.Repeat("u", 1000),
		})

		require.Len(t, repo.events, 1)
		event := repo.events[0]
		assert.Len(t, event.Path, entity.AuditPathMaxLen)
		assert.Len(t, event.Method, entity.AuditMethodMaxLen)
		assert.Len(t, event.UserAgent, entity.AuditUserAgentMaxLen)
		assert.Nil(t, event.ActorID)
	})

	t.Run("storage failure never surfaces", func(t *testing.T) {
		repo := newFakeAuditRepo()
		repo.failErr = errors.New("connection refused")
		svc := NewAuditService(repo)
		actorID := uuid.New()

		assert.NotPanics(t, func() {
			svc.Record(context.Background(), &actorID, enum.AuditActionLogin, "User logged in", entity.RequestContext{})
		})
		assert.Empty(t, repo.events)
	})
}

func TestAuditListEvents(t *testing.T) {
	repo := newFakeAuditRepo()
	svc := NewAuditService(repo)
	actorID := uuid.New()
	otherID := uuid.New()

	svc.Record(context.Background(), &actorID, enum.AuditActionLogin, "User logged in", entity.RequestContext{})
	svc.Record(context.Background(), &actorID, enum.AuditActionAccountCreated, "Account opened for Joao", entity.RequestContext{})
	svc.Record(context.Background(), &otherID, enum.AuditActionLogin, "User logged in", entity.RequestContext{})

	t.Run("most recent first, scoped to the actor", func(t *testing.T) {
		result, err := svc.ListEvents(context.Background(), actorID, &pagination.PaginationParams{Page: 1, PerPage: 10}, "")
		require.NoError(t, err)

		require.Len(t, result.Items, 2)
		assert.Equal(t, enum.AuditActionAccountCreated, result.Items[0].Action)
		assert.Equal(t, enum.AuditActionLogin, result.Items[1].Action)
		assert.Equal(t, int64(2), result.Pagination.Total)
	})

	t.Run("filters by description", func(t *testing.T) {
		result, err := svc.ListEvents(context.Background(), actorID, &pagination.PaginationParams{Page: 1, PerPage: 10}, "joao")
		require.NoError(t, err)

		require.Len(t, result.Items, 1)
		assert.Equal(t, enum.AuditActionAccountCreated, result.Items[0].Action)
	})
}
