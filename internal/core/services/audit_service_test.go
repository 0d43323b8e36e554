package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sunrisehms/folio_ledger_app/internal/core/domain"
	"github.com/sunrisehms/folio_ledger_app/internal/core/services"
	"github.com/sunrisehms/folio_ledger_app/internal/dto"
)

// MockAuditRepository mocks the audit trail store.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditLog(ctx context.Context, entry domain.AuditLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditLogs(ctx context.Context, entityID *string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	args := m.Called(ctx, entityID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return args.Get(0).([]domain.AuditLog), token, args.Error(2)
}

func TestAuditService_Record_FillsIdentifiers(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAuditRepository)
	service := services.NewAuditService(mockRepo)

	var saved domain.AuditLog
	mockRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.AuditLog) }).
		Return(nil).
		Once()

	service.Record(ctx, domain.AuditLog{
		Action:     domain.AuditFolioCreate,
		EntityType: domain.EntityFolio,
		EntityID:   "FOLIO-1",
		UserID:     "STAFF-1",
	})

	require.NotEmpty(t, saved.LogID)
	assert.Contains(t, saved.LogID, "LOG-")
	assert.WithinDuration(t, time.Now(), saved.Timestamp, time.Second)
	mockRepo.AssertExpectations(t)
}

func TestAuditService_Record_SwallowsStoreFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAuditRepository)
	service := services.NewAuditService(mockRepo)

	mockRepo.On("SaveAuditLog", ctx, mock.AnythingOfType("domain.AuditLog")).
		Return(errors.New("connection refused")).
		Once()

	// Must not panic or propagate; the primary operation already committed.
	service.Record(ctx, domain.AuditLog{Action: domain.AuditPaymentReceive, EntityID: "FOLIO-1"})

	mockRepo.AssertExpectations(t)
}

func TestAuditService_ListAuditLogs(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockAuditRepository)
	service := services.NewAuditService(mockRepo)

	entityID := "FOLIO-1"
	entries := []domain.AuditLog{{LogID: "LOG-1", Action: domain.AuditFolioVoid, EntityID: entityID}}
	mockRepo.On("ListAuditLogs", ctx, &entityID, 50, (*string)(nil)).Return(entries, nil, nil).Once()

	resp, err := service.ListAuditLogs(ctx, dto.ListAuditLogsParams{EntityID: &entityID, Limit: 50})

	require.NoError(t, err)
	require.Len(t, resp.Entries, 1)
	assert.Equal(t, "LOG-1", resp.Entries[0].LogID)
	assert.Nil(t, resp.NextToken)
}
