package webhook

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"denku.com/billing/internal/concurrency"
	"denku.com/billing/mocks"
	"denku.com/billing/models"
	"denku.com/billing/repository"
)

func testIngestionPlans() []models.ServicePlan {
	return []models.ServicePlan{
		{Id: 1, KeyName: "starter", ConcurrentCalls: 3},
	}
}

func startedEvent() *models.CallEvent {
	return &models.CallEvent{
		Type:      models.CallEventStarted,
		CallId:    "call-1",
		AgentId:   "agent-7",
		ChannelId: "chan-1",
		Number:    "+15550100",
	}
}

func TestProcessCallEvent(t *testing.T) {
	t.Parallel()

	testWorkspace := &models.Workspace{Id: 1, CreatorId: 101, Plan: "starter"}

	t.Run("Should admit a call start below the limit without touching the channel", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)
		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testWorkspace, nil)
		mockWorkspace.EXPECT().GetServicePlans().Return(testIngestionPlans(), nil)
		mockLease.EXPECT().DeleteExpiredForWorkspace(1, mock.Anything).Return(0, nil)
		mockLease.EXPECT().InsertLeaseIfBelowLimit(mock.Anything, 3).Return(repository.LeaseInserted, nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		assert.NoError(t, service.ProcessCallEvent(startedEvent()))

		mockTelephony.AssertNotCalled(t, "HangupChannel", mock.Anything)
	})

	t.Run("Should hang up a call start rejected at the limit", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)
		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testWorkspace, nil)
		mockWorkspace.EXPECT().GetServicePlans().Return(testIngestionPlans(), nil)
		mockLease.EXPECT().DeleteExpiredForWorkspace(1, mock.Anything).Return(0, nil)
		mockLease.EXPECT().InsertLeaseIfBelowLimit(mock.Anything, 3).Return(repository.LeaseLimitReached, nil)
		mockAudit.EXPECT().Append(mock.Anything).Return(nil)
		mockTelephony.EXPECT().HangupChannel("chan-1").Return(nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		assert.NoError(t, service.ProcessCallEvent(startedEvent()))

		mockTelephony.AssertExpectations(t)
	})

	t.Run("Should hang up the call when admission fails closed on a store error", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(nil, errors.New("store down"))
		mockTelephony.EXPECT().HangupChannel("chan-1").Return(nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		assert.NoError(t, service.ProcessCallEvent(startedEvent()))

		mockTelephony.AssertExpectations(t)
	})

	t.Run("Should fall back to the call id when the event carries no channel id", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(nil, errors.New("store down"))
		mockTelephony.EXPECT().HangupChannel("call-1").Return(nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		event := startedEvent()
		event.ChannelId = ""
		assert.NoError(t, service.ProcessCallEvent(event))

		mockTelephony.AssertExpectations(t)
	})

	t.Run("Should release the lease on call end", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)
		mockLease.EXPECT().DeleteLease(1, "call-1").Return(nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		event := &models.CallEvent{Type: models.CallEventEnded, CallId: "call-1", Number: "+15550100"}
		assert.NoError(t, service.ProcessCallEvent(event))

		mockLease.AssertExpectations(t)
	})

	t.Run("Should drop events for numbers no workspace owns", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550199").Return(0, repository.ErrWorkspaceNotFound)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		event := startedEvent()
		event.Number = "+15550199"
		assert.NoError(t, service.ProcessCallEvent(event))

		mockLease.AssertNotCalled(t, "InsertLeaseIfBelowLimit", mock.Anything, mock.Anything)
		mockTelephony.AssertNotCalled(t, "HangupChannel", mock.Anything)
	})

	t.Run("Should ignore unknown event types", func(t *testing.T) {
		t.Parallel()

		mockLease := &mocks.LeaseRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockLease.EXPECT().DeleteAllExpired(mock.Anything).Return(0, nil)
		mockWorkspace.EXPECT().ResolveWorkspaceByNumber("+15550100").Return(1, nil)

		limiter := concurrency.NewService(mockLease, mockWorkspace, mockAudit)
		service := NewService(limiter, mockWorkspace, mockTelephony)

		event := &models.CallEvent{Type: "call.ringing", CallId: "call-1", Number: "+15550100"}
		assert.NoError(t, service.ProcessCallEvent(event))
	})
}
