package overage

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v72"

	billinghandlers "denku.com/billing/handlers/billing"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/mocks"
	"denku.com/billing/models"
	"denku.com/billing/utils"
)

const testMonth = "2025-07"

func testOverageWorkspace() *models.Workspace {
	return &models.Workspace{Id: 1, CreatorId: 101, Name: "acme", Plan: "pro"}
}

func testOverageUser() *models.User {
	return &models.User{Id: 101, Email: "owner@acme.test", StripeId: "cus_101"}
}

func testOverageBillingParams() *utils.BillingParams {
	return &utils.BillingParams{
		Provider: "stripe",
		Data:     map[string]string{"stripe_private_key": "test_stripe_key"},
	}
}

// threshold 100, cap 250, nothing collected yet
func freshState() *models.OverageState {
	return &models.OverageState{
		Id:                      1,
		WorkspaceId:             1,
		BillingMonth:            testMonth,
		ThresholdUsd:            100,
		HardCapUsd:              250,
		LastCollectedOverageUsd: 0,
		NextCollectAtOverageUsd: 100,
	}
}

func overageOrchestrator(mockWorkspace *mocks.WorkspaceRepository, mockLease *mocks.LeaseRepository, mockTelephony *mocks.TelephonyHandler) *workspace.Service {
	return workspace.NewService(mockWorkspace, mockLease, &mocks.AuditRepository{}, mockTelephony)
}

func overageEvent(eventType string, inv map[string]interface{}) *stripe.Event {
	raw, _ := json.Marshal(inv)
	return &stripe.Event{
		ID:   "evt_1",
		Type: eventType,
		Data: &stripe.EventData{Raw: raw},
	}
}

func overageMetadata(workspaceId string, month string, snapshot string) map[string]interface{} {
	return map[string]interface{}{
		billinghandlers.MetadataChargeType:  billinghandlers.ChargeTypeOverage,
		billinghandlers.MetadataWorkspaceId: workspaceId,
		billinghandlers.MetadataMonth:       month,
		billinghandlers.MetadataSnapshotUsd: snapshot,
	}
}

func TestEvaluateAndCollect(t *testing.T) {
	t.Parallel()

	t.Run("Should skip a workspace below the next collection boundary", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 40}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateSkipped, result)

		mockPayment.AssertNotCalled(t, "CreateOverageCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should charge the uncollected delta when the boundary is crossed", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 120}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockPayment.EXPECT().CreateOverageCharge(mock.Anything, mock.Anything, mock.Anything, testMonth, 120.0, 120.0).
			Return(&billinghandlers.ProviderInvoice{Id: "in_ov_1", Status: billinghandlers.ProviderInvoiceOpen}, nil)
		mockOverage.EXPECT().RecordAttempt(1, testMonth, "in_ov_1", mock.Anything).Return(nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateCollected, result)

		mockOverage.AssertExpectations(t)
		mockPayment.AssertExpectations(t)
	})

	t.Run("Should only charge what was not yet collected on a later crossing", func(t *testing.T) {
		t.Parallel()

		state := freshState()
		state.LastCollectedOverageUsd = 120
		state.NextCollectAtOverageUsd = 200

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 205}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(state, nil)
		mockPayment.EXPECT().CreateOverageCharge(mock.Anything, mock.Anything, mock.Anything, testMonth, 85.0, 205.0).
			Return(&billinghandlers.ProviderInvoice{Id: "in_ov_2", Status: billinghandlers.ProviderInvoiceOpen}, nil)
		mockOverage.EXPECT().RecordAttempt(1, testMonth, "in_ov_2", mock.Anything).Return(nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateCollected, result)
	})

	t.Run("Should pause the workspace before charging when the hard cap is hit", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}
		mockLease := &mocks.LeaseRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 250}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)
		mockWorkspace.EXPECT().SetStatus(1, models.WorkspaceStatusPaused, models.PausedReasonHardCap, mock.Anything).Return(nil)
		mockTelephony.EXPECT().UnbindNumbers(1).Return(nil)
		mockLease.EXPECT().ListActiveCallIds(1).Return([]string{"call-1"}, nil)
		mockTelephony.EXPECT().HangupChannel("call-1").Return(nil)
		mockAudit.EXPECT().Append(mock.Anything).Return(nil)

		orchestrator := workspace.NewService(mockWorkspace, mockLease, mockAudit, mockTelephony)
		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, orchestrator)
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateBlocked, result)

		mockPayment.AssertNotCalled(t, "CreateOverageCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		mockTelephony.AssertExpectations(t)
	})

	t.Run("Should not re-charge while a collection is awaiting confirmation", func(t *testing.T) {
		t.Parallel()

		// exactly what RecordAttempt leaves behind: the boundary and the
		// collected amount only move once the provider confirms
		attemptAt := time.Now().Add(-5 * time.Minute)
		state := freshState()
		state.LastCollectStatus = models.CollectStatusPending
		state.LastCollectAttemptAt = &attemptAt
		state.LastCollectInvoiceRef = "in_ov_1"

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 120}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(state, nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateSkipped, result)

		mockPayment.AssertNotCalled(t, "CreateOverageCharge", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should retry the charge when a pending attempt has gone stale", func(t *testing.T) {
		t.Parallel()

		attemptAt := time.Now().Add(-2 * time.Hour)
		state := freshState()
		state.LastCollectStatus = models.CollectStatusPending
		state.LastCollectAttemptAt = &attemptAt
		state.LastCollectInvoiceRef = "in_ov_lost"

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 120}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(state, nil)
		mockPayment.EXPECT().CreateOverageCharge(mock.Anything, mock.Anything, mock.Anything, testMonth, 120.0, 120.0).
			Return(&billinghandlers.ProviderInvoice{Id: "in_ov_retry", Status: billinghandlers.ProviderInvoiceOpen}, nil)
		mockOverage.EXPECT().RecordAttempt(1, testMonth, "in_ov_retry", mock.Anything).Return(nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateCollected, result)

		mockOverage.AssertExpectations(t)
	})

	t.Run("Should create the month's state from plan parameters on first evaluation", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 10}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(nil, nil)
		mockWorkspace.EXPECT().GetServicePlans().Return([]models.ServicePlan{
			{Id: 2, KeyName: "pro", ConcurrentCalls: 10, OverageThresholdUsd: 100, HardCapUsd: 500},
		}, nil)
		mockOverage.EXPECT().CreateState(mock.Anything).Run(func(state *models.OverageState) {
			assert.Equal(t, 100.0, state.ThresholdUsd)
			assert.Equal(t, 500.0, state.HardCapUsd)
			assert.Equal(t, 100.0, state.NextCollectAtOverageUsd)
		}).Return(freshState(), nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateSkipped, result)

		mockOverage.AssertExpectations(t)
	})

	t.Run("Should warn the owner once when approaching the cap", func(t *testing.T) {
		t.Parallel()

		state := freshState()
		state.LastCollectedOverageUsd = 200
		state.NextCollectAtOverageUsd = 300

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 210}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(state, nil)
		mockOverage.EXPECT().SetCapWarningSent(1, testMonth).Return(nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, &mocks.PaymentRepository{}, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.NoError(t, err)
		assert.Equal(t, EvaluateSkipped, result)

		mockOverage.AssertExpectations(t)
	})

	t.Run("Should record a failed attempt when the provider rejects the charge", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockUsage := &mocks.UsageRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockUsage.EXPECT().GetInvoicePreview(1, testMonth).Return(&models.InvoicePreview{OverageUsd: 120}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockPayment.EXPECT().CreateOverageCharge(mock.Anything, mock.Anything, mock.Anything, testMonth, 120.0, 120.0).
			Return(nil, errors.New("card declined"))
		mockOverage.EXPECT().MarkAttemptFailed(1, testMonth).Return(nil)

		service := NewService(mockOverage, mockWorkspace, mockUsage, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))
		result, err := service.EvaluateAndCollect(testOverageBillingParams(), 1, testMonth)
		assert.Error(t, err)
		assert.Equal(t, EvaluateError, result)

		mockOverage.AssertExpectations(t)
	})
}

func TestReconcileCharge(t *testing.T) {
	t.Parallel()

	t.Run("Should advance the boundary past the snapshot once payment confirms", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}

		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockOverage.EXPECT().ConfirmCollection(1, testMonth, 120.0, 200.0).Return(nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, &mocks.PaymentRepository{}, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.paid", map[string]interface{}{
			"id":       "in_ov_1",
			"status":   "paid",
			"metadata": overageMetadata("1", testMonth, "120"),
		})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.True(t, handled)

		mockOverage.AssertExpectations(t)
	})

	t.Run("Should resolve a thin payload by fetching the invoice before confirming", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockPayment.EXPECT().GetInvoice(mock.Anything, "in_ov_1").
			Return(&billinghandlers.ProviderInvoice{
				Id:     "in_ov_1",
				Status: billinghandlers.ProviderInvoicePaid,
				Metadata: map[string]string{
					billinghandlers.MetadataChargeType:  billinghandlers.ChargeTypeOverage,
					billinghandlers.MetadataWorkspaceId: "1",
					billinghandlers.MetadataMonth:       testMonth,
					billinghandlers.MetadataSnapshotUsd: "120",
				},
			}, nil)
		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockOverage.EXPECT().ConfirmCollection(1, testMonth, 120.0, 200.0).Return(nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.paid", map[string]interface{}{"id": "in_ov_1"})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.True(t, handled)

		mockOverage.AssertExpectations(t)
		mockPayment.AssertExpectations(t)
	})

	t.Run("Should skip already confirmed boundaries when a snapshot jumps several thresholds", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}

		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockOverage.EXPECT().ConfirmCollection(1, testMonth, 350.0, 400.0).Return(nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, &mocks.PaymentRepository{}, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.payment_succeeded", map[string]interface{}{
			"id":       "in_ov_3",
			"status":   "paid",
			"metadata": overageMetadata("1", testMonth, "350"),
		})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.True(t, handled)

		mockOverage.AssertExpectations(t)
	})

	t.Run("Should not move the boundary backwards for a stale confirmation", func(t *testing.T) {
		t.Parallel()

		state := freshState()
		state.LastCollectedOverageUsd = 200
		state.NextCollectAtOverageUsd = 300

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}

		mockOverage.EXPECT().GetState(1, testMonth).Return(state, nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, &mocks.PaymentRepository{}, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.paid", map[string]interface{}{
			"id":       "in_ov_0",
			"status":   "paid",
			"metadata": overageMetadata("1", testMonth, "120"),
		})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.True(t, handled)

		mockOverage.AssertNotCalled(t, "ConfirmCollection", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should mark the attempt failed and pause past due on a failed payment", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockAudit := &mocks.AuditRepository{}
		mockTelephony := &mocks.TelephonyHandler{}

		mockOverage.EXPECT().GetState(1, testMonth).Return(freshState(), nil)
		mockOverage.EXPECT().MarkAttemptFailed(1, testMonth).Return(nil)
		mockWorkspace.EXPECT().GetSettings(1).Return(&models.WorkspaceSettings{WorkspaceId: 1, Status: models.WorkspaceStatusActive}, nil)
		mockWorkspace.EXPECT().SetStatus(1, models.WorkspaceStatusPaused, models.PausedReasonPastDue, mock.Anything).Return(nil)
		mockWorkspace.EXPECT().GetWorkspaceFromDB(1).Return(testOverageWorkspace(), nil)
		mockWorkspace.EXPECT().GetUserFromDB(101).Return(testOverageUser(), nil)
		mockTelephony.EXPECT().UnbindNumbers(1).Return(nil)
		mockAudit.EXPECT().Append(mock.Anything).Return(nil)

		orchestrator := workspace.NewService(mockWorkspace, &mocks.LeaseRepository{}, mockAudit, mockTelephony)
		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, &mocks.PaymentRepository{}, orchestrator)

		event := overageEvent("invoice.payment_failed", map[string]interface{}{
			"id":       "in_ov_1",
			"status":   "open",
			"metadata": overageMetadata("1", testMonth, "120"),
		})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.True(t, handled)

		mockOverage.AssertExpectations(t)
		mockTelephony.AssertExpectations(t)
	})

	t.Run("Should hand back events that are not overage charges", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, &mocks.PaymentRepository{}, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.paid", map[string]interface{}{
			"id":     "in_monthly",
			"status": "paid",
			"metadata": map[string]interface{}{
				billinghandlers.MetadataWorkspaceId: "1",
				billinghandlers.MetadataMonth:       testMonth,
			},
		})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.False(t, handled)

		mockOverage.AssertNotCalled(t, "GetState", mock.Anything, mock.Anything)
	})

	t.Run("Should hand back a thin payload whose fetched invoice is not an overage charge", func(t *testing.T) {
		t.Parallel()

		mockOverage := &mocks.OverageRepository{}
		mockWorkspace := &mocks.WorkspaceRepository{}
		mockPayment := &mocks.PaymentRepository{}

		mockPayment.EXPECT().GetInvoice(mock.Anything, "in_monthly").
			Return(&billinghandlers.ProviderInvoice{
				Id:     "in_monthly",
				Status: billinghandlers.ProviderInvoicePaid,
				Metadata: map[string]string{
					billinghandlers.MetadataWorkspaceId: "1",
					billinghandlers.MetadataMonth:       testMonth,
				},
			}, nil)

		service := NewService(mockOverage, mockWorkspace, &mocks.UsageRepository{}, mockPayment, overageOrchestrator(mockWorkspace, &mocks.LeaseRepository{}, &mocks.TelephonyHandler{}))

		event := overageEvent("invoice.paid", map[string]interface{}{"id": "in_monthly"})
		handled, err := service.ReconcileCharge(testOverageBillingParams(), event)
		assert.NoError(t, err)
		assert.False(t, handled)

		mockOverage.AssertNotCalled(t, "GetState", mock.Anything, mock.Anything)
	})
}
