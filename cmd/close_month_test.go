package cmd

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	billinghandlers "denku.com/billing/handlers/billing"
	"denku.com/billing/internal/invoicing"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/mocks"
	"denku.com/billing/models"
	utils "denku.com/billing/utils"
)

func testCloseMonthService(mockRun *mocks.InvoiceRunRepository, mockPayment *mocks.PaymentRepository) *invoicing.Service {
	mockWorkspace := &mocks.WorkspaceRepository{}
	orchestrator := workspace.NewService(mockWorkspace, &mocks.LeaseRepository{}, &mocks.AuditRepository{}, &mocks.TelephonyHandler{})
	return invoicing.NewService(mockRun, mockWorkspace, &mocks.UsageRepository{}, mockPayment, orchestrator)
}

func expectBillingParamQueries(mockSql sqlmock.Sqlmock) {
	mockSql.ExpectQuery("SELECT payment_gateway FROM customizations").
		WillReturnRows(sqlmock.NewRows([]string{"payment_gateway"}).
			AddRow("stripe"))

	mockSql.ExpectQuery("SELECT stripe_private_key FROM api_credentials").
		WillReturnRows(sqlmock.NewRows([]string{"stripe_private_key"}).
			AddRow("test_stripe_key"))
}

func TestCloseMonth(t *testing.T) {
	t.Parallel()

	month := utils.PreviousBillingMonth(time.Now())

	t.Run("Should fail close month job due unable to get workspaces", func(t *testing.T) {
		t.Parallel()

		mockRun := &mocks.InvoiceRunRepository{}
		mockPayment := &mocks.PaymentRepository{}

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)

		defer db.Close()

		expectBillingParamQueries(mockSql)

		queryError := errors.New("failed to get workspaces")
		mockSql.ExpectQuery("SELECT id, creator_id FROM workspaces").
			WillReturnError(queryError)

		job := NewCloseMonthJob(db, testCloseMonthService(mockRun, mockPayment))
		err = job.CloseMonth()
		assert.Error(t, err)
		assert.Equal(t, queryError, err)

		err = mockSql.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("Should finalize the drafted invoice for each workspace", func(t *testing.T) {
		t.Parallel()

		mockRun := &mocks.InvoiceRunRepository{}
		mockPayment := &mocks.PaymentRepository{}

		run := &models.InvoiceRun{
			Id:              1,
			WorkspaceId:     1,
			BillingMonth:    month,
			Status:          models.InvoiceRunStatusDraft,
			StripeInvoiceId: "in_1",
		}

		mockRun.EXPECT().EnsureRun(1, month).Return(run, nil)
		mockRun.EXPECT().TryAcquireLock(1, month, mock.Anything, models.InvoiceRunLockStaleness).Return(true, nil)
		mockRun.EXPECT().GetRun(1, month).Return(run, nil)
		mockRun.EXPECT().MarkFinalized(1, month, mock.Anything).Return(nil)
		mockRun.EXPECT().ReleaseLock(1, month, mock.Anything).Return(nil)

		mockPayment.EXPECT().GetInvoice(mock.Anything, "in_1").
			Return(&billinghandlers.ProviderInvoice{Id: "in_1", Status: billinghandlers.ProviderInvoiceDraft}, nil)
		mockPayment.EXPECT().FinalizeInvoice(mock.Anything, "in_1").
			Return(&billinghandlers.ProviderInvoice{Id: "in_1", Status: billinghandlers.ProviderInvoiceOpen}, nil)

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)

		defer db.Close()

		expectBillingParamQueries(mockSql)

		mockSql.ExpectQuery("SELECT id, creator_id FROM workspaces").
			WillReturnRows(sqlmock.NewRows([]string{"id", "creator_id"}).
				AddRow(1, 101))

		job := NewCloseMonthJob(db, testCloseMonthService(mockRun, mockPayment))
		err = job.CloseMonth()
		assert.NoError(t, err)

		mockRun.AssertExpectations(t)
		mockPayment.AssertExpectations(t)

		err = mockSql.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("Should skip a workspace whose run is locked by another worker", func(t *testing.T) {
		t.Parallel()

		mockRun := &mocks.InvoiceRunRepository{}
		mockPayment := &mocks.PaymentRepository{}

		run := &models.InvoiceRun{Id: 1, WorkspaceId: 1, BillingMonth: month, Status: models.InvoiceRunStatusDraft}

		mockRun.EXPECT().EnsureRun(1, month).Return(run, nil)
		mockRun.EXPECT().TryAcquireLock(1, month, mock.Anything, models.InvoiceRunLockStaleness).Return(false, nil)

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)

		defer db.Close()

		expectBillingParamQueries(mockSql)

		mockSql.ExpectQuery("SELECT id, creator_id FROM workspaces").
			WillReturnRows(sqlmock.NewRows([]string{"id", "creator_id"}).
				AddRow(1, 101))

		job := NewCloseMonthJob(db, testCloseMonthService(mockRun, mockPayment))
		err = job.CloseMonth()
		assert.NoError(t, err)

		mockRun.AssertNotCalled(t, "GetRun", mock.Anything, mock.Anything)
		mockRun.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything, mock.Anything)

		err = mockSql.ExpectationsWereMet()
		assert.NoError(t, err)
	})
}
