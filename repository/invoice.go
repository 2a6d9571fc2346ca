package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"denku.com/billing/models"
)

type InvoiceRunRepository interface {
	EnsureRun(workspaceId int, month string) (*models.InvoiceRun, error)
	GetRun(workspaceId int, month string) (*models.InvoiceRun, error)
	GetRunByProviderInvoice(providerInvoiceId string) (*models.InvoiceRun, error)
	TryAcquireLock(workspaceId int, month string, token string, staleness time.Duration) (bool, error)
	ReleaseLock(workspaceId int, month string, token string) error
	SetDraft(workspaceId int, month string, providerInvoiceId string, totalCents int64) error
	SetStatus(workspaceId int, month string, status string) error
	SetStatusByProviderInvoice(providerInvoiceId string, status string) error
	MarkFinalized(workspaceId int, month string, at time.Time) error
	MarkError(workspaceId int, month string, message string) error
	ListErrored() ([]models.InvoiceRun, error)
}

type InvoiceRunService struct {
	db *sql.DB
}

func NewInvoiceRunRepository(db *sql.DB) InvoiceRunRepository {
	return &InvoiceRunService{db: db}
}

const invoiceRunColumns = `id, workspace_id, billing_month, status, COALESCE(stripe_invoice_id, ''), estimated_total_cents, COALESCE(lock_token, ''), locked_at, finalized_at, sent_at, COALESCE(error_message, '')`

func (is *InvoiceRunService) scanRun(row *sql.Row) (*models.InvoiceRun, error) {
	var run models.InvoiceRun
	err := row.Scan(&run.Id, &run.WorkspaceId, &run.BillingMonth, &run.Status, &run.StripeInvoiceId,
		&run.EstimatedTotalCents, &run.LockToken, &run.LockedAt, &run.FinalizedAt, &run.SentAt, &run.ErrorMessage)
	if err != nil {
		return nil, err
	}
	return &run, nil
}

// EnsureRun lazily creates the (workspace, month) row. INSERT IGNORE makes
// it safe under competing workers; the UNIQUE key keeps one row per month.
func (is *InvoiceRunService) EnsureRun(workspaceId int, month string) (*models.InvoiceRun, error) {
	_, err := is.db.Exec(
		"INSERT IGNORE INTO invoice_runs (workspace_id, billing_month, status, estimated_total_cents, created_at, updated_at) VALUES (?, ?, ?, 0, NOW(), NOW())",
		workspaceId, month, models.InvoiceRunStatusDraft)
	if err != nil {
		return nil, errors.Wrap(err, "could not create invoice run")
	}
	return is.GetRun(workspaceId, month)
}

func (is *InvoiceRunService) GetRun(workspaceId int, month string) (*models.InvoiceRun, error) {
	row := is.db.QueryRow("SELECT "+invoiceRunColumns+" FROM invoice_runs WHERE workspace_id = ? AND billing_month = ?", workspaceId, month)
	run, err := is.scanRun(row)
	if err != nil {
		return nil, errors.Wrap(err, "could not get invoice run")
	}
	return run, nil
}

func (is *InvoiceRunService) GetRunByProviderInvoice(providerInvoiceId string) (*models.InvoiceRun, error) {
	row := is.db.QueryRow("SELECT "+invoiceRunColumns+" FROM invoice_runs WHERE stripe_invoice_id = ?", providerInvoiceId)
	run, err := is.scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not get invoice run by provider id")
	}
	return run, nil
}

// TryAcquireLock writes the caller's token onto the row if the lock is free
// or older than the staleness window. This is a cooperative lock: the
// operations it guards are idempotent, so preempting a stale holder is safe.
func (is *InvoiceRunService) TryAcquireLock(workspaceId int, month string, token string, staleness time.Duration) (bool, error) {
	staleBefore := time.Now().Add(-staleness)
	res, err := is.db.Exec(
		"UPDATE invoice_runs SET lock_token = ?, locked_at = ? WHERE workspace_id = ? AND billing_month = ? AND (lock_token IS NULL OR lock_token = '' OR locked_at < ?)",
		token, time.Now(), workspaceId, month, staleBefore)
	if err != nil {
		return false, errors.Wrap(err, "could not acquire invoice run lock")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}

// ReleaseLock clears the lock only when the stored token is still ours, so
// a slow caller cannot clobber a newer holder's lock.
func (is *InvoiceRunService) ReleaseLock(workspaceId int, month string, token string) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET lock_token = '', locked_at = NULL WHERE workspace_id = ? AND billing_month = ? AND lock_token = ?",
		workspaceId, month, token)
	if err != nil {
		return errors.Wrap(err, "could not release invoice run lock")
	}
	return nil
}

func (is *InvoiceRunService) SetDraft(workspaceId int, month string, providerInvoiceId string, totalCents int64) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET status = ?, stripe_invoice_id = ?, estimated_total_cents = ?, error_message = '', updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		models.InvoiceRunStatusDraft, providerInvoiceId, totalCents, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not record draft invoice")
	}
	return nil
}

func (is *InvoiceRunService) SetStatus(workspaceId int, month string, status string) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET status = ?, error_message = '', updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		status, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not update invoice run status")
	}
	return nil
}

// SetStatusByProviderInvoice never overwrites a terminal status, so
// out-of-order provider deliveries cannot regress a settled run.
func (is *InvoiceRunService) SetStatusByProviderInvoice(providerInvoiceId string, status string) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET status = ?, updated_at = NOW() WHERE stripe_invoice_id = ? AND status NOT IN ('paid', 'void', 'uncollectible')",
		status, providerInvoiceId)
	if err != nil {
		return errors.Wrap(err, "could not reconcile invoice run status")
	}
	return nil
}

func (is *InvoiceRunService) MarkFinalized(workspaceId int, month string, at time.Time) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET status = ?, finalized_at = ?, sent_at = ?, error_message = '', updated_at = NOW() WHERE workspace_id = ? AND billing_month = ? AND status NOT IN ('paid', 'void', 'uncollectible')",
		models.InvoiceRunStatusOpen, at, at, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not mark invoice run finalized")
	}
	return nil
}

func (is *InvoiceRunService) MarkError(workspaceId int, month string, message string) error {
	_, err := is.db.Exec(
		"UPDATE invoice_runs SET status = ?, error_message = ?, updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		models.InvoiceRunStatusError, message, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not mark invoice run errored")
	}
	return nil
}

func (is *InvoiceRunService) ListErrored() ([]models.InvoiceRun, error) {
	rows, err := is.db.Query("SELECT " + invoiceRunColumns + " FROM invoice_runs WHERE status = 'error'")
	if err != nil {
		return nil, errors.Wrap(err, "could not list errored invoice runs")
	}
	defer rows.Close()
	var runs []models.InvoiceRun
	for rows.Next() {
		var run models.InvoiceRun
		err := rows.Scan(&run.Id, &run.WorkspaceId, &run.BillingMonth, &run.Status, &run.StripeInvoiceId,
			&run.EstimatedTotalCents, &run.LockToken, &run.LockedAt, &run.FinalizedAt, &run.SentAt, &run.ErrorMessage)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
