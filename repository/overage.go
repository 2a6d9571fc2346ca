package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"denku.com/billing/models"
)

type OverageRepository interface {
	GetState(workspaceId int, month string) (*models.OverageState, error)
	CreateState(state *models.OverageState) (*models.OverageState, error)
	RecordAttempt(workspaceId int, month string, invoiceRef string, at time.Time) error
	ConfirmCollection(workspaceId int, month string, collectedUsd float64, nextCollectUsd float64) error
	MarkAttemptFailed(workspaceId int, month string) error
	SetCapWarningSent(workspaceId int, month string) error
}

type OverageService struct {
	db *sql.DB
}

func NewOverageRepository(db *sql.DB) OverageRepository {
	return &OverageService{db: db}
}

const overageColumns = `id, workspace_id, billing_month, threshold_usd, hard_cap_usd, last_collected_overage_usd, next_collect_at_overage_usd, last_collect_attempt_at, COALESCE(last_collect_status, ''), COALESCE(last_collect_invoice_ref, ''), cap_warning_sent`

// GetState returns nil with no error when the month has no row yet.
func (os *OverageService) GetState(workspaceId int, month string) (*models.OverageState, error) {
	row := os.db.QueryRow("SELECT "+overageColumns+" FROM overage_state WHERE workspace_id = ? AND billing_month = ?", workspaceId, month)
	var state models.OverageState
	err := row.Scan(&state.Id, &state.WorkspaceId, &state.BillingMonth, &state.ThresholdUsd, &state.HardCapUsd,
		&state.LastCollectedOverageUsd, &state.NextCollectAtOverageUsd, &state.LastCollectAttemptAt,
		&state.LastCollectStatus, &state.LastCollectInvoiceRef, &state.CapWarningSent)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not get overage state")
	}
	return &state, nil
}

// CreateState inserts the month's row with plan-derived defaults. INSERT
// IGNORE keeps concurrent first evaluations from racing each other.
func (os *OverageService) CreateState(state *models.OverageState) (*models.OverageState, error) {
	_, err := os.db.Exec(
		`INSERT IGNORE INTO overage_state (workspace_id, billing_month, threshold_usd, hard_cap_usd, last_collected_overage_usd, next_collect_at_overage_usd, cap_warning_sent, created_at, updated_at)
		VALUES (?, ?, ?, ?, 0, ?, 0, NOW(), NOW())`,
		state.WorkspaceId, state.BillingMonth, state.ThresholdUsd, state.HardCapUsd, state.NextCollectAtOverageUsd)
	if err != nil {
		return nil, errors.Wrap(err, "could not create overage state")
	}
	return os.GetState(state.WorkspaceId, state.BillingMonth)
}

func (os *OverageService) RecordAttempt(workspaceId int, month string, invoiceRef string, at time.Time) error {
	_, err := os.db.Exec(
		"UPDATE overage_state SET last_collect_attempt_at = ?, last_collect_status = ?, last_collect_invoice_ref = ?, updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		at, models.CollectStatusPending, invoiceRef, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not record collection attempt")
	}
	return nil
}

// ConfirmCollection advances the collection boundary. Only called once the
// provider has confirmed payment, never at attempt time.
func (os *OverageService) ConfirmCollection(workspaceId int, month string, collectedUsd float64, nextCollectUsd float64) error {
	_, err := os.db.Exec(
		"UPDATE overage_state SET last_collected_overage_usd = ?, next_collect_at_overage_usd = ?, last_collect_status = ?, updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		collectedUsd, nextCollectUsd, models.CollectStatusCollected, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not confirm collection")
	}
	return nil
}

func (os *OverageService) MarkAttemptFailed(workspaceId int, month string) error {
	_, err := os.db.Exec(
		"UPDATE overage_state SET last_collect_status = ?, updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		models.CollectStatusFailed, workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not mark collection failed")
	}
	return nil
}

func (os *OverageService) SetCapWarningSent(workspaceId int, month string) error {
	_, err := os.db.Exec(
		"UPDATE overage_state SET cap_warning_sent = 1, updated_at = NOW() WHERE workspace_id = ? AND billing_month = ?",
		workspaceId, month)
	if err != nil {
		return errors.Wrap(err, "could not flag cap warning")
	}
	return nil
}
