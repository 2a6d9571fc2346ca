package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"denku.com/billing/models"
)

type AuditRepository interface {
	Append(event *models.AuditEvent) error
	ListOlderThan(cutoff time.Time, limit int) ([]models.AuditEvent, error)
	DeleteArchived(cutoff time.Time, maxId int) (int64, error)
}

type AuditService struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) AuditRepository {
	return &AuditService{db: db}
}

func (as *AuditService) Append(event *models.AuditEvent) error {
	_, err := as.db.Exec(
		"INSERT INTO audit_events (workspace_id, action, actor, before_state, after_state, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		event.WorkspaceId, event.Action, event.Actor, event.BeforeState, event.AfterState, time.Now())
	if err != nil {
		return errors.Wrap(err, "could not append audit event")
	}
	return nil
}

func (as *AuditService) ListOlderThan(cutoff time.Time, limit int) ([]models.AuditEvent, error) {
	rows, err := as.db.Query(
		"SELECT id, workspace_id, action, actor, before_state, after_state, created_at FROM audit_events WHERE created_at < ? ORDER BY id LIMIT ?",
		cutoff, limit)
	if err != nil {
		return nil, errors.Wrap(err, "could not list audit events")
	}
	defer rows.Close()
	var events []models.AuditEvent
	for rows.Next() {
		var event models.AuditEvent
		err := rows.Scan(&event.Id, &event.WorkspaceId, &event.Action, &event.Actor, &event.BeforeState, &event.AfterState, &event.CreatedAt)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// DeleteArchived removes only rows the caller has already uploaded: the id
// bound keeps a concurrent append from being deleted unarchived.
func (as *AuditService) DeleteArchived(cutoff time.Time, maxId int) (int64, error) {
	res, err := as.db.Exec("DELETE FROM audit_events WHERE created_at < ? AND id <= ?", cutoff, maxId)
	if err != nil {
		return 0, errors.Wrap(err, "could not delete audit events")
	}
	return res.RowsAffected()
}
