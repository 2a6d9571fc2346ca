package repository

import (
	"database/sql"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"

	"denku.com/billing/models"
)

// LeaseInsertResult is the outcome of the atomic conditional insert.
type LeaseInsertResult int

const (
	LeaseInserted LeaseInsertResult = iota
	LeaseLimitReached
	LeaseAlreadyHeld
)

type LeaseRepository interface {
	InsertLeaseIfBelowLimit(lease *models.CallLease, limit int) (LeaseInsertResult, error)
	DeleteLease(workspaceId int, callId string) error
	DeleteExpiredForWorkspace(workspaceId int, now time.Time) (int64, error)
	DeleteAllExpired(now time.Time) (int64, error)
	CountActive(workspaceId int, now time.Time) (int, error)
	ListActiveCallIds(workspaceId int) ([]string, error)
}

type LeaseService struct {
	db *sql.DB
}

func NewLeaseRepository(db *sql.DB) LeaseRepository {
	return &LeaseService{db: db}
}

// InsertLeaseIfBelowLimit is the admission decision. The capacity check and
// the insert run as one statement so concurrent acquirers for the same
// workspace serialize on the store, and UNIQUE(call_id) absorbs duplicate
// webhook delivery.
func (ls *LeaseService) InsertLeaseIfBelowLimit(lease *models.CallLease, limit int) (LeaseInsertResult, error) {
	res, err := ls.db.Exec(
		`INSERT INTO call_leases (workspace_id, call_id, agent_id, acquired_at, ttl_secs, expires_at)
		SELECT ?, ?, ?, ?, ?, ? FROM dual
		WHERE (SELECT COUNT(*) FROM call_leases AS held WHERE held.workspace_id = ? AND held.expires_at > ?) < ?`,
		lease.WorkspaceId, lease.CallId, lease.AgentId, lease.AcquiredAt, lease.TTLSecs, lease.ExpiresAt,
		lease.WorkspaceId, lease.AcquiredAt, limit)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			// duplicate call id: this call already holds its lease
			return LeaseAlreadyHeld, nil
		}
		return 0, errors.Wrap(err, "could not insert lease")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "could not read lease insert result")
	}
	if affected == 0 {
		return LeaseLimitReached, nil
	}
	return LeaseInserted, nil
}

func (ls *LeaseService) DeleteLease(workspaceId int, callId string) error {
	_, err := ls.db.Exec("DELETE FROM call_leases WHERE workspace_id = ? AND call_id = ?", workspaceId, callId)
	if err != nil {
		return errors.Wrap(err, "could not delete lease")
	}
	return nil
}

func (ls *LeaseService) DeleteExpiredForWorkspace(workspaceId int, now time.Time) (int64, error) {
	res, err := ls.db.Exec("DELETE FROM call_leases WHERE workspace_id = ? AND expires_at <= ?", workspaceId, now)
	if err != nil {
		return 0, errors.Wrap(err, "could not reclaim workspace leases")
	}
	return res.RowsAffected()
}

func (ls *LeaseService) DeleteAllExpired(now time.Time) (int64, error) {
	res, err := ls.db.Exec("DELETE FROM call_leases WHERE expires_at <= ?", now)
	if err != nil {
		return 0, errors.Wrap(err, "could not reclaim expired leases")
	}
	return res.RowsAffected()
}

func (ls *LeaseService) CountActive(workspaceId int, now time.Time) (int, error) {
	row := ls.db.QueryRow("SELECT COUNT(*) FROM call_leases WHERE workspace_id = ? AND expires_at > ?", workspaceId, now)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.Wrap(err, "could not count leases")
	}
	return count, nil
}

func (ls *LeaseService) ListActiveCallIds(workspaceId int) ([]string, error) {
	rows, err := ls.db.Query("SELECT call_id FROM call_leases WHERE workspace_id = ? AND expires_at > ?", workspaceId, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "could not list active leases")
	}
	defer rows.Close()
	var callIds []string
	for rows.Next() {
		var callId string
		if err := rows.Scan(&callId); err != nil {
			return nil, err
		}
		callIds = append(callIds, callId)
	}
	return callIds, rows.Err()
}
