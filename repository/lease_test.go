package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"

	"denku.com/billing/models"
)

func testLease() *models.CallLease {
	now := time.Now()
	return &models.CallLease{
		WorkspaceId: 1,
		CallId:      "call-abc",
		AgentId:     "agent-7",
		AcquiredAt:  now,
		TTLSecs:     900,
		ExpiresAt:   now.Add(15 * time.Minute),
	}
}

func TestInsertLeaseIfBelowLimit(t *testing.T) {
	t.Parallel()

	insertQuery := regexp.QuoteMeta("INSERT INTO call_leases")

	t.Run("Should insert lease when workspace is below its limit", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		lease := testLease()
		mockSql.ExpectExec(insertQuery).
			WithArgs(lease.WorkspaceId, lease.CallId, lease.AgentId, lease.AcquiredAt, lease.TTLSecs, lease.ExpiresAt,
				lease.WorkspaceId, lease.AcquiredAt, 10).
			WillReturnResult(sqlmock.NewResult(1, 1))

		repo := NewLeaseRepository(db)
		result, err := repo.InsertLeaseIfBelowLimit(lease, 10)
		assert.NoError(t, err)
		assert.Equal(t, LeaseInserted, result)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should report limit reached when the conditional insert affects no rows", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		lease := testLease()
		mockSql.ExpectExec(insertQuery).
			WithArgs(lease.WorkspaceId, lease.CallId, lease.AgentId, lease.AcquiredAt, lease.TTLSecs, lease.ExpiresAt,
				lease.WorkspaceId, lease.AcquiredAt, 2).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewLeaseRepository(db)
		result, err := repo.InsertLeaseIfBelowLimit(lease, 2)
		assert.NoError(t, err)
		assert.Equal(t, LeaseLimitReached, result)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should treat a duplicate call id as already held", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		lease := testLease()
		mockSql.ExpectExec(insertQuery).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'call-abc' for key 'call_id'"})

		repo := NewLeaseRepository(db)
		result, err := repo.InsertLeaseIfBelowLimit(lease, 10)
		assert.NoError(t, err)
		assert.Equal(t, LeaseAlreadyHeld, result)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should surface store errors other than duplicates", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(insertQuery).
			WillReturnError(errors.New("connection gone"))

		repo := NewLeaseRepository(db)
		_, err = repo.InsertLeaseIfBelowLimit(testLease(), 10)
		assert.Error(t, err)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestDeleteLease(t *testing.T) {
	t.Parallel()

	t.Run("Should delete the lease for a call", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM call_leases WHERE workspace_id = ? AND call_id = ?")).
			WithArgs(1, "call-abc").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewLeaseRepository(db)
		assert.NoError(t, repo.DeleteLease(1, "call-abc"))

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should not error when the lease is already gone", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM call_leases WHERE workspace_id = ? AND call_id = ?")).
			WithArgs(1, "call-gone").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewLeaseRepository(db)
		assert.NoError(t, repo.DeleteLease(1, "call-gone"))

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestDeleteExpired(t *testing.T) {
	t.Parallel()

	t.Run("Should reclaim expired leases for one workspace", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM call_leases WHERE workspace_id = ? AND expires_at <= ?")).
			WithArgs(1, now).
			WillReturnResult(sqlmock.NewResult(0, 3))

		repo := NewLeaseRepository(db)
		reclaimed, err := repo.DeleteExpiredForWorkspace(1, now)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), reclaimed)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})

	t.Run("Should reclaim expired leases across all workspaces", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mockSql.ExpectExec(regexp.QuoteMeta("DELETE FROM call_leases WHERE expires_at <= ?")).
			WithArgs(now).
			WillReturnResult(sqlmock.NewResult(0, 7))

		repo := NewLeaseRepository(db)
		reclaimed, err := repo.DeleteAllExpired(now)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), reclaimed)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestCountActive(t *testing.T) {
	t.Parallel()

	t.Run("Should count only unexpired leases", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		now := time.Now()
		mockSql.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM call_leases WHERE workspace_id = ? AND expires_at > ?")).
			WithArgs(2, now).
			WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(4))

		repo := NewLeaseRepository(db)
		count, err := repo.CountActive(2, now)
		assert.NoError(t, err)
		assert.Equal(t, 4, count)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}

func TestListActiveCallIds(t *testing.T) {
	t.Parallel()

	t.Run("Should list the call ids holding leases", func(t *testing.T) {
		t.Parallel()

		db, mockSql, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		mockSql.ExpectQuery(regexp.QuoteMeta("SELECT call_id FROM call_leases WHERE workspace_id = ? AND expires_at > ?")).
			WithArgs(1, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"call_id"}).
				AddRow("call-1").
				AddRow("call-2"))

		repo := NewLeaseRepository(db)
		callIds, err := repo.ListActiveCallIds(1)
		assert.NoError(t, err)
		assert.Equal(t, []string{"call-1", "call-2"}, callIds)

		assert.NoError(t, mockSql.ExpectationsWereMet())
	})
}
