package repository

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"denku.com/billing/models"
)

// ErrWorkspaceNotFound is returned by the tenant resolver when no workspace
// owns the number a call event arrived on.
var ErrWorkspaceNotFound = errors.New("workspace not found")

type WorkspaceRepository interface {
	GetWorkspaceFromDB(id int) (*models.Workspace, error)
	GetUserFromDB(id int) (*models.User, error)
	GetSettings(workspaceId int) (*models.WorkspaceSettings, error)
	SetStatus(workspaceId int, status string, reason string, pausedAt *time.Time) error
	GetServicePlans() ([]models.ServicePlan, error)
	ResolveWorkspaceByNumber(number string) (int, error)
}

type WorkspaceService struct {
	db *sql.DB
}

func NewWorkspaceRepository(db *sql.DB) WorkspaceRepository {
	return &WorkspaceService{db: db}
}

func (ws *WorkspaceService) GetWorkspaceFromDB(id int) (*models.Workspace, error) {
	row := ws.db.QueryRow("SELECT id, creator_id, name, plan, extra_call_slots FROM workspaces WHERE id = ?", id)
	var workspace models.Workspace
	err := row.Scan(&workspace.Id, &workspace.CreatorId, &workspace.Name, &workspace.Plan, &workspace.ExtraCallSlots)
	if err != nil {
		return nil, errors.Wrap(err, "could not get workspace")
	}
	return &workspace, nil
}

func (ws *WorkspaceService) GetUserFromDB(id int) (*models.User, error) {
	row := ws.db.QueryRow("SELECT id, username, first_name, last_name, email, stripe_id FROM users WHERE id = ?", id)
	var user models.User
	err := row.Scan(&user.Id, &user.Username, &user.FirstName, &user.LastName, &user.Email, &user.StripeId)
	if err != nil {
		return nil, errors.Wrap(err, "could not get user")
	}
	return &user, nil
}

// GetSettings returns the workspace's status row. A workspace with no row
// yet is active: the row is created on the first pause.
func (ws *WorkspaceService) GetSettings(workspaceId int) (*models.WorkspaceSettings, error) {
	row := ws.db.QueryRow("SELECT workspace_id, workspace_status, COALESCE(paused_reason, ''), paused_at FROM workspace_settings WHERE workspace_id = ?", workspaceId)
	var settings models.WorkspaceSettings
	err := row.Scan(&settings.WorkspaceId, &settings.Status, &settings.PausedReason, &settings.PausedAt)
	if err == sql.ErrNoRows {
		return &models.WorkspaceSettings{WorkspaceId: workspaceId, Status: models.WorkspaceStatusActive}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not get workspace settings")
	}
	return &settings, nil
}

func (ws *WorkspaceService) SetStatus(workspaceId int, status string, reason string, pausedAt *time.Time) error {
	var reasonVal interface{}
	if reason != "" {
		reasonVal = reason
	}
	_, err := ws.db.Exec(
		`INSERT INTO workspace_settings (workspace_id, workspace_status, paused_reason, paused_at, updated_at)
		VALUES (?, ?, ?, ?, NOW())
		ON DUPLICATE KEY UPDATE workspace_status = VALUES(workspace_status), paused_reason = VALUES(paused_reason), paused_at = VALUES(paused_at), updated_at = NOW()`,
		workspaceId, status, reasonVal, pausedAt)
	if err != nil {
		return errors.Wrap(err, "could not update workspace status")
	}
	return nil
}

func (ws *WorkspaceService) GetServicePlans() ([]models.ServicePlan, error) {
	rows, err := ws.db.Query("SELECT id, key_name, monthly_fee_cents, minutes_per_month, concurrent_calls, overage_threshold_usd, hard_cap_usd FROM service_plans")
	if err != nil {
		return nil, errors.Wrap(err, "could not get service plans")
	}
	defer rows.Close()
	var plans []models.ServicePlan
	for rows.Next() {
		var plan models.ServicePlan
		err := rows.Scan(&plan.Id, &plan.KeyName, &plan.MonthlyFeeCents, &plan.MinutesPerMonth, &plan.ConcurrentCalls, &plan.OverageThresholdUsd, &plan.HardCapUsd)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

func (ws *WorkspaceService) ResolveWorkspaceByNumber(number string) (int, error) {
	row := ws.db.QueryRow("SELECT workspace_id FROM did_numbers WHERE number = ?", number)
	var workspaceId int
	err := row.Scan(&workspaceId)
	if err == sql.ErrNoRows {
		return 0, ErrWorkspaceNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "could not resolve workspace")
	}
	return workspaceId, nil
}
