package models

import "time"

// Workspace status values stored in workspace_settings.workspace_status
const (
	WorkspaceStatusActive = "active"
	WorkspaceStatusPaused = "paused"
)

// Reasons a workspace can be paused. PausedReason is NULL while active.
const (
	PausedReasonManual  = "manual"
	PausedReasonHardCap = "hard_cap"
	PausedReasonPastDue = "past_due"
)

// Workspace represents a tenant organization
type Workspace struct {
	Id             int
	CreatorId      int
	Name           string
	Plan           string
	ExtraCallSlots int
}

// User represents a workspace owner
type User struct {
	Id        int
	Username  string
	FirstName string
	LastName  string
	Email     string
	StripeId  string
}

// WorkspaceSettings is the single authoritative row for a workspace's
// active/paused state. Mutated only through the pause orchestrator.
type WorkspaceSettings struct {
	WorkspaceId  int
	Status       string
	PausedReason string
	PausedAt     *time.Time
}

// ConcurrencyLimit is the number of simultaneous calls the workspace may
// run: the plan's base slots plus any purchased add-on slots.
func (w *Workspace) ConcurrencyLimit(plan *ServicePlan) int {
	return plan.ConcurrentCalls + w.ExtraCallSlots
}
