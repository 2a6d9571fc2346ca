package models

import "time"

// Invoice run statuses. Transitions are monotonic except ERROR, which is
// retryable back into the step that failed.
const (
	InvoiceRunStatusDraft         = "draft"
	InvoiceRunStatusOpen          = "open"
	InvoiceRunStatusPaid          = "paid"
	InvoiceRunStatusVoid          = "void"
	InvoiceRunStatusUncollectible = "uncollectible"
	InvoiceRunStatusError         = "error"
)

// InvoiceRunLockStaleness is the advisory-lock staleness window: a lock
// older than this may be taken over by another worker.
const InvoiceRunLockStaleness = 5 * time.Minute

// InvoiceRun tracks one workspace's invoice for one billing month
// (UNIQUE(workspace_id, billing_month)). The lock_token/locked_at pair is a
// cooperative, self-expiring advisory lock over batch processing.
type InvoiceRun struct {
	Id                  int
	WorkspaceId         int
	BillingMonth        string // "2006-01"
	Status              string
	StripeInvoiceId     string
	EstimatedTotalCents int64
	LockToken           string
	LockedAt            *time.Time
	FinalizedAt         *time.Time
	SentAt              *time.Time
	ErrorMessage        string
}

// Terminal reports whether the run is in a state finalization must not
// touch again.
func (r *InvoiceRun) Terminal() bool {
	switch r.Status {
	case InvoiceRunStatusPaid, InvoiceRunStatusVoid, InvoiceRunStatusUncollectible:
		return true
	}
	return false
}
