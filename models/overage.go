package models

import "time"

// Collection attempt statuses recorded on overage_state.
const (
	CollectStatusPending   = "pending"
	CollectStatusCollected = "collected"
	CollectStatusFailed    = "failed"
)

// OverageState tracks threshold collections for one workspace and month
// (UNIQUE(workspace_id, billing_month)). NextCollectAtOverageUsd only
// advances once the provider confirms payment.
type OverageState struct {
	Id                      int
	WorkspaceId             int
	BillingMonth            string
	ThresholdUsd            float64
	HardCapUsd              float64
	LastCollectedOverageUsd float64
	NextCollectAtOverageUsd float64
	LastCollectAttemptAt    *time.Time
	LastCollectStatus       string
	LastCollectInvoiceRef   string
	CapWarningSent          bool
}

// InvoicePreview is the externally computed usage-to-cost projection for the
// current month. This service only reads from it.
type InvoicePreview struct {
	WorkspaceId      int
	BillingMonth     string
	Plan             string
	MonthlyFeeCents  int64
	IncludedMinutes  float64
	OverageRateCents float64
	OverageUsd       float64
	EstimatedTotal   int64
}
