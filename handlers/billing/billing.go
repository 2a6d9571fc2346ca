package billing

import (
	_ "github.com/go-sql-driver/mysql"

	models "denku.com/billing/models"
)

// Provider-neutral invoice statuses, mapped from each gateway's own values.
const (
	ProviderInvoiceDraft         = "draft"
	ProviderInvoiceOpen          = "open"
	ProviderInvoicePaid          = "paid"
	ProviderInvoiceVoid          = "void"
	ProviderInvoiceUncollectible = "uncollectible"
)

// Metadata keys stamped on out-of-cycle overage invoices so provider events
// can be correlated back without a lookup table.
const (
	MetadataChargeType  = "denku_charge_type"
	MetadataWorkspaceId = "denku_workspace_id"
	MetadataMonth       = "denku_billing_month"
	MetadataSnapshotUsd = "denku_overage_snapshot_usd"

	ChargeTypeOverage = "overage_threshold"
)

// ProviderInvoice is the slice of a gateway invoice this service cares about.
type ProviderInvoice struct {
	Id       string
	Status   string
	Total    int64
	Metadata map[string]string
}

type BillingHandler interface {
	CreateDraftInvoice(user *models.User, preview *models.InvoicePreview) (*ProviderInvoice, error)
	FinalizeInvoice(providerInvoiceId string) (*ProviderInvoice, error)
	GetInvoice(providerInvoiceId string) (*ProviderInvoice, error)
	CreateOverageCharge(user *models.User, workspace *models.Workspace, month string, deltaUsd float64, snapshotUsd float64) (*ProviderInvoice, error)
}

type Billing struct {
	RetryAttempts int
}
