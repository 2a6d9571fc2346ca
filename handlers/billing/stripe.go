package billing

import (
	"fmt"

	"database/sql"

	_ "github.com/go-sql-driver/mysql"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/invoice"
	"github.com/stripe/stripe-go/v72/invoiceitem"

	models "denku.com/billing/models"
)

type StripeBillingHandler struct {
	DBConn    *sql.DB
	StripeKey string
	Billing
	RetryAttempts int
}

func NewStripeBillingHandler(dbConn *sql.DB, stripeKey string, retryAttempts int) *StripeBillingHandler {
	item := &StripeBillingHandler{
		DBConn:        dbConn,
		StripeKey:     stripeKey,
		RetryAttempts: retryAttempts,
	}
	return item
}

func providerInvoiceFromStripe(inv *stripe.Invoice) *ProviderInvoice {
	return &ProviderInvoice{
		Id:       inv.ID,
		Status:   string(inv.Status),
		Total:    inv.Total,
		Metadata: inv.Metadata,
	}
}

// CreateDraftInvoice creates a gateway draft with a line item for the
// monthly fee and, when present, one for the month's overage. The invoice is
// left in draft; finalization is a separate, idempotent step.
func (hndl *StripeBillingHandler) CreateDraftInvoice(user *models.User, preview *models.InvoicePreview) (*ProviderInvoice, error) {
	stripe.Key = hndl.StripeKey

	customerId := user.StripeId
	if customerId == "" {
		return nil, fmt.Errorf("user %d has no stripe customer", user.Id)
	}

	feeParams := &stripe.InvoiceItemParams{
		Customer:    stripe.String(customerId),
		Amount:      stripe.Int64(preview.MonthlyFeeCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Denku %s plan, %s", preview.Plan, preview.BillingMonth)),
	}
	if _, err := invoiceitem.New(feeParams); err != nil {
		return nil, err
	}

	overageCents := int64(preview.OverageUsd*100 + 0.5)
	if overageCents > 0 {
		overageParams := &stripe.InvoiceItemParams{
			Customer:    stripe.String(customerId),
			Amount:      stripe.Int64(overageCents),
			Currency:    stripe.String(string(stripe.CurrencyUSD)),
			Description: stripe.String(fmt.Sprintf("Usage overage, %s", preview.BillingMonth)),
		}
		if _, err := invoiceitem.New(overageParams); err != nil {
			return nil, err
		}
	}

	invoiceParams := &stripe.InvoiceParams{
		Customer:         stripe.String(customerId),
		AutoAdvance:      stripe.Bool(false),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodChargeAutomatically)),
		Description:      stripe.String(fmt.Sprintf("Denku invoice for %s", preview.BillingMonth)),
	}
	invoiceParams.AddMetadata(MetadataWorkspaceId, fmt.Sprintf("%d", preview.WorkspaceId))
	invoiceParams.AddMetadata(MetadataMonth, preview.BillingMonth)

	inv, err := invoice.New(invoiceParams)
	if err != nil {
		return nil, err
	}
	return providerInvoiceFromStripe(inv), nil
}

func (hndl *StripeBillingHandler) FinalizeInvoice(providerInvoiceId string) (*ProviderInvoice, error) {
	stripe.Key = hndl.StripeKey

	inv, err := invoice.FinalizeInvoice(providerInvoiceId, &stripe.InvoiceFinalizeParams{
		AutoAdvance: stripe.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return providerInvoiceFromStripe(inv), nil
}

func (hndl *StripeBillingHandler) GetInvoice(providerInvoiceId string) (*ProviderInvoice, error) {
	stripe.Key = hndl.StripeKey

	inv, err := invoice.Get(providerInvoiceId, nil)
	if err != nil {
		return nil, err
	}
	return providerInvoiceFromStripe(inv), nil
}

// CreateOverageCharge creates and immediately finalizes an out-of-cycle
// invoice for exactly the overage delta, tagged so the payment webhook can
// be correlated back to (workspace, month, snapshot).
func (hndl *StripeBillingHandler) CreateOverageCharge(user *models.User, workspace *models.Workspace, month string, deltaUsd float64, snapshotUsd float64) (*ProviderInvoice, error) {
	stripe.Key = hndl.StripeKey

	customerId := user.StripeId
	if customerId == "" {
		return nil, fmt.Errorf("user %d has no stripe customer", user.Id)
	}

	deltaCents := int64(deltaUsd*100 + 0.5)
	itemParams := &stripe.InvoiceItemParams{
		Customer:    stripe.String(customerId),
		Amount:      stripe.Int64(deltaCents),
		Currency:    stripe.String(string(stripe.CurrencyUSD)),
		Description: stripe.String(fmt.Sprintf("Denku usage overage collection, %s", month)),
	}
	if _, err := invoiceitem.New(itemParams); err != nil {
		return nil, err
	}

	invoiceParams := &stripe.InvoiceParams{
		Customer:         stripe.String(customerId),
		AutoAdvance:      stripe.Bool(true),
		CollectionMethod: stripe.String(string(stripe.InvoiceCollectionMethodChargeAutomatically)),
		Description:      stripe.String(fmt.Sprintf("Denku overage charge for %s", month)),
	}
	invoiceParams.AddMetadata(MetadataChargeType, ChargeTypeOverage)
	invoiceParams.AddMetadata(MetadataWorkspaceId, fmt.Sprintf("%d", workspace.Id))
	invoiceParams.AddMetadata(MetadataMonth, month)
	invoiceParams.AddMetadata(MetadataSnapshotUsd, fmt.Sprintf("%.2f", snapshotUsd))

	inv, err := invoice.New(invoiceParams)
	if err != nil {
		return nil, err
	}

	finalized, err := invoice.FinalizeInvoice(inv.ID, &stripe.InvoiceFinalizeParams{
		AutoAdvance: stripe.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	return providerInvoiceFromStripe(finalized), nil
}
