package billing

import (
	_ "github.com/go-sql-driver/mysql"

	"database/sql"
	"errors"

	models "denku.com/billing/models"
)

type BraintreeBillingHandler struct {
	DBConn       *sql.DB
	BraintreeKey string
	Billing
	RetryAttempts int
}

func NewBraintreeBillingHandler(dbConn *sql.DB, braintreeKey string, retryAttempts int) *BraintreeBillingHandler {
	item := BraintreeBillingHandler{
		DBConn:        dbConn,
		BraintreeKey:  braintreeKey,
		RetryAttempts: retryAttempts}
	return &item
}

func (hndl *BraintreeBillingHandler) CreateDraftInvoice(user *models.User, preview *models.InvoicePreview) (*ProviderInvoice, error) {
	// todo: implement handler
	return nil, errors.New("not implemented yet")
}

func (hndl *BraintreeBillingHandler) FinalizeInvoice(providerInvoiceId string) (*ProviderInvoice, error) {
	return nil, errors.New("not implemented yet")
}

func (hndl *BraintreeBillingHandler) GetInvoice(providerInvoiceId string) (*ProviderInvoice, error) {
	return nil, errors.New("not implemented yet")
}

func (hndl *BraintreeBillingHandler) CreateOverageCharge(user *models.User, workspace *models.Workspace, month string, deltaUsd float64, snapshotUsd float64) (*ProviderInvoice, error) {
	return nil, errors.New("not implemented yet")
}
