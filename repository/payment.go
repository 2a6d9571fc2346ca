package repository

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"

	"denku.com/billing/handlers/billing"
	"denku.com/billing/models"
	"denku.com/billing/utils"
)

type PaymentService struct {
	db *sql.DB
}

// PaymentRepository fronts the configured payment gateway. Every operation
// is a provider round trip; callers persist outcomes rather than retrying
// in-line.
type PaymentRepository interface {
	CreateDraftInvoice(billingParams *utils.BillingParams, user *models.User, preview *models.InvoicePreview) (*billing.ProviderInvoice, error)
	FinalizeInvoice(billingParams *utils.BillingParams, providerInvoiceId string) (*billing.ProviderInvoice, error)
	GetInvoice(billingParams *utils.BillingParams, providerInvoiceId string) (*billing.ProviderInvoice, error)
	CreateOverageCharge(billingParams *utils.BillingParams, user *models.User, workspace *models.Workspace, month string, deltaUsd float64, snapshotUsd float64) (*billing.ProviderInvoice, error)
}

func NewPaymentRepository(db *sql.DB) PaymentRepository {
	return NewPaymentService(db)
}

func NewPaymentService(db *sql.DB) *PaymentService {
	return &PaymentService{
		db: db,
	}
}

func (ps *PaymentService) handler(billingParams *utils.BillingParams) (billing.BillingHandler, error) {
	switch billingParams.Provider {
	case "stripe":
		key := billingParams.Data["stripe_key"]
		return billing.NewStripeBillingHandler(ps.db, key, 0), nil
	case "braintree":
		key := billingParams.Data["braintree_api_key"]
		return billing.NewBraintreeBillingHandler(ps.db, key, 0), nil
	}
	return nil, fmt.Errorf("unknown payment provider: %s", billingParams.Provider)
}

func (ps *PaymentService) CreateDraftInvoice(billingParams *utils.BillingParams, user *models.User, preview *models.InvoicePreview) (*billing.ProviderInvoice, error) {
	hndl, err := ps.handler(billingParams)
	if err != nil {
		return nil, err
	}
	inv, err := hndl.CreateDraftInvoice(user, preview)
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error creating draft invoice..\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
	}
	return inv, err
}

func (ps *PaymentService) FinalizeInvoice(billingParams *utils.BillingParams, providerInvoiceId string) (*billing.ProviderInvoice, error) {
	hndl, err := ps.handler(billingParams)
	if err != nil {
		return nil, err
	}
	inv, err := hndl.FinalizeInvoice(providerInvoiceId)
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error finalizing invoice..\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
	}
	return inv, err
}

func (ps *PaymentService) GetInvoice(billingParams *utils.BillingParams, providerInvoiceId string) (*billing.ProviderInvoice, error) {
	hndl, err := ps.handler(billingParams)
	if err != nil {
		return nil, err
	}
	return hndl.GetInvoice(providerInvoiceId)
}

func (ps *PaymentService) CreateOverageCharge(billingParams *utils.BillingParams, user *models.User, workspace *models.Workspace, month string, deltaUsd float64, snapshotUsd float64) (*billing.ProviderInvoice, error) {
	hndl, err := ps.handler(billingParams)
	if err != nil {
		return nil, err
	}
	inv, err := hndl.CreateOverageCharge(user, workspace, month, deltaUsd, snapshotUsd)
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error charging overage..\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
	}
	return inv, err
}
