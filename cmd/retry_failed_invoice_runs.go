package cmd

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/internal/invoicing"
	"denku.com/billing/repository"
	utils "denku.com/billing/utils"
)

type RetryFailedInvoiceRunsJob struct {
	db             *sql.DB
	runRepository  repository.InvoiceRunRepository
	invoiceService *invoicing.Service
}

func NewRetryFailedInvoiceRunsJob(db *sql.DB, runRepository repository.InvoiceRunRepository, invoiceService *invoicing.Service) *RetryFailedInvoiceRunsJob {
	return &RetryFailedInvoiceRunsJob{
		db:             db,
		runRepository:  runRepository,
		invoiceService: invoiceService,
	}
}

// cron tab to re-run invoice runs stuck in error. The close workflow is
// idempotent, so replaying a run picks up where the last attempt failed.
func (rj *RetryFailedInvoiceRunsJob) RetryFailedInvoiceRuns() error {
	conn := utils.NewDBConn(rj.db)

	billingParams, err := conn.GetBillingParams()
	if err != nil {
		return err
	}

	runs, err := rj.runRepository.ListErrored()
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error listing errored invoice runs "+err.Error())
		return err
	}

	for _, run := range runs {
		err := rj.invoiceService.CloseMonthForWorkspace(billingParams, run.WorkspaceId, run.BillingMonth)
		if err != nil {
			utils.Log(logrus.ErrorLevel, fmt.Sprintf("retry failed for invoice run %d/%s\r\n", run.WorkspaceId, run.BillingMonth))
			utils.Log(logrus.ErrorLevel, err.Error())
			continue
		}
		utils.Log(logrus.InfoLevel, fmt.Sprintf("invoice run %d/%s recovered\r\n", run.WorkspaceId, run.BillingMonth))
	}
	return nil
}
