package main

import (
	"database/sql"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mailgun/mailgun-go/v4"
	"github.com/sirupsen/logrus"

	cmd "denku.com/billing/cmd"
	"denku.com/billing/handlers/telephony"
	"denku.com/billing/internal/invoicing"
	"denku.com/billing/internal/overage"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/repository"
	"denku.com/billing/utils"
)

func main() {
	var err error

	logDestination := utils.Config("LOG_DESTINATIONS")
	utils.InitLogger(logDestination)

	args := os.Args[1:]
	if len(args) == 0 {
		utils.Log(logrus.InfoLevel, "Please provide command")
		return
	}
	command := args[0]
	switch command {
	case "reclaim_leases":
		utils.Log(logrus.InfoLevel, "reclaiming expired concurrency leases")
		err = cmd.ReclaimLeases()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "close_month":
		utils.Log(logrus.InfoLevel, "running monthly invoice close")

		db, _ := utils.GetDBConnection()
		job := cmd.NewCloseMonthJob(db, buildInvoiceService(db))

		err = job.CloseMonth()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "evaluate_overages":
		utils.Log(logrus.InfoLevel, "evaluating workspace overages")

		db, _ := utils.GetDBConnection()
		job := cmd.NewOverageSweepJob(db, buildOverageService(db))

		err = job.EvaluateOverages()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "retry_failed_invoice_runs":
		utils.Log(logrus.InfoLevel, "retrying errored invoice runs")

		db, _ := utils.GetDBConnection()
		job := cmd.NewRetryFailedInvoiceRunsJob(db, repository.NewInvoiceRunRepository(db), buildInvoiceService(db))

		err = job.RetryFailedInvoiceRuns()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "enforce_workspace_status":
		utils.Log(logrus.InfoLevel, "enforcing workspace telephony bindings")
		err = cmd.EnforceWorkspaceStatus()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	case "archive_audit_events":
		utils.Log(logrus.InfoLevel, "archiving old audit events")
		err = cmd.ArchiveAuditEvents()
		if err != nil {
			utils.Log(logrus.ErrorLevel, err.Error())
		}
	}
}

func buildPauseOrchestrator(db *sql.DB) *workspace.Service {
	ariClient, err := utils.CreateARIConnection()
	if err != nil {
		ariClient = nil
	}
	return workspace.NewService(
		repository.NewWorkspaceRepository(db),
		repository.NewLeaseRepository(db),
		repository.NewAuditRepository(db),
		telephony.NewARITelephonyHandler(db, ariClient))
}

func buildInvoiceService(db *sql.DB) *invoicing.Service {
	return invoicing.NewService(
		repository.NewInvoiceRunRepository(db),
		repository.NewWorkspaceRepository(db),
		repository.NewUsageRepository(),
		repository.NewPaymentRepository(db),
		buildPauseOrchestrator(db))
}

func buildOverageService(db *sql.DB) *overage.Service {
	return overage.NewService(
		repository.NewOverageRepository(db),
		repository.NewWorkspaceRepository(db),
		repository.NewUsageRepository(),
		repository.NewPaymentRepository(db),
		buildPauseOrchestrator(db))
}
