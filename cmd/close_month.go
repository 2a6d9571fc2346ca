package cmd

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/internal/invoicing"
	utils "denku.com/billing/utils"
)

type CloseMonthJob struct {
	db             *sql.DB
	invoiceService *invoicing.Service
	logger         *logrus.Entry
}

func NewCloseMonthJob(db *sql.DB, invoiceService *invoicing.Service) *CloseMonthJob {
	return &CloseMonthJob{
		db:             db,
		invoiceService: invoiceService,
		logger:         logrus.WithField("component", "close_month"),
	}
}

// cron tab to close the previous billing month: one finalized invoice per
// workspace, idempotent under retried runs
func (cm *CloseMonthJob) CloseMonth() error {
	conn := utils.NewDBConn(cm.db)

	billingParams, err := conn.GetBillingParams()
	if err != nil {
		return err
	}

	month := utils.PreviousBillingMonth(time.Now())
	cm.logger.Info("closing billing month " + month)

	results, err := cm.db.Query("SELECT id, creator_id FROM workspaces")
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error running query..\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	defer results.Close()

	var id int
	var creatorId int
	for results.Next() {
		if err := results.Scan(&id, &creatorId); err != nil {
			utils.Log(logrus.ErrorLevel, "error scanning workspace row: "+err.Error())
			continue
		}
		err := cm.invoiceService.CloseMonthForWorkspace(billingParams, id, month)
		if err != nil {
			utils.Log(logrus.ErrorLevel, fmt.Sprintf("error closing month for workspace %d\r\n", id))
			utils.Log(logrus.ErrorLevel, err.Error())
			continue
		}
	}
	return nil
}
