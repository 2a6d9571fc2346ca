package cmd

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/internal/overage"
	utils "denku.com/billing/utils"
)

type OverageSweepJob struct {
	db             *sql.DB
	overageService *overage.Service
	logger         *logrus.Entry
}

func NewOverageSweepJob(db *sql.DB, overageService *overage.Service) *OverageSweepJob {
	return &OverageSweepJob{
		db:             db,
		overageService: overageService,
		logger:         logrus.WithField("component", "overage_sweep"),
	}
}

// cron tab to evaluate every workspace's accumulated overage against its
// collection threshold and hard cap
func (os *OverageSweepJob) EvaluateOverages() error {
	conn := utils.NewDBConn(os.db)

	billingParams, err := conn.GetBillingParams()
	if err != nil {
		return err
	}

	month := utils.BillingMonth(time.Now())

	results, err := os.db.Query("SELECT id, creator_id FROM workspaces")
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
		result, err := os.overageService.EvaluateAndCollect(billingParams, id, month)
		if err != nil {
			utils.Log(logrus.ErrorLevel, fmt.Sprintf("error evaluating overage for workspace %d\r\n", id))
			utils.Log(logrus.ErrorLevel, err.Error())
			continue
		}
		if result != overage.EvaluateSkipped {
			os.logger.Info(fmt.Sprintf("workspace %d overage evaluation: %s", id, result))
		}
	}
	return nil
}
