package cmd

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/internal/concurrency"
	"denku.com/billing/repository"
	utils "denku.com/billing/utils"
)

// cron tab to reclaim concurrency slots held by calls whose "ended" webhook
// never arrived
func ReclaimLeases() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}

	limiter := concurrency.NewService(
		repository.NewLeaseRepository(db),
		repository.NewWorkspaceRepository(db),
		repository.NewAuditRepository(db))

	reclaimed, err := limiter.ReleaseExpiredLeases()
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error reclaiming expired leases\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	utils.Log(logrus.InfoLevel, fmt.Sprintf("reclaimed %d expired leases\r\n", reclaimed))
	return nil
}
