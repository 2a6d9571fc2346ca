package cmd

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"

	"denku.com/billing/handlers/telephony"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/repository"
	utils "denku.com/billing/utils"
)

// cron tab to force telephony bindings back into agreement with each
// workspace's stored status. The status write and the bind/unbind side
// effect are not one transaction; this is how drift gets corrected.
func EnforceWorkspaceStatus() error {
	db, err := utils.GetDBConnection()
	if err != nil {
		return err
	}

	ariClient, err := utils.CreateARIConnection()
	if err != nil {
		utils.Log(logrus.InfoLevel, "ARI unavailable, enforcing number bindings only\r\n")
		ariClient = nil
	}

	orchestrator := workspace.NewService(
		repository.NewWorkspaceRepository(db),
		repository.NewLeaseRepository(db),
		repository.NewAuditRepository(db),
		telephony.NewARITelephonyHandler(db, ariClient))

	results, err := db.Query("SELECT id FROM workspaces")
	if err != nil {
		utils.Log(logrus.ErrorLevel, "error running query..\r\n")
		utils.Log(logrus.ErrorLevel, err.Error())
		return err
	}
	defer results.Close()

	var id int
	for results.Next() {
		if err := results.Scan(&id); err != nil {
			utils.Log(logrus.ErrorLevel, "error scanning workspace row: "+err.Error())
			continue
		}
		status, err := orchestrator.EnforceBinding(id)
		if err != nil {
			utils.Log(logrus.ErrorLevel, fmt.Sprintf("could not enforce binding for workspace %d\r\n", id))
			utils.Log(logrus.ErrorLevel, err.Error())
			continue
		}
		utils.Log(logrus.InfoLevel, fmt.Sprintf("workspace %d binding enforced, status %s\r\n", id, status))
	}
	return nil
}
