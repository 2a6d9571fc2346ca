package billing

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"

	"denku.com/billing/internal/invoicing"
	"denku.com/billing/internal/overage"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/models"
	"denku.com/billing/utils"
)

// Sweep task names the distributor fans out.
const (
	TaskCloseMonth      = "close_month"
	TaskEvaluateOverage = "evaluate_overage"
	TaskReclaimLeases   = "reclaim_leases"
	TaskEnforceBinding  = "enforce_binding"
)

// TaskService routes distributor tasks and payment-provider events to the
// right component. One instance per worker process.
type TaskService struct {
	db                *sql.DB
	invoiceService    *invoicing.Service
	overageService    *overage.Service
	pauseOrchestrator *workspace.Service
	reclaimLeases     func() (int64, error)
	logger            *logrus.Entry
}

func NewTaskService(db *sql.DB, invoiceService *invoicing.Service, overageService *overage.Service, pauseOrchestrator *workspace.Service, reclaimLeases func() (int64, error)) *TaskService {
	return &TaskService{
		db:                db,
		invoiceService:    invoiceService,
		overageService:    overageService,
		pauseOrchestrator: pauseOrchestrator,
		reclaimLeases:     reclaimLeases,
		logger:            logrus.WithField("component", "task_worker"),
	}
}

// ProcessTask runs one sweep task. Errors mean the delivery should be
// redelivered; every task is idempotent.
func (s *TaskService) ProcessTask(task models.SweepTask) error {
	switch task.Job {
	case TaskCloseMonth:
		billingParams, err := utils.NewDBConn(s.db).GetBillingParams()
		if err != nil {
			return err
		}
		return s.invoiceService.CloseMonthForWorkspace(billingParams, task.WorkspaceID, task.BillingMonth)
	case TaskEvaluateOverage:
		billingParams, err := utils.NewDBConn(s.db).GetBillingParams()
		if err != nil {
			return err
		}
		result, err := s.overageService.EvaluateAndCollect(billingParams, task.WorkspaceID, task.BillingMonth)
		if err != nil {
			return err
		}
		if result != overage.EvaluateSkipped {
			s.logger.Info(fmt.Sprintf("workspace %d overage evaluation: %s", task.WorkspaceID, result))
		}
		return nil
	case TaskReclaimLeases:
		_, err := s.reclaimLeases()
		return err
	case TaskEnforceBinding:
		_, err := s.pauseOrchestrator.EnforceBinding(task.WorkspaceID)
		return err
	}
	return fmt.Errorf("unknown task job: %s", task.Job)
}

// ProcessProviderEvent dispatches one payment-provider event: overage-tagged
// charges to the overage collector, everything else to invoice-run
// reconciliation. The collector resolves thin payloads itself, so routing
// does not depend on metadata being present in the raw event.
func (s *TaskService) ProcessProviderEvent(task models.BillingEventTask) error {
	var event stripe.Event
	if err := json.Unmarshal(task.Payload, &event); err != nil {
		return errors.Wrap(err, "could not decode provider event")
	}

	billingParams, err := utils.NewDBConn(s.db).GetBillingParams()
	if err != nil {
		return err
	}

	handled, err := s.overageService.ReconcileCharge(billingParams, &event)
	if err != nil {
		return err
	}
	if handled {
		return nil
	}
	return s.invoiceService.ReconcileEvent(billingParams, &event)
}
