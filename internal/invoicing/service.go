package invoicing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v72"

	billinghandlers "denku.com/billing/handlers/billing"
	"denku.com/billing/internal/workspace"
	"denku.com/billing/models"
	"denku.com/billing/repository"
	"denku.com/billing/utils"
)

// ErrInvalidState marks a non-retryable lifecycle violation, e.g. finalizing
// a voided invoice.
var ErrInvalidState = errors.New("invoice run is in an incompatible state")

// Service owns the per-(workspace, month) invoice lifecycle. Exactly one
// finalized invoice per month, safe under re-entrant cron runs: the advisory
// lock reduces duplicate work and every protected step is idempotent.
type Service struct {
	runRepository       repository.InvoiceRunRepository
	workspaceRepository repository.WorkspaceRepository
	usageRepository     repository.UsageRepository
	paymentRepository   repository.PaymentRepository
	pauseOrchestrator   *workspace.Service
	logger              *logrus.Entry
}

func NewService(runRepo repository.InvoiceRunRepository, wRepo repository.WorkspaceRepository, uRepo repository.UsageRepository, pRepo repository.PaymentRepository, pauseOrchestrator *workspace.Service) *Service {
	return &Service{
		runRepository:       runRepo,
		workspaceRepository: wRepo,
		usageRepository:     uRepo,
		paymentRepository:   pRepo,
		pauseOrchestrator:   pauseOrchestrator,
		logger:              logrus.WithField("component", "invoice_run"),
	}
}

// AcquireProcessingLock takes the month's advisory lock, creating the run
// row on first use. Returns false when a fresh lock is held elsewhere;
// callers treat that as "skip this cycle", not an error.
func (s *Service) AcquireProcessingLock(workspaceId int, month string, token string) (bool, error) {
	if _, err := s.runRepository.EnsureRun(workspaceId, month); err != nil {
		return false, err
	}
	return s.runRepository.TryAcquireLock(workspaceId, month, token, models.InvoiceRunLockStaleness)
}

func (s *Service) ReleaseProcessingLock(workspaceId int, month string, token string) error {
	return s.runRepository.ReleaseLock(workspaceId, month, token)
}

// EnsureDraftInvoice returns the existing draft if the run already has one,
// otherwise builds a provider draft from the month's invoice preview. When
// preview data is unavailable nothing is created.
func (s *Service) EnsureDraftInvoice(billingParams *utils.BillingParams, workspaceId int, month string) (*models.InvoiceRun, error) {
	run, err := s.runRepository.EnsureRun(workspaceId, month)
	if err != nil {
		return nil, err
	}
	if run.StripeInvoiceId != "" {
		return run, nil
	}

	preview, err := s.usageRepository.GetInvoicePreview(workspaceId, month)
	if err != nil {
		return nil, errors.Wrap(err, "invoice preview unavailable")
	}

	ws, err := s.workspaceRepository.GetWorkspaceFromDB(workspaceId)
	if err != nil {
		return nil, err
	}
	user, err := s.workspaceRepository.GetUserFromDB(ws.CreatorId)
	if err != nil {
		return nil, err
	}

	providerInvoice, err := s.paymentRepository.CreateDraftInvoice(billingParams, user, preview)
	if err != nil {
		return nil, err
	}
	if err := s.runRepository.SetDraft(workspaceId, month, providerInvoice.Id, providerInvoice.Total); err != nil {
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("created draft invoice %s for workspace %d month %s", providerInvoice.Id, workspaceId, month))
	return s.runRepository.GetRun(workspaceId, month)
}

// FinalizeInvoice is idempotent: an already finalized or paid invoice is
// success without a second provider call; a voided or uncollectible one is
// ErrInvalidState.
func (s *Service) FinalizeInvoice(billingParams *utils.BillingParams, providerInvoiceId string) error {
	providerInvoice, err := s.paymentRepository.GetInvoice(billingParams, providerInvoiceId)
	if err != nil {
		return err
	}

	switch providerInvoice.Status {
	case billinghandlers.ProviderInvoiceOpen, billinghandlers.ProviderInvoicePaid:
		return nil
	case billinghandlers.ProviderInvoiceVoid, billinghandlers.ProviderInvoiceUncollectible:
		return errors.Wrapf(ErrInvalidState, "invoice %s is %s", providerInvoiceId, providerInvoice.Status)
	}

	if _, err := s.paymentRepository.FinalizeInvoice(billingParams, providerInvoiceId); err != nil {
		return err
	}
	return nil
}

// CloseMonthForWorkspace runs the full close workflow for one workspace:
// lock, reconcile-or-create, finalize, release. The lock release is
// unconditional so a failed step never wedges the month.
func (s *Service) CloseMonthForWorkspace(billingParams *utils.BillingParams, workspaceId int, month string) error {
	token, err := utils.CreateLockToken()
	if err != nil {
		return err
	}

	acquired, err := s.AcquireProcessingLock(workspaceId, month, token)
	if err != nil {
		return err
	}
	if !acquired {
		s.logger.Info(fmt.Sprintf("invoice run %d/%s locked by another worker, skipping", workspaceId, month))
		return nil
	}
	defer func() {
		if err := s.ReleaseProcessingLock(workspaceId, month, token); err != nil {
			s.logger.Error("could not release invoice run lock: " + err.Error())
		}
	}()

	if err := s.closeLocked(billingParams, workspaceId, month); err != nil {
		if markErr := s.runRepository.MarkError(workspaceId, month, err.Error()); markErr != nil {
			s.logger.Error("could not record invoice run error: " + markErr.Error())
		}
		return err
	}
	return nil
}

func (s *Service) closeLocked(billingParams *utils.BillingParams, workspaceId int, month string) error {
	run, err := s.runRepository.GetRun(workspaceId, month)
	if err != nil {
		return err
	}

	if run.StripeInvoiceId != "" {
		providerInvoice, err := s.paymentRepository.GetInvoice(billingParams, run.StripeInvoiceId)
		if err != nil {
			return err
		}
		if providerInvoice.Status != billinghandlers.ProviderInvoiceDraft {
			// someone already moved it forward; adopt the observed state
			return s.runRepository.SetStatus(workspaceId, month, providerInvoice.Status)
		}
		if err := s.FinalizeInvoice(billingParams, run.StripeInvoiceId); err != nil {
			return err
		}
		return s.runRepository.MarkFinalized(workspaceId, month, time.Now())
	}

	run, err = s.EnsureDraftInvoice(billingParams, workspaceId, month)
	if err != nil {
		return err
	}
	if err := s.FinalizeInvoice(billingParams, run.StripeInvoiceId); err != nil {
		return err
	}
	return s.runRepository.MarkFinalized(workspaceId, month, time.Now())
}

// ReconcileEvent applies a payment-provider invoice event to the local run.
// Thin payloads (an id and nothing else) are resolved by fetching the full
// invoice first. Unknown invoices are ignored: the event may belong to a
// charge this service did not create.
func (s *Service) ReconcileEvent(billingParams *utils.BillingParams, event *stripe.Event) error {
	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return errors.Wrap(err, "could not decode invoice event")
	}
	if inv.ID == "" {
		return fmt.Errorf("event %s carries no invoice id", event.ID)
	}

	// thin payload: only an identifier was delivered
	if inv.Status == "" {
		full, err := s.paymentRepository.GetInvoice(billingParams, inv.ID)
		if err != nil {
			return err
		}
		inv.Status = stripe.InvoiceStatus(full.Status)
	}

	run, err := s.runRepository.GetRunByProviderInvoice(inv.ID)
	if err != nil {
		return err
	}
	if run == nil {
		return nil
	}

	switch event.Type {
	case "invoice.finalized":
		// delivery order is not guaranteed; a replayed finalized event
		// must not regress a run that already reached a terminal state
		if run.Terminal() {
			return nil
		}
		return s.runRepository.MarkFinalized(run.WorkspaceId, run.BillingMonth, time.Now())
	case "invoice.paid", "invoice.payment_succeeded":
		if !run.Terminal() {
			if err := s.runRepository.SetStatusByProviderInvoice(inv.ID, models.InvoiceRunStatusPaid); err != nil {
				return err
			}
		}
		return s.pauseOrchestrator.ResumeIfBillingPaused(run.WorkspaceId, "monthly invoice paid")
	case "invoice.payment_failed":
		s.logger.Info(fmt.Sprintf("payment failed for invoice run %d/%s", run.WorkspaceId, run.BillingMonth))
		_, err := s.pauseOrchestrator.Pause(run.WorkspaceId, models.PausedReasonPastDue, fmt.Sprintf("invoice %s payment failed", inv.ID))
		return err
	case "invoice.voided":
		return s.runRepository.SetStatusByProviderInvoice(inv.ID, models.InvoiceRunStatusVoid)
	case "invoice.marked_uncollectible":
		return s.runRepository.SetStatusByProviderInvoice(inv.ID, models.InvoiceRunStatusUncollectible)
	}
	return nil
}
