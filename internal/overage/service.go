package overage

import (
	"encoding/json"
	"fmt"
	"strconv"
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

// EvaluateResult is the outcome of one overage evaluation pass.
type EvaluateResult string

const (
	EvaluateBlocked        EvaluateResult = "blocked"
	EvaluateSkipped        EvaluateResult = "skipped"
	EvaluateSkippedNoDelta EvaluateResult = "skipped:no_delta"
	EvaluateCollected      EvaluateResult = "collected"
	EvaluateError          EvaluateResult = "error"
)

// capWarningRatio is the share of the hard cap at which the owner gets a
// heads-up email, once per month.
const capWarningRatio = 0.8

// collectAttemptStaleness bounds how long a pending collection blocks new
// attempts. A pending attempt older than this is treated as lost and the
// delta is charged again.
const collectAttemptStaleness = time.Hour

// Service triggers out-of-cycle charges as a workspace's metered overage
// crosses successive thresholds, and escalates to a hard-cap pause.
type Service struct {
	overageRepository   repository.OverageRepository
	workspaceRepository repository.WorkspaceRepository
	usageRepository     repository.UsageRepository
	paymentRepository   repository.PaymentRepository
	pauseOrchestrator   *workspace.Service
	logger              *logrus.Entry
}

func NewService(oRepo repository.OverageRepository, wRepo repository.WorkspaceRepository, uRepo repository.UsageRepository, pRepo repository.PaymentRepository, pauseOrchestrator *workspace.Service) *Service {
	return &Service{
		overageRepository:   oRepo,
		workspaceRepository: wRepo,
		usageRepository:     uRepo,
		paymentRepository:   pRepo,
		pauseOrchestrator:   pauseOrchestrator,
		logger:              logrus.WithField("component", "overage_collector"),
	}
}

// EvaluateAndCollect reads the month's cumulative overage and decides, in
// order: hard cap breached (pause wins over everything), below the next
// collection boundary (no-op), non-positive delta (clock/read skew guard),
// otherwise charge exactly the delta. The collection boundary only advances
// once the provider confirms payment, in ReconcileCharge.
func (s *Service) EvaluateAndCollect(billingParams *utils.BillingParams, workspaceId int, month string) (EvaluateResult, error) {
	ws, err := s.workspaceRepository.GetWorkspaceFromDB(workspaceId)
	if err != nil {
		return EvaluateError, err
	}
	preview, err := s.usageRepository.GetInvoicePreview(workspaceId, month)
	if err != nil {
		return EvaluateError, errors.Wrap(err, "invoice preview unavailable")
	}

	state, err := s.ensureState(ws, month)
	if err != nil {
		return EvaluateError, err
	}

	current := preview.OverageUsd

	if current >= state.HardCapUsd {
		s.logger.Info(fmt.Sprintf("workspace %d hit hard cap %.2f (overage %.2f)", workspaceId, state.HardCapUsd, current))
		_, err := s.pauseOrchestrator.Pause(workspaceId, models.PausedReasonHardCap,
			fmt.Sprintf("overage %.2f reached hard cap %.2f for %s", current, state.HardCapUsd, month))
		if err != nil {
			return EvaluateError, err
		}
		return EvaluateBlocked, nil
	}

	s.maybeWarnOwner(ws, state, current)

	if current < state.NextCollectAtOverageUsd {
		return EvaluateSkipped, nil
	}

	// a charge is already in flight for this crossing; wait for the
	// provider's verdict instead of billing the same delta twice
	if state.LastCollectStatus == models.CollectStatusPending && state.LastCollectAttemptAt != nil &&
		time.Since(*state.LastCollectAttemptAt) < collectAttemptStaleness {
		return EvaluateSkipped, nil
	}

	delta := current - state.LastCollectedOverageUsd
	if delta <= 0 {
		return EvaluateSkippedNoDelta, nil
	}

	user, err := s.workspaceRepository.GetUserFromDB(ws.CreatorId)
	if err != nil {
		return EvaluateError, err
	}

	providerInvoice, err := s.paymentRepository.CreateOverageCharge(billingParams, user, ws, month, delta, current)
	if err != nil {
		if markErr := s.overageRepository.MarkAttemptFailed(workspaceId, month); markErr != nil {
			s.logger.Error("could not mark collection attempt failed: " + markErr.Error())
		}
		return EvaluateError, err
	}

	if err := s.overageRepository.RecordAttempt(workspaceId, month, providerInvoice.Id, time.Now()); err != nil {
		return EvaluateError, err
	}

	s.logger.Info(fmt.Sprintf("collecting %.2f overage for workspace %d month %s (invoice %s)", delta, workspaceId, month, providerInvoice.Id))
	return EvaluateCollected, nil
}

// ReconcileCharge applies a provider event for an overage-tagged charge. The
// metadata stamped at creation identifies the workspace, month and snapshot,
// so no lookup table is needed; thin payloads (an id and nothing else) are
// resolved by fetching the full invoice. Returns false when the invoice does
// not belong to an overage charge, so the caller can route it elsewhere.
func (s *Service) ReconcileCharge(billingParams *utils.BillingParams, event *stripe.Event) (bool, error) {
	var inv stripe.Invoice
	if err := json.Unmarshal(event.Data.Raw, &inv); err != nil {
		return false, errors.Wrap(err, "could not decode invoice event")
	}
	if inv.ID == "" {
		return false, fmt.Errorf("event %s carries no invoice id", event.ID)
	}

	metadata := inv.Metadata
	if len(metadata) == 0 {
		full, err := s.paymentRepository.GetInvoice(billingParams, inv.ID)
		if err != nil {
			return false, err
		}
		metadata = full.Metadata
	}
	if metadata[billinghandlers.MetadataChargeType] != billinghandlers.ChargeTypeOverage {
		return false, nil
	}

	workspaceId, err := strconv.Atoi(metadata[billinghandlers.MetadataWorkspaceId])
	if err != nil {
		return true, errors.Wrap(err, "overage charge metadata has no workspace")
	}
	month := metadata[billinghandlers.MetadataMonth]
	snapshot, err := strconv.ParseFloat(metadata[billinghandlers.MetadataSnapshotUsd], 64)
	if err != nil {
		return true, errors.Wrap(err, "overage charge metadata has no snapshot")
	}

	state, err := s.overageRepository.GetState(workspaceId, month)
	if err != nil {
		return true, err
	}
	if state == nil {
		return true, nil
	}

	switch event.Type {
	case "invoice.paid", "invoice.payment_succeeded":
		if snapshot > state.LastCollectedOverageUsd {
			next := state.NextCollectAtOverageUsd + state.ThresholdUsd
			for next <= snapshot {
				next += state.ThresholdUsd
			}
			if err := s.overageRepository.ConfirmCollection(workspaceId, month, snapshot, next); err != nil {
				return true, err
			}
		}
		return true, s.pauseOrchestrator.ResumeIfBillingPaused(workspaceId, fmt.Sprintf("overage charge %s paid", inv.ID))
	case "invoice.payment_failed":
		if err := s.overageRepository.MarkAttemptFailed(workspaceId, month); err != nil {
			return true, err
		}
		_, err := s.pauseOrchestrator.Pause(workspaceId, models.PausedReasonPastDue,
			fmt.Sprintf("overage charge %s payment failed", inv.ID))
		return true, err
	}
	return true, nil
}

// ensureState returns the month's overage row, creating it with
// plan-derived defaults on first evaluation. Unknown plan codes get the
// smallest tier's limits, so a misconfigured plan is capped tightly rather
// than not at all.
func (s *Service) ensureState(ws *models.Workspace, month string) (*models.OverageState, error) {
	state, err := s.overageRepository.GetState(ws.Id, month)
	if err != nil {
		return nil, err
	}
	if state != nil {
		return state, nil
	}

	threshold, hardCap := models.OverageDefaultsForPlan(ws.Plan)
	plans, err := s.workspaceRepository.GetServicePlans()
	if err == nil {
		if plan := utils.GetPlan(plans, ws); plan != nil && plan.OverageThresholdUsd > 0 {
			threshold = plan.OverageThresholdUsd
			hardCap = plan.HardCapUsd
		}
	}

	return s.overageRepository.CreateState(&models.OverageState{
		WorkspaceId:             ws.Id,
		BillingMonth:            month,
		ThresholdUsd:            threshold,
		HardCapUsd:              hardCap,
		NextCollectAtOverageUsd: threshold,
	})
}

func (s *Service) maybeWarnOwner(ws *models.Workspace, state *models.OverageState, currentUsd float64) {
	if state.CapWarningSent || currentUsd < state.HardCapUsd*capWarningRatio {
		return
	}
	user, err := s.workspaceRepository.GetUserFromDB(ws.CreatorId)
	if err != nil {
		s.logger.Error("could not get owner for cap warning: " + err.Error())
		return
	}
	body := fmt.Sprintf("Your workspace has used $%.2f of its $%.2f monthly spending cap. Calling will be paused when the cap is reached.", currentUsd, state.HardCapUsd)
	if err := utils.DispatchEmail("Your Denku workspace is approaching its spending cap", body, user, ws); err != nil {
		s.logger.Error("could not send cap warning: " + err.Error())
		return
	}
	if err := s.overageRepository.SetCapWarningSent(ws.Id, state.BillingMonth); err != nil {
		s.logger.Error("could not flag cap warning: " + err.Error())
	}
}
