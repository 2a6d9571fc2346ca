package workspace

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"denku.com/billing/handlers/telephony"
	"denku.com/billing/models"
	"denku.com/billing/repository"
	"denku.com/billing/utils"
)

// ErrNotPaused is returned when resuming a workspace that is not paused.
// Non-retryable: the caller raced a state change and must re-read.
var ErrNotPaused = errors.New("workspace is not paused")

// Service is the single authority for the active/paused transition. All
// readers and writers of workspace_settings go through here so the
// status/reason invariant holds.
type Service struct {
	workspaceRepository repository.WorkspaceRepository
	leaseRepository     repository.LeaseRepository
	auditRepository     repository.AuditRepository
	telephonyHandler    telephony.TelephonyHandler
	logger              *logrus.Entry
}

func NewService(wRepo repository.WorkspaceRepository, lRepo repository.LeaseRepository, aRepo repository.AuditRepository, th telephony.TelephonyHandler) *Service {
	return &Service{
		workspaceRepository: wRepo,
		leaseRepository:     lRepo,
		auditRepository:     aRepo,
		telephonyHandler:    th,
		logger:              logrus.WithField("component", "workspace_pause"),
	}
}

func settingsState(settings *models.WorkspaceSettings) string {
	b, _ := json.Marshal(map[string]string{
		"status": settings.Status,
		"reason": settings.PausedReason,
	})
	return string(b)
}

// Pause flips the workspace to paused and unbinds its numbers. Idempotent:
// pausing an already-paused workspace updates the reason without double
// side effects beyond the naturally idempotent unbind.
func (s *Service) Pause(workspaceId int, reason string, details string) (string, error) {
	settings, err := s.workspaceRepository.GetSettings(workspaceId)
	if err != nil {
		return "", err
	}
	before := settingsState(settings)

	now := time.Now()
	if err := s.workspaceRepository.SetStatus(workspaceId, models.WorkspaceStatusPaused, reason, &now); err != nil {
		return "", err
	}

	// telephony unbind is not part of the status transaction. A failure here
	// is logged and left for EnforceBinding to converge.
	if err := s.telephonyHandler.UnbindNumbers(workspaceId); err != nil {
		s.logger.WithField("workspace_id", workspaceId).Error("could not unbind numbers: " + err.Error())
	}

	if reason == models.PausedReasonHardCap {
		s.hangupActiveCalls(workspaceId)
	}

	after := settingsState(&models.WorkspaceSettings{Status: models.WorkspaceStatusPaused, PausedReason: reason})
	s.audit(workspaceId, "workspace.pause", details, before, after)
	s.notifyOwner(workspaceId, reason)

	s.logger.WithField("workspace_id", workspaceId).Info(fmt.Sprintf("workspace paused, reason %s (%s)", reason, details))
	return models.WorkspaceStatusPaused, nil
}

// Resume flips a paused workspace back to active and rebinds its numbers.
// Refuses when the workspace is not paused, so a resume racing a concurrent
// pause cannot silently undo it.
func (s *Service) Resume(workspaceId int, details string) (string, error) {
	settings, err := s.workspaceRepository.GetSettings(workspaceId)
	if err != nil {
		return "", err
	}
	if settings.Status != models.WorkspaceStatusPaused {
		return settings.Status, ErrNotPaused
	}
	before := settingsState(settings)

	if err := s.workspaceRepository.SetStatus(workspaceId, models.WorkspaceStatusActive, "", nil); err != nil {
		return "", err
	}

	if err := s.telephonyHandler.BindNumbers(workspaceId); err != nil {
		s.logger.WithField("workspace_id", workspaceId).Error("could not rebind numbers: " + err.Error())
	}

	after := settingsState(&models.WorkspaceSettings{Status: models.WorkspaceStatusActive})
	s.audit(workspaceId, "workspace.resume", details, before, after)

	s.logger.WithField("workspace_id", workspaceId).Info("workspace resumed: " + details)
	return models.WorkspaceStatusActive, nil
}

// ResumeIfBillingPaused lifts a billing-driven pause once payment recovers.
// A manual pause is never lifted by a payment event.
func (s *Service) ResumeIfBillingPaused(workspaceId int, details string) error {
	settings, err := s.workspaceRepository.GetSettings(workspaceId)
	if err != nil {
		return err
	}
	if settings.Status != models.WorkspaceStatusPaused {
		return nil
	}
	if settings.PausedReason != models.PausedReasonPastDue && settings.PausedReason != models.PausedReasonHardCap {
		return nil
	}
	_, err = s.Resume(workspaceId, details)
	if errors.Is(err, ErrNotPaused) {
		return nil
	}
	return err
}

// EnforceBinding re-derives the telephony binding from the stored status and
// forces convergence. This is the repair path for drift between the status
// write and the bind/unbind side effect.
func (s *Service) EnforceBinding(workspaceId int) (string, error) {
	settings, err := s.workspaceRepository.GetSettings(workspaceId)
	if err != nil {
		return "", err
	}

	if settings.Status == models.WorkspaceStatusPaused {
		err = s.telephonyHandler.UnbindNumbers(workspaceId)
	} else {
		err = s.telephonyHandler.BindNumbers(workspaceId)
	}
	if err != nil {
		return settings.Status, err
	}

	state := settingsState(settings)
	s.audit(workspaceId, "workspace.enforce_binding", "repair", state, state)
	return settings.Status, nil
}

func (s *Service) hangupActiveCalls(workspaceId int) {
	callIds, err := s.leaseRepository.ListActiveCallIds(workspaceId)
	if err != nil {
		s.logger.WithField("workspace_id", workspaceId).Error("could not list active calls: " + err.Error())
		return
	}
	for _, callId := range callIds {
		if err := s.telephonyHandler.HangupChannel(callId); err != nil {
			s.logger.WithField("workspace_id", workspaceId).Error("could not hang up call " + callId + ": " + err.Error())
		}
	}
}

func (s *Service) audit(workspaceId int, action string, actor string, before string, after string) {
	event := &models.AuditEvent{
		WorkspaceId: workspaceId,
		Action:      action,
		Actor:       actor,
		BeforeState: before,
		AfterState:  after,
	}
	if err := s.auditRepository.Append(event); err != nil {
		s.logger.Error("could not append audit event: " + err.Error())
	}
}

func (s *Service) notifyOwner(workspaceId int, reason string) {
	ws, err := s.workspaceRepository.GetWorkspaceFromDB(workspaceId)
	if err != nil {
		s.logger.Error("could not get workspace for notification: " + err.Error())
		return
	}
	user, err := s.workspaceRepository.GetUserFromDB(ws.CreatorId)
	if err != nil {
		s.logger.Error("could not get owner for notification: " + err.Error())
		return
	}

	var body string
	switch reason {
	case models.PausedReasonHardCap:
		body = "Your workspace reached its monthly spending cap and calling has been paused. Raise the cap or wait for the next billing month to resume."
	case models.PausedReasonPastDue:
		body = "A payment for your workspace failed and calling has been paused. Update your payment method to resume service."
	default:
		body = "Your workspace has been paused and calling is disabled."
	}
	if err := utils.DispatchEmail("Your Denku workspace has been paused", body, user, ws); err != nil {
		s.logger.Error("could not send pause notification: " + err.Error())
	}
}
