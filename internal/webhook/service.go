package webhook

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"denku.com/billing/handlers/telephony"
	"denku.com/billing/internal/concurrency"
	"denku.com/billing/models"
	"denku.com/billing/repository"
)

// Service is the thin entry point for call lifecycle events: it resolves
// the owning workspace, drives the concurrency limiter, and turns rejected
// admissions into channel hangups so callers hear normal overflow handling.
type Service struct {
	limiter             *concurrency.Service
	workspaceRepository repository.WorkspaceRepository
	telephonyHandler    telephony.TelephonyHandler
	logger              *logrus.Entry
}

func NewService(limiter *concurrency.Service, wRepo repository.WorkspaceRepository, th telephony.TelephonyHandler) *Service {
	return &Service{
		limiter:             limiter,
		workspaceRepository: wRepo,
		telephonyHandler:    th,
		logger:              logrus.WithField("component", "call_ingestion"),
	}
}

// ProcessCallEvent handles one delivery. Deliveries repeat and reorder;
// every path through here is idempotent. Admission never silently succeeds
// on a store failure: the call is torn down instead.
func (s *Service) ProcessCallEvent(event *models.CallEvent) error {
	// every event is a chance to reclaim lost capacity
	if _, err := s.limiter.ReleaseExpiredLeases(); err != nil {
		s.logger.Error("could not reclaim expired leases: " + err.Error())
	}

	workspaceId, err := s.workspaceRepository.ResolveWorkspaceByNumber(event.Number)
	if errors.Is(err, repository.ErrWorkspaceNotFound) {
		s.logger.Info(fmt.Sprintf("dropping %s for unknown number %s", event.Type, event.Number))
		return nil
	}
	if err != nil {
		return err
	}

	switch event.Type {
	case models.CallEventStarted:
		return s.handleCallStart(workspaceId, event)
	case models.CallEventEnded:
		if err := s.limiter.ReleaseLease(workspaceId, event.CallId); err != nil {
			s.logger.Error(fmt.Sprintf("could not release lease for call %s: %s", event.CallId, err.Error()))
		}
		return nil
	}
	s.logger.Info("ignoring unknown call event type " + event.Type)
	return nil
}

func (s *Service) handleCallStart(workspaceId int, event *models.CallEvent) error {
	ttl := time.Duration(event.TTLSecs) * time.Second

	result, err := s.limiter.AcquireLease(workspaceId, event.AgentId, event.CallId, ttl)
	if err != nil {
		// fail closed: tear the call down rather than admit it unchecked
		s.logger.Error(fmt.Sprintf("admission errored for call %s, rejecting: %s", event.CallId, err.Error()))
		s.hangup(event)
		return nil
	}
	if result != concurrency.AcquireGranted {
		s.logger.Info(fmt.Sprintf("call %s rejected for workspace %d: %s", event.CallId, workspaceId, result))
		s.hangup(event)
	}
	return nil
}

func (s *Service) hangup(event *models.CallEvent) {
	channelId := event.ChannelId
	if channelId == "" {
		channelId = event.CallId
	}
	if err := s.telephonyHandler.HangupChannel(channelId); err != nil {
		s.logger.Error(fmt.Sprintf("could not hang up channel %s: %s", channelId, err.Error()))
	}
}
