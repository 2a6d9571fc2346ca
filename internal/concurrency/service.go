package concurrency

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"denku.com/billing/models"
	"denku.com/billing/repository"
	"denku.com/billing/utils"
)

// AcquireResult is the admission outcome for one call-start event.
type AcquireResult string

const (
	AcquireGranted              AcquireResult = "granted"
	AcquireRejectedLimitReached AcquireResult = "rejected:limit_reached"
	AcquireRejectedOrgInactive  AcquireResult = "rejected:org_inactive"
	AcquireError                AcquireResult = "error"
)

// Service gates call admission so no workspace exceeds its concurrency
// limit, and reclaims capacity when "call ended" signals are lost.
type Service struct {
	leaseRepository     repository.LeaseRepository
	workspaceRepository repository.WorkspaceRepository
	auditRepository     repository.AuditRepository
	logger              *logrus.Entry
}

func NewService(lRepo repository.LeaseRepository, wRepo repository.WorkspaceRepository, aRepo repository.AuditRepository) *Service {
	return &Service{
		leaseRepository:     lRepo,
		workspaceRepository: wRepo,
		auditRepository:     aRepo,
		logger:              logrus.WithField("component", "concurrency_limiter"),
	}
}

// AcquireLease admits one call if the workspace is active and below its
// concurrency limit. Expired leases are reclaimed first so a crashed call
// cannot hold a slot past its TTL. Store failures reject the call: admission
// control fails closed.
func (s *Service) AcquireLease(workspaceId int, agentId string, callId string, ttl time.Duration) (AcquireResult, error) {
	if ttl <= 0 {
		ttl = models.DefaultLeaseTTL
	}

	settings, err := s.workspaceRepository.GetSettings(workspaceId)
	if err != nil {
		return AcquireError, err
	}
	if settings.Status != models.WorkspaceStatusActive {
		s.auditRejection(workspaceId, callId, string(AcquireRejectedOrgInactive))
		return AcquireRejectedOrgInactive, nil
	}

	workspace, err := s.workspaceRepository.GetWorkspaceFromDB(workspaceId)
	if err != nil {
		return AcquireError, err
	}
	plans, err := s.workspaceRepository.GetServicePlans()
	if err != nil {
		return AcquireError, err
	}
	plan := utils.GetPlan(plans, workspace)
	if plan == nil {
		return AcquireError, fmt.Errorf("workspace %d has unknown plan %s", workspaceId, workspace.Plan)
	}
	limit := workspace.ConcurrencyLimit(plan)

	// self-heal before counting
	now := time.Now()
	if _, err := s.leaseRepository.DeleteExpiredForWorkspace(workspaceId, now); err != nil {
		return AcquireError, err
	}

	lease := &models.CallLease{
		WorkspaceId: workspaceId,
		CallId:      callId,
		AgentId:     agentId,
		AcquiredAt:  now,
		TTLSecs:     int(ttl.Seconds()),
		ExpiresAt:   now.Add(ttl),
	}
	result, err := s.leaseRepository.InsertLeaseIfBelowLimit(lease, limit)
	if err != nil {
		return AcquireError, err
	}

	switch result {
	case repository.LeaseAlreadyHeld:
		// duplicate webhook delivery; the call already owns its slot
		return AcquireGranted, nil
	case repository.LeaseLimitReached:
		s.logger.Info(fmt.Sprintf("rejecting call %s for workspace %d: limit of %d reached", callId, workspaceId, limit))
		s.auditRejection(workspaceId, callId, string(AcquireRejectedLimitReached))
		return AcquireRejectedLimitReached, nil
	}
	return AcquireGranted, nil
}

// ReleaseLease frees the call's slot. Releasing a lease that never existed
// or was already released is a no-op: webhooks arrive more than once and
// out of order.
func (s *Service) ReleaseLease(workspaceId int, callId string) error {
	return s.leaseRepository.DeleteLease(workspaceId, callId)
}

// ReleaseExpiredLeases reclaims capacity across all workspaces and returns
// the number of leases removed.
func (s *Service) ReleaseExpiredLeases() (int64, error) {
	reclaimed, err := s.leaseRepository.DeleteAllExpired(time.Now())
	if err != nil {
		return 0, err
	}
	if reclaimed > 0 {
		s.logger.Info(fmt.Sprintf("reclaimed %d expired leases", reclaimed))
	}
	return reclaimed, nil
}

func (s *Service) auditRejection(workspaceId int, callId string, reason string) {
	event := &models.AuditEvent{
		WorkspaceId: workspaceId,
		Action:      "call.rejected",
		Actor:       models.AuditActorWebhook,
		BeforeState: "",
		AfterState:  fmt.Sprintf(`{"call_id":%q,"reason":%q}`, callId, reason),
	}
	if err := s.auditRepository.Append(event); err != nil {
		s.logger.Error("could not append audit event: " + err.Error())
	}
}
