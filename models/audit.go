package models

import "time"

// Audit actors
const (
	AuditActorSystem    = "system"
	AuditActorScheduler = "scheduler"
	AuditActorWebhook   = "webhook"
)

// AuditEvent is one append-only entry in the audit sink.
type AuditEvent struct {
	Id          int
	WorkspaceId int
	Action      string
	Actor       string
	BeforeState string
	AfterState  string
	CreatedAt   time.Time
}
