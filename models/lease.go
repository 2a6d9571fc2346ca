package models

import "time"

// DefaultLeaseTTL bounds how long a lost "call ended" webhook can hold a
// concurrency slot. Longer than any plausible call plus webhook retries.
const DefaultLeaseTTL = 15 * time.Minute

// CallLease holds one unit of call concurrency for a workspace. The UNIQUE
// constraint on CallId is the admission boundary: one call id, one lease.
type CallLease struct {
	Id          int
	WorkspaceId int
	CallId      string
	AgentId     string
	AcquiredAt  time.Time
	TTLSecs     int
	ExpiresAt   time.Time
}
