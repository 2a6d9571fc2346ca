package models

// Call lifecycle event types published by the telephony edge.
const (
	CallEventStarted = "call.started"
	CallEventEnded   = "call.ended"
)

// CallEvent is the normalized payload on the call_events queue. The edge
// may redeliver the same event more than once and out of order.
type CallEvent struct {
	Type      string `json:"type"`
	CallId    string `json:"call_id"`
	AgentId   string `json:"agent_id"`
	ChannelId string `json:"channel_id"`
	Number    string `json:"number"`
	TTLSecs   int    `json:"ttl_secs,omitempty"`
}

// BillingEventTask wraps a raw payment-provider event on the billing_events
// queue. Payload is the provider's JSON; it may be a thin reference that
// needs a follow-up fetch.
type BillingEventTask struct {
	EventId string `json:"event_id"`
	Payload []byte `json:"payload"`
}

// SweepTask is a scheduled job fanned out by the distributor to workers.
type SweepTask struct {
	Job          string `json:"job"`
	WorkspaceID  int    `json:"workspace_id"`
	BillingMonth string `json:"billing_month"`
	RunID        string `json:"run_id"`
}
