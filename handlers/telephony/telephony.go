package telephony

// TelephonyHandler is the boundary to the voice platform: number routing
// assignments and live channel control. The status write in the store and
// these side effects are not one transaction; the pause orchestrator's
// enforcement pass converges them after partial failures.
type TelephonyHandler interface {
	BindNumbers(workspaceId int) error
	UnbindNumbers(workspaceId int) error
	HangupChannel(channelId string) error
}
