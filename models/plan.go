package models

// ServicePlan represents a subscription plan with its concurrency and
// overage parameters.
type ServicePlan struct {
	Id                  int
	KeyName             string
	MonthlyFeeCents     int64
	MinutesPerMonth     float64
	ConcurrentCalls     int
	OverageThresholdUsd float64
	HardCapUsd          float64
}

// Built-in overage defaults per plan, used when no overage_state row exists
// yet for the month.
var planOverageDefaults = map[string]struct {
	Threshold float64
	HardCap   float64
}{
	"starter": {Threshold: 50, HardCap: 150},
	"pro":     {Threshold: 100, HardCap: 500},
	"scale":   {Threshold: 250, HardCap: 2000},
}

// OverageDefaultsForPlan returns the collection threshold and hard cap for a
// plan code. Unknown plan codes get the smallest tier's defaults, so a
// misconfigured workspace is capped conservatively rather than not at all.
func OverageDefaultsForPlan(keyName string) (threshold float64, hardCap float64) {
	d, ok := planOverageDefaults[keyName]
	if !ok {
		d = planOverageDefaults["starter"]
	}
	return d.Threshold, d.HardCap
}
