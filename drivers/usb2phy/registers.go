package usb2phy

import "time"

const (
	// Upper half-word of a GRF write selects which lower bits are written.
	writeEnableShift = 16

	// Charger detection budgets and timings.
	dcdMaxRetries     = 6
	primaryMaxRetries = 2
	dcdPollTime       = 100 * time.Millisecond
	primaryDetTime    = 40 * time.Millisecond
	secondaryDetTime  = 40 * time.Millisecond

	// Lifecycle timings.
	utmiClkSettle = 2 * time.Millisecond // after leaving suspend
	suspendPulse  = 20 * time.Microsecond
	resetPulse    = 20 * time.Microsecond
	resetRecovery = 100 * time.Microsecond
)
