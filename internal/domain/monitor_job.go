package domain

import "time"

// MonitorJob describes the active recurring fetch for one symbol.
type MonitorJob struct {
	Symbol    Symbol
	Interval  time.Duration
	StartedAt time.Time
}
