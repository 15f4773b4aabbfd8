package application

//go:generate mockgen -destination=mocks/mock_ports.go -package=mocks stockmonitor-service/internal/application QuoteSource,HistoryStore,JobRegistry,QuotePublisher

import (
	"context"
	"time"

	"stockmonitor-service/internal/domain"
)

// QuoteSource performs one upstream lookup per call.
type QuoteSource interface {
	Fetch(ctx context.Context, symbol domain.Symbol) (domain.QuoteRecord, error)
}

// HistoryStore is an append-only per-symbol log. Implementations must be
// safe for concurrent use.
type HistoryStore interface {
	Ensure(symbol domain.Symbol)
	Append(symbol domain.Symbol, rec domain.QuoteRecord)
	Snapshot(symbol domain.Symbol) []domain.QuoteRecord
}

// TickFunc is invoked on every firing of a monitor job.
type TickFunc func(ctx context.Context)

// JobRegistry keeps at most one recurring job per symbol. Install cancels
// any existing job for the symbol before the new one is scheduled.
type JobRegistry interface {
	Install(symbol domain.Symbol, interval time.Duration, tick TickFunc) (domain.MonitorJob, error)
	Jobs() []domain.MonitorJob
}

// QuotePublisher fans captured records out to subscribers.
type QuotePublisher interface {
	Publish(ctx context.Context, rec domain.QuoteRecord) error
}

// NoopPublisher drops every record.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.QuoteRecord) error { return nil }
