package application

import (
	"context"
	"fmt"
	"time"

	"stockmonitor-service/internal/domain"

	"go.uber.org/zap"
)

type MonitoringService struct {
	quotes    QuoteSource
	history   HistoryStore
	jobs      JobRegistry
	publisher QuotePublisher
	log       *zap.Logger
}

type Option func(*MonitoringService)

func WithPublisher(p QuotePublisher) Option { return func(s *MonitoringService) { s.publisher = p } }
func WithLogger(l *zap.Logger) Option       { return func(s *MonitoringService) { s.log = l } }

func NewMonitoringService(quotes QuoteSource, history HistoryStore, jobs JobRegistry, opts ...Option) *MonitoringService {
	s := &MonitoringService{
		quotes:  quotes,
		history: history,
		jobs:    jobs,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.publisher == nil {
		s.publisher = NoopPublisher{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// StartMonitoring installs (or replaces) the recurring fetch for a symbol.
// Validation happens before any store is touched.
func (s *MonitoringService) StartMonitoring(ctx context.Context, rawSymbol string, interval time.Duration) (domain.MonitorJob, error) {
	sym, err := domain.NormalizeSymbol(rawSymbol)
	if err != nil {
		return domain.MonitorJob{}, err
	}
	if interval <= 0 {
		return domain.MonitorJob{}, domain.ErrInvalidInterval
	}

	s.history.Ensure(sym)
	job, err := s.jobs.Install(sym, interval, s.tick(sym))
	if err != nil {
		return domain.MonitorJob{}, fmt.Errorf("install monitor %s: %w", sym, err)
	}
	s.log.Info("monitor.started", zap.String("symbol", sym.String()), zap.Duration("interval", interval))
	return job, nil
}

// Refresh fetches once, synchronously, and appends the result. Unlike a
// tick, failures are returned to the caller.
func (s *MonitoringService) Refresh(ctx context.Context, rawSymbol string) (domain.QuoteRecord, error) {
	sym, err := domain.NormalizeSymbol(rawSymbol)
	if err != nil {
		return domain.QuoteRecord{}, err
	}
	rec, err := s.quotes.Fetch(ctx, sym)
	if err != nil {
		return domain.QuoteRecord{}, err
	}
	s.record(ctx, sym, rec)
	return rec, nil
}

// GetHistory returns the records captured so far; an unseen symbol yields
// an empty slice.
func (s *MonitoringService) GetHistory(_ context.Context, rawSymbol string) ([]domain.QuoteRecord, error) {
	sym, err := domain.NormalizeSymbol(rawSymbol)
	if err != nil {
		return nil, err
	}
	return s.history.Snapshot(sym), nil
}

func (s *MonitoringService) ListMonitors(context.Context) []domain.MonitorJob {
	return s.jobs.Jobs()
}

func (s *MonitoringService) tick(sym domain.Symbol) TickFunc {
	return func(ctx context.Context) {
		log := s.log.With(zap.String("symbol", sym.String()))
		defer func() {
			if r := recover(); r != nil {
				log.Error("monitor_tick.panic", zap.Any("panic", r))
			}
		}()
		rec, err := s.quotes.Fetch(ctx, sym)
		if err != nil {
			log.Warn("monitor_tick.fetch_failed", zap.Error(err))
			return
		}
		s.record(ctx, sym, rec)
		log.Debug("monitor_tick.recorded", zap.Time("fetched_at", rec.FetchedAt))
	}
}

func (s *MonitoringService) record(ctx context.Context, sym domain.Symbol, rec domain.QuoteRecord) {
	s.history.Append(sym, rec)
	if err := s.publisher.Publish(ctx, rec); err != nil {
		s.log.Warn("quote.publish_failed", zap.String("symbol", sym.String()), zap.Error(err))
	}
}
