package application_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"

	"github.com/shopspring/decimal"
)

var errUpstream = errors.New("upstream down")

// scriptedSource returns the queued results in order, then repeats the last one.
type scriptedSource struct {
	mu      sync.Mutex
	results []sourceResult
	calls   int
}

type sourceResult struct {
	rec domain.QuoteRecord
	err error
}

func (s *scriptedSource) Fetch(_ context.Context, sym domain.Symbol) (domain.QuoteRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.calls
	if i >= len(s.results) {
		i = len(s.results) - 1
	}
	s.calls++
	r := s.results[i]
	if r.err != nil {
		return domain.QuoteRecord{}, r.err
	}
	r.rec.Symbol = sym
	return r.rec, nil
}

type memHistory struct {
	mu      sync.Mutex
	entries map[domain.Symbol][]domain.QuoteRecord
}

func newMemHistory() *memHistory {
	return &memHistory{entries: map[domain.Symbol][]domain.QuoteRecord{}}
}

func (m *memHistory) Ensure(sym domain.Symbol) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[sym]; !ok {
		m.entries[sym] = []domain.QuoteRecord{}
	}
}

func (m *memHistory) Append(sym domain.Symbol, rec domain.QuoteRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[sym] = append(m.entries[sym], rec)
}

func (m *memHistory) Snapshot(sym domain.Symbol) []domain.QuoteRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.QuoteRecord{}, m.entries[sym]...)
}

// manualRegistry captures tick funcs so tests can fire them deterministically.
type manualRegistry struct {
	mu    sync.Mutex
	ticks map[domain.Symbol]application.TickFunc
	jobs  map[domain.Symbol]domain.MonitorJob
}

func newManualRegistry() *manualRegistry {
	return &manualRegistry{
		ticks: map[domain.Symbol]application.TickFunc{},
		jobs:  map[domain.Symbol]domain.MonitorJob{},
	}
}

func (r *manualRegistry) Install(sym domain.Symbol, interval time.Duration, tick application.TickFunc) (domain.MonitorJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job := domain.MonitorJob{Symbol: sym, Interval: interval, StartedAt: time.Now()}
	r.ticks[sym] = tick
	r.jobs[sym] = job
	return job, nil
}

func (r *manualRegistry) Jobs() []domain.MonitorJob {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.MonitorJob, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, j)
	}
	return out
}

func (r *manualRegistry) fire(sym domain.Symbol) {
	r.mu.Lock()
	tick := r.ticks[sym]
	r.mu.Unlock()
	tick(context.Background())
}

func quoteAt(price float64, at time.Time) domain.QuoteRecord {
	p := decimal.NewFromFloat(price)
	return domain.QuoteRecord{Open: p, High: p, Low: p, Close: p, PreviousClose: p, FetchedAt: at}
}
