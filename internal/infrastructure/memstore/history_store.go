package memstore

import (
	"sync"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"
)

var _ application.HistoryStore = (*HistoryStore)(nil)

// HistoryStore keeps one log per symbol. The outer lock only guards slot
// creation, so appends for different symbols never contend.
type HistoryStore struct {
	mu    sync.RWMutex
	slots map[domain.Symbol]*symbolLog
}

type symbolLog struct {
	mu      sync.RWMutex
	records []domain.QuoteRecord
}

func NewHistoryStore() *HistoryStore {
	return &HistoryStore{slots: map[domain.Symbol]*symbolLog{}}
}

func (s *HistoryStore) Ensure(symbol domain.Symbol) { s.slot(symbol) }

func (s *HistoryStore) Append(symbol domain.Symbol, rec domain.QuoteRecord) {
	l := s.slot(symbol)
	l.mu.Lock()
	l.records = append(l.records, rec)
	l.mu.Unlock()
}

// Snapshot copies the log as of the call; later appends are not visible in
// the returned slice.
func (s *HistoryStore) Snapshot(symbol domain.Symbol) []domain.QuoteRecord {
	s.mu.RLock()
	l, ok := s.slots[symbol]
	s.mu.RUnlock()
	if !ok {
		return []domain.QuoteRecord{}
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]domain.QuoteRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (s *HistoryStore) slot(symbol domain.Symbol) *symbolLog {
	s.mu.RLock()
	l, ok := s.slots[symbol]
	s.mu.RUnlock()
	if ok {
		return l
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok = s.slots[symbol]; !ok {
		l = &symbolLog{}
		s.slots[symbol] = l
	}
	return l
}
