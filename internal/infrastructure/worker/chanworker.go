package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"

	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("publish queue full")

var (
	_ application.QuotePublisher = (*ChanWorker)(nil)
	_ application.Worker         = (*ChanWorker)(nil)
)

// ChanWorker decouples quote publication from the caller. Publish only
// enqueues; Start drains the queue into the wrapped publisher.
type ChanWorker struct {
	next    application.QuotePublisher
	jobs    chan domain.QuoteRecord
	timeout time.Duration
	log     *zap.Logger
}

func NewChanWorker(next application.QuotePublisher, buffer int, log *zap.Logger) *ChanWorker {
	if buffer <= 0 {
		buffer = 256
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ChanWorker{
		next:    next,
		jobs:    make(chan domain.QuoteRecord, buffer),
		timeout: 5 * time.Second,
		log:     log.With(zap.String("worker", "chan")),
	}
}

// Publish never blocks; a full queue drops the record.
func (w *ChanWorker) Publish(_ context.Context, rec domain.QuoteRecord) error {
	select {
	case w.jobs <- rec:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrQueueFull, rec.Symbol)
	}
}

func (w *ChanWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("chan_worker.stop", zap.Int("pending", len(w.jobs)))
			return
		case rec := <-w.jobs:
			w.processOne(ctx, rec)
		}
	}
}

func (w *ChanWorker) processOne(ctx context.Context, rec domain.QuoteRecord) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Warn("chan_worker.panic", zap.Any("r", r), zap.String("symbol", rec.Symbol.String()))
		}
	}()
	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.next.Publish(c, rec); err != nil {
		w.log.Warn("chan_worker.publish_failed", zap.String("symbol", rec.Symbol.String()), zap.Error(err))
	}
}
