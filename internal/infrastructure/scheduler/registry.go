package scheduler

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"stockmonitor-service/internal/application"
	"stockmonitor-service/internal/domain"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

var _ application.JobRegistry = (*Registry)(nil)

// Registry runs one gocron job per symbol. Runs of the same job are not
// serialized: a tick that outlives the interval overlaps with the next one.
type Registry struct {
	cron *gocron.Scheduler
	ctx  context.Context
	log  *zap.Logger
	now  func() time.Time

	// mu serializes the Every/Do chain as well as the jobs map.
	mu   sync.Mutex
	jobs map[domain.Symbol]entry
}

type entry struct {
	job  *gocron.Job
	info domain.MonitorJob
}

// NewRegistry starts the underlying scheduler. ctx is handed to every tick
// and is never cancelled by replacement.
func NewRegistry(ctx context.Context, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	cron := gocron.NewScheduler(time.UTC)
	cron.StartAsync()
	return &Registry{
		cron: cron,
		ctx:  ctx,
		log:  log,
		now:  func() time.Time { return time.Now().UTC() },
		jobs: map[domain.Symbol]entry{},
	}
}

// Install removes the symbol's current job, if any, and schedules tick to
// run every interval. The first run happens one interval after Install.
// A run of the old job that already started is left to finish.
func (r *Registry) Install(symbol domain.Symbol, interval time.Duration, tick application.TickFunc) (domain.MonitorJob, error) {
	if interval <= 0 {
		return domain.MonitorJob{}, domain.ErrInvalidInterval
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	log := r.log.With(zap.String("symbol", symbol.String()), zap.Duration("interval", interval))
	if prev, ok := r.jobs[symbol]; ok {
		r.cron.RemoveByReference(prev.job)
		delete(r.jobs, symbol)
		log.Info("monitor_job.cancelled", zap.Duration("previous_interval", prev.info.Interval))
	}

	ctx := r.ctx
	job, err := r.cron.Every(interval).WaitForSchedule().Do(func() { tick(ctx) })
	if err != nil {
		log.Error("monitor_job.schedule_failed", zap.Error(err))
		return domain.MonitorJob{}, fmt.Errorf("schedule %s: %w", symbol, err)
	}
	info := domain.MonitorJob{Symbol: symbol, Interval: interval, StartedAt: r.now()}
	r.jobs[symbol] = entry{job: job, info: info}
	log.Info("monitor_job.installed")
	return info, nil
}

// Jobs lists the active jobs ordered by symbol.
func (r *Registry) Jobs() []domain.MonitorJob {
	r.mu.Lock()
	out := make([]domain.MonitorJob, 0, len(r.jobs))
	for _, e := range r.jobs {
		out = append(out, e.info)
	}
	r.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Stop halts all timers. It is only meant for process shutdown.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cron.Stop()
	r.log.Info("monitor_registry.stopped", zap.Int("jobs", len(r.jobs)))
}
