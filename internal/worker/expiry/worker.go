package expiry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = time.Minute

// Worker периодически запускает глобальную очистку просроченных записей
type Worker struct {
	sweeper    Sweeper
	cron       *cron.Cron
	schedule   string
	runTimeout time.Duration
	logger     Logger

	mu      sync.Mutex
	running bool
}

// NewWorker создает воркер с расписанием в формате cron (5 полей)
func NewWorker(sweeper Sweeper, schedule string, loc *time.Location, logger Logger) *Worker {
	if loc == nil {
		loc = time.UTC
	}
	return &Worker{
		sweeper:    sweeper,
		cron:       cron.New(cron.WithLocation(loc)),
		schedule:   schedule,
		runTimeout: defaultRunTimeout,
		logger:     logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (w *Worker) Start() error {
	if _, err := w.cron.AddFunc(w.schedule, func() { w.RunOnce(context.Background()) }); err != nil {
		return fmt.Errorf("expiry worker: invalid schedule %q: %w", w.schedule, err)
	}
	w.cron.Start()
	w.logger.Info("Expiry worker started (schedule=%q)", w.schedule)
	return nil
}

// Stop останавливает планировщик и ждет текущий запуск, но не дольше ctx
func (w *Worker) Stop(ctx context.Context) {
	done := w.cron.Stop()
	select {
	case <-done.Done():
		w.logger.Info("Expiry worker stopped")
	case <-ctx.Done():
		w.logger.Warn("Expiry worker stop timed out: %v", ctx.Err())
	}
}

// RunOnce выполняет один проход очистки. Параллельные запуски пропускаются.
func (w *Worker) RunOnce(ctx context.Context) int64 {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		w.logger.Warn("Expiry sweep skipped: previous run still in progress")
		return 0
	}
	w.running = true
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, w.runTimeout)
	defer cancel()

	n, err := w.sweeper.SweepAllExpired(ctx)
	if err != nil {
		w.logger.Error("Expiry sweep failed: %v", err)
		return 0
	}
	if n > 0 {
		w.logger.Info("Expiry sweep finalized %d appointments", n)
	}
	return n
}
