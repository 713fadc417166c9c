package expiry

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fideslex/booking-service/pkg/logger"
)

type fakeSweeper struct {
	mu      sync.Mutex
	calls   int
	result  int64
	err     error
	release chan struct{}
	started chan struct{}
}

func (s *fakeSweeper) SweepAllExpired(ctx context.Context) (int64, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.started != nil {
		close(s.started)
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

func (s *fakeSweeper) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestWorker_RunOnce(t *testing.T) {
	sweeper := &fakeSweeper{result: 3}
	w := NewWorker(sweeper, "@every 1h", time.UTC, logger.NewNop())

	assert.Equal(t, int64(3), w.RunOnce(context.Background()))
	assert.Equal(t, 1, sweeper.callCount())
}

func TestWorker_RunOnceError(t *testing.T) {
	sweeper := &fakeSweeper{err: errors.New("db down")}
	w := NewWorker(sweeper, "@every 1h", time.UTC, logger.NewNop())

	assert.Equal(t, int64(0), w.RunOnce(context.Background()))
}

func TestWorker_SkipsOverlappingRuns(t *testing.T) {
	sweeper := &fakeSweeper{result: 1, release: make(chan struct{}), started: make(chan struct{})}
	w := NewWorker(sweeper, "@every 1h", time.UTC, logger.NewNop())

	done := make(chan int64)
	go func() { done <- w.RunOnce(context.Background()) }()
	<-sweeper.started

	assert.Equal(t, int64(0), w.RunOnce(context.Background()))

	close(sweeper.release)
	assert.Equal(t, int64(1), <-done)
	assert.Equal(t, 1, sweeper.callCount())
}

func TestWorker_InvalidSchedule(t *testing.T) {
	w := NewWorker(&fakeSweeper{}, "not a schedule", time.UTC, logger.NewNop())

	err := w.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schedule")
}

func TestWorker_StartStop(t *testing.T) {
	w := NewWorker(&fakeSweeper{}, "*/15 * * * *", time.UTC, logger.NewNop())
	require.NoError(t, w.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	w.Stop(ctx)
}
