package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AI-Growify/meta-activity-tracker/internal/config"
	"github.com/AI-Growify/meta-activity-tracker/internal/usecases/tracking"
)

type fakeTracker struct {
	runs    atomic.Int32
	block   chan struct{}
	started chan struct{}
}

func (f *fakeTracker) Run(ctx context.Context, lookbackHours int) (*tracking.RunReport, error) {
	f.runs.Add(1)
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		<-f.block
	}
	return &tracking.RunReport{}, nil
}

func newSyncService(tracker Tracker) *ActivitySyncService {
	return NewActivitySyncService(tracker, &config.Config{
		Sync: config.Sync{
			CronSchedule:  "0 */12 * * *",
			LookbackHours: 12,
		},
	})
}

func TestSyncActivities_SkipsOverlappingRuns(t *testing.T) {
	tracker := &fakeTracker{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	service := newSyncService(tracker)

	ctx := context.Background()

	go service.syncActivities(ctx)
	<-tracker.started

	// Segunda chamada enquanto a primeira ainda roda tem que ser ignorada
	service.syncActivities(ctx)
	assert.Equal(t, int32(1), tracker.runs.Load())

	close(tracker.block)

	// Com a primeira concluída, uma nova execução volta a ser aceita
	assert.Eventually(t, func() bool {
		service.syncActivities(ctx)
		return tracker.runs.Load() == 2
	}, time.Second, 10*time.Millisecond)
}

func TestGetStatus(t *testing.T) {
	service := newSyncService(&fakeTracker{})

	status := service.GetStatus()

	assert.Equal(t, "0 */12 * * *", status["sync_cron"])
	assert.Equal(t, 12, status["sync_lookback_hours"])
}

func TestGetStatus_ConcurrentWithSync(t *testing.T) {
	tracker := &fakeTracker{
		block:   make(chan struct{}),
		started: make(chan struct{}, 1),
	}
	service := newSyncService(tracker)

	ctx := context.Background()

	go service.syncActivities(ctx)
	<-tracker.started

	// Leituras de status durante uma execução em andamento não podem
	// disputar com as escritas dos timestamps
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				service.GetStatus()
			}
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	startedAt, ok := status["last_sync_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())

	close(tracker.block)

	assert.Eventually(t, func() bool {
		completedAt, ok := service.GetStatus()["last_sync_completed_at"].(time.Time)
		return ok && !completedAt.IsZero()
	}, time.Second, 10*time.Millisecond)
}
