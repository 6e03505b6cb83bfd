package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-loader/internal/adapter/memory"
	"campaign-loader/internal/core/domain"
	"campaign-loader/internal/core/port"
	"campaign-loader/internal/core/port/mocks"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNotifyDropsJobsInFlight(t *testing.T) {
	processor := mocks.NewMockJobProcessor(t)
	started := make(chan struct{})
	release := make(chan struct{})
	processor.EXPECT().
		ProcessJob(mock.Anything, "a").
		RunAndReturn(func(context.Context, string) error {
			close(started)
			<-release
			return nil
		}).
		Once()

	d := NewDispatcher(processor, 2, discard)
	ctx := context.Background()

	assert.True(t, d.Notify(ctx, "a"))
	<-started
	assert.False(t, d.Notify(ctx, "a"))

	close(release)
	d.Wait()
}

func TestNotifyRunsJobAgainAfterItReturns(t *testing.T) {
	processor := mocks.NewMockJobProcessor(t)
	processor.EXPECT().ProcessJob(mock.Anything, "a").Return(errors.New("boom")).Twice()

	d := NewDispatcher(processor, 1, discard)
	ctx := context.Background()

	assert.True(t, d.Notify(ctx, "a"))
	d.Wait()
	assert.True(t, d.Notify(ctx, "a"))
	d.Wait()
}

func TestNotifyBoundsConcurrency(t *testing.T) {
	var (
		mu      sync.Mutex
		running int
		peak    int
	)
	processor := mocks.NewMockJobProcessor(t)
	processor.EXPECT().
		ProcessJob(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, string) error {
			mu.Lock()
			running++
			peak = max(peak, running)
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			running--
			mu.Unlock()
			return nil
		}).
		Times(6)

	d := NewDispatcher(processor, 2, discard)
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		d.Notify(context.Background(), id)
	}
	d.Wait()

	assert.LessOrEqual(t, peak, 2)
}

func TestRunProcessesEventsUntilCancelled(t *testing.T) {
	repo := memory.NewJobRepository()
	defs := []domain.CampaignDefinition{domain.NewCampaignDefinition("Alpha", 1, decimal.NewFromInt(1))}
	now := time.Now()

	seen := make(chan string, 2)
	processor := mocks.NewMockJobProcessor(t)
	processor.EXPECT().
		ProcessJob(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) error {
			seen <- id
			return nil
		}).
		Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewDispatcher(processor, 4, discard).Run(ctx, repo)
	}()

	require.NoError(t, repo.Create(ctx, domain.NewCampaignJob("j1", "1", defs, now, time.Hour)))
	require.NoError(t, repo.Create(ctx, domain.NewCampaignJob("j2", "1", defs, now, time.Hour)))

	got := []string{<-seen, <-seen}
	assert.ElementsMatch(t, []string{"j1", "j2"}, got)

	cancel()
	assert.NoError(t, <-done)
}

type failingSource struct{ err error }

func (s failingSource) Listen(context.Context, func(string)) error { return s.err }

func TestRunReturnsSourceFailure(t *testing.T) {
	processor := mocks.NewMockJobProcessor(t)
	err := NewDispatcher(processor, 1, discard).Run(context.Background(), failingSource{err: port.ErrJobNotFound})
	assert.ErrorIs(t, err, port.ErrJobNotFound)
}

func TestNotifyRefusesWorkWhenCancelled(t *testing.T) {
	processor := mocks.NewMockJobProcessor(t)
	d := NewDispatcher(processor, 1, discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, d.Notify(ctx, "a"))
}

func TestNotifyRefusesWorkAfterRun(t *testing.T) {
	processor := mocks.NewMockJobProcessor(t)
	d := NewDispatcher(processor, 1, discard)

	err := d.Run(context.Background(), failingSource{err: port.ErrJobNotFound})
	require.ErrorIs(t, err, port.ErrJobNotFound)

	assert.False(t, d.Notify(context.Background(), "a"))
	d.Wait()
}

func TestJanitorDuringShutdownIsIgnored(t *testing.T) {
	repo := memory.NewJobRepository()
	defs := []domain.CampaignDefinition{domain.NewCampaignDefinition("Alpha", 1, decimal.NewFromInt(1))}
	require.NoError(t, repo.Create(context.Background(), domain.NewCampaignJob("j1", "1", defs, time.Now(), time.Hour)))

	processor := mocks.NewMockJobProcessor(t)
	d := NewDispatcher(processor, 1, discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, d.Run(ctx, repo))

	n, err := NewJanitor(repo, d, 10, discard).Sweep(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}
