package services

import (
	"context"
	"sync"
	"time"

	"github.com/renato0307/prinbox/internal/domain"
	"github.com/renato0307/prinbox/internal/logging"
	"github.com/renato0307/prinbox/internal/ports"
)

// DefaultRefreshInterval is used when the configuration does not set one
const DefaultRefreshInterval = 300 * time.Second

// Refresher runs one refresh cycle
type Refresher interface {
	Refresh(ctx context.Context, trigger domain.Trigger) *domain.Snapshot
}

// Scheduler drives refresh cycles so that at most one runs at a time
type Scheduler struct {
	inFlight       bool
	interval       time.Duration
	latest         *domain.Snapshot
	lifetime       context.Context // Cancels running cycles; set by Run
	mu             sync.Mutex
	nextSubID      int
	pending        bool
	pendingTrigger domain.Trigger
	recorder       ports.RunRecorder
	refresher      Refresher
	subscribers    map[int]chan *domain.Snapshot
}

// NewScheduler creates a new Scheduler. recorder may be nil.
func NewScheduler(refresher Refresher, recorder ports.RunRecorder, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Scheduler{
		interval:    interval,
		lifetime:    context.Background(),
		recorder:    recorder,
		refresher:   refresher,
		subscribers: make(map[int]chan *domain.Snapshot),
	}
}

// Interval returns the time between scheduled cycles
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Refresh runs a cycle and returns its snapshot. When a cycle is already running the
// request is coalesced: the running caller performs exactly one more cycle after the
// current one, and this call returns (nil, false) immediately.
//
// A cycle is shared by every viewer, so cancelling ctx does not abort it. Only the
// context given to Run does; a cycle aborted that way is neither published nor
// recorded and Refresh returns (nil, true).
func (s *Scheduler) Refresh(ctx context.Context, trigger domain.Trigger) (*domain.Snapshot, bool) {
	s.mu.Lock()
	if s.inFlight {
		s.pending = true
		s.pendingTrigger = trigger
		s.mu.Unlock()
		logging.Logger.Debug("Refresh already in progress, coalescing request", "trigger", trigger)
		return nil, false
	}
	s.inFlight = true
	lifetime := s.lifetime
	s.mu.Unlock()

	cycleCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	stop := context.AfterFunc(lifetime, cancel)
	defer func() {
		stop()
		cancel()
	}()

	for {
		snap := s.refresher.Refresh(cycleCtx, trigger)
		if cycleCtx.Err() != nil {
			logging.Logger.Info("Refresh aborted, discarding snapshot", "trigger", trigger)
			snap = nil
		} else {
			s.publish(cycleCtx, snap)
		}

		s.mu.Lock()
		if s.pending && cycleCtx.Err() == nil {
			s.pending = false
			trigger = s.pendingTrigger
			s.mu.Unlock()
			continue
		}
		s.pending = false
		s.inFlight = false
		s.mu.Unlock()

		return snap, true
	}
}

// Running reports whether a cycle is in flight
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// Run performs a startup cycle and then one cycle per interval until ctx is cancelled.
// The interval restarts after each cycle completes, so ticks missed during a slow cycle
// are dropped rather than queued. Cancelling ctx also aborts the cycle in flight.
func (s *Scheduler) Run(ctx context.Context) error {
	logging.Logger.Info("Scheduler started", "interval", s.interval.String())

	s.mu.Lock()
	s.lifetime = ctx
	s.mu.Unlock()

	s.Refresh(ctx, domain.TriggerStartup)

	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("Scheduler stopped")
			return nil
		case <-timer.C:
			s.Refresh(ctx, domain.TriggerTimer)
			timer.Reset(s.interval)
		}
	}
}

// Latest returns the most recent snapshot, or nil before the first cycle completes
func (s *Scheduler) Latest() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// Subscribe returns a channel receiving every new snapshot. Slow readers only see the
// latest one. The returned function unsubscribes and closes the channel.
func (s *Scheduler) Subscribe() (<-chan *domain.Snapshot, func()) {
	ch := make(chan *domain.Snapshot, 1)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

func (s *Scheduler) publish(ctx context.Context, snap *domain.Snapshot) {
	if snap == nil {
		return
	}

	s.mu.Lock()
	s.latest = snap
	for _, ch := range s.subscribers {
		// Drop the unread snapshot so the newest one always fits
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
	s.mu.Unlock()

	if s.recorder == nil {
		return
	}
	run := domain.RefreshRun{
		Accounts:    snap.Accounts,
		CompletedAt: snap.CompletedAt,
		ID:          snap.ID,
		Rows:        snap.Total,
		StartedAt:   snap.StartedAt,
		Trigger:     snap.Trigger,
		Warnings:    len(snap.Warnings),
	}
	if err := s.recorder.Record(ctx, run); err != nil {
		logging.Logger.Warn("Failed to record refresh run", "error", err, "snapshot_id", snap.ID)
	}
}
