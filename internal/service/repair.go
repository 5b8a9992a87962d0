package service

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "competition-registration-backend/internal/errors"
	"competition-registration-backend/internal/logger"
	"competition-registration-backend/internal/metrics"
	"competition-registration-backend/internal/repository"
)

const maxRepairAttempts = 5

// RepairQueue is a de-duplicated set of invite codes whose replicas need a sync
type RepairQueue struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	attempts map[string]int
	metrics  *metrics.RosterMetrics
}

// NewRepairQueue creates an empty repair queue
func NewRepairQueue(m *metrics.RosterMetrics) *RepairQueue {
	return &RepairQueue{
		pending:  make(map[string]struct{}),
		attempts: make(map[string]int),
		metrics:  m,
	}
}

// Schedule queues a team for repair; scheduling a queued team again is a no-op
func (q *RepairQueue) Schedule(inviteCode string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending[inviteCode] = struct{}{}
	q.metrics.SetRepairQueueDepth(len(q.pending))
}

// Drain empties the queue and returns its codes in a stable order
func (q *RepairQueue) Drain() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	codes := make([]string, 0, len(q.pending))
	for code := range q.pending {
		codes = append(codes, code)
	}
	q.pending = make(map[string]struct{})
	q.metrics.SetRepairQueueDepth(0)
	sort.Strings(codes)
	return codes
}

// Len returns the number of queued teams
func (q *RepairQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// retry requeues a code that failed again, giving up after maxRepairAttempts
func (q *RepairQueue) retry(inviteCode string) bool {
	q.mu.Lock()
	q.attempts[inviteCode]++
	giveUp := q.attempts[inviteCode] >= maxRepairAttempts
	if giveUp {
		delete(q.attempts, inviteCode)
	}
	q.mu.Unlock()
	if !giveUp {
		q.Schedule(inviteCode)
	}
	return !giveUp
}

func (q *RepairQueue) done(inviteCode string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	delete(q.attempts, inviteCode)
}

// RepairWorker periodically re-syncs teams whose propagation left replicas behind
type RepairWorker struct {
	queue    *RepairQueue
	store    repository.RegistrationRepositoryInterface
	engine   RosterEngineInterface
	interval time.Duration
	metrics  *metrics.RosterMetrics
}

// NewRepairWorker creates a new repair worker
func NewRepairWorker(queue *RepairQueue, store repository.RegistrationRepositoryInterface, engine RosterEngineInterface, interval time.Duration, m *metrics.RosterMetrics) *RepairWorker {
	return &RepairWorker{
		queue:    queue,
		store:    store,
		engine:   engine,
		interval: interval,
		metrics:  m,
	}
}

// Run drains the queue on every tick until ctx is cancelled
func (w *RepairWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	log := logger.New().WithField("component", "repair_worker")
	log.Infof("repair worker started, interval %s", w.interval)

	for {
		select {
		case <-ctx.Done():
			log.Infof("repair worker stopped")
			return
		case <-ticker.C:
			if n := w.RunOnce(ctx); n > 0 {
				log.Infof("repaired %d teams", n)
			}
		}
	}
}

// RunOnce syncs every queued team from its owner copy and returns how many fully succeeded
func (w *RepairWorker) RunOnce(ctx context.Context) int {
	repaired := 0
	for _, code := range w.queue.Drain() {
		if ctx.Err() != nil {
			w.queue.Schedule(code)
			continue
		}
		err := w.repair(ctx, code)
		w.metrics.ObserveRepair(err)
		switch {
		case err == nil:
			w.queue.done(code)
			repaired++
		case apperrors.IsNotFound(err):
			// team dissolved
			w.queue.done(code)
		default:
			requeued := w.queue.retry(code)
			logger.New().WithFields(map[string]interface{}{
				"invite_code": code,
				"requeued":    requeued,
			}).WithError(err).Warnf("team repair failed")
		}
	}
	return repaired
}

func (w *RepairWorker) repair(ctx context.Context, inviteCode string) error {
	owner, err := w.store.FindByInviteCode(ctx, inviteCode)
	if err != nil {
		return err
	}
	i := owner.FindByInviteCode(inviteCode)
	if i < 0 {
		return apperrors.ErrInviteCodeNotFound
	}
	entry := owner.Disciplines[i]

	result, err := w.engine.SyncTeam(ctx, owner.EventID, entry.Name, owner.StudentID, SyncUpdates{})
	if err != nil {
		return err
	}
	if len(result.Failed) > 0 {
		return result.Failed[0].Err
	}
	return nil
}
