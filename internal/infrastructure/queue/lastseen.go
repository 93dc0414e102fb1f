package queue

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bms-ph/records-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256

	// minInterval coalesces bursts: one stamp per principal per interval.
	minInterval  = time.Minute
	writeTimeout = 5 * time.Second
)

// LastSeenRecorder stamps principal activity off the request path. Events are
// sharded to a fixed set of workers by principal id so stamps for one account
// never race each other; a full channel drops the event — the stamp is
// best-effort and must never block or fail a request.
type LastSeenRecorder struct {
	workers []chan string
	repo    ports.UserRepository
	log     zerolog.Logger
}

// NewLastSeenRecorder creates a recorder with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewLastSeenRecorder(numWorkers int, repo ports.UserRepository, log zerolog.Logger) *LastSeenRecorder {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	r := &LastSeenRecorder{
		workers: make([]chan string, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range r.workers {
		r.workers[i] = make(chan string, channelBuffer)
	}
	return r
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (r *LastSeenRecorder) Start(ctx context.Context) {
	for i, ch := range r.workers {
		go r.runWorker(ctx, i, ch)
	}
}

// Record enqueues an activity stamp. Never blocks; drops when the shard is full.
func (r *LastSeenRecorder) Record(principalID string) {
	select {
	case r.workers[r.shardIndex(principalID)] <- principalID:
	default:
	}
}

// shardIndex maps a principal id deterministically to a worker index.
func (r *LastSeenRecorder) shardIndex(principalID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(principalID))
	return int(h.Sum32()) % len(r.workers)
}

func (r *LastSeenRecorder) runWorker(ctx context.Context, id int, ch <-chan string) {
	lastStamped := make(map[string]time.Time)

	for {
		select {
		case <-ctx.Done():
			return
		case principalID, ok := <-ch:
			if !ok {
				return
			}

			now := time.Now().UTC()
			if stamped, seen := lastStamped[principalID]; seen && now.Sub(stamped) < minInterval {
				continue
			}

			writeCtx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := r.repo.TouchLastSeen(writeCtx, principalID, now)
			cancel()
			if err != nil {
				r.log.Debug().Err(err).
					Str("principal_id", principalID).
					Int("worker_id", id).
					Msg("last seen stamp failed")
				continue
			}
			lastStamped[principalID] = now
		}
	}
}
