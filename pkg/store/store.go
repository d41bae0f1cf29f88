package store

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashpect/ttlstore/pkg/clock"
)

type Store[K comparable, V any] interface {
	// Set stores value for key with no expiry, replacing any previous entry.
	Set(key K, value V)

	// SetWithTTL stores value for key, expiring it after ttl. ttl <= 0 means no expiry.
	SetWithTTL(key K, value V, ttl time.Duration)

	// Get returns the value for key and true if present and not expired.
	// An overdue entry is removed and reported to onExpire.
	Get(key K) (V, bool)

	// Has reports whether Get would find key.
	Has(key K) bool

	// Delete removes key and reports whether it was present, expired or not.
	Delete(key K) bool

	// Clear removes every entry and cancels the pending timer.
	Clear()

	// Stop cancels the pending timer. Entries are kept and still expire on access.
	Stop()

	// Len returns the number of stored entries, including overdue ones not yet purged.
	Len() int

	// GetAll returns a copy of all entries that are not overdue.
	GetAll() map[K]V
}

var _ Store[string, any] = (*TTLStore[string, any])(nil)

// TTLStore is an in-memory key/value store whose entries may carry a TTL.
// Expired entries are removed by a single timer aimed at the earliest
// deadline, and on access for anything the timer has not reached yet.
type TTLStore[K comparable, V any] struct {
	mu sync.Mutex
	// fireMu serializes timer fires so onExpire sees deadlines in order.
	fireMu sync.Mutex

	table *entryTable[K, V]
	queue *expiryQueue[K]
	sched *scheduler[K, V]

	clock  clock.Clock
	logger *logrus.Entry
	hooks  hooks[K, V]
}

// New creates an empty store. Options configure callbacks, clock and logger.
func New[K comparable, V any](opts ...Option[K, V]) *TTLStore[K, V] {
	s := &TTLStore[K, V]{
		table:  newEntryTable[K, V](),
		queue:  newExpiryQueue[K](),
		clock:  clock.Real(),
		logger: defaultLogger(),
	}

	for _, o := range opts {
		o(s)
	}

	if s.hooks.onError == nil {
		s.hooks.onError = logCallbackError(s.logger)
	}
	s.sched = &scheduler[K, V]{
		clock:  s.clock,
		table:  s.table,
		queue:  s.queue,
		logger: s.logger,
		fire:   s.expireArmed,
	}
	return s
}

func (s *TTLStore[K, V]) Set(key K, value V) {
	s.mu.Lock()
	s.table.put(key, value, time.Time{})
	s.mu.Unlock()

	s.hooks.set(key, value)
}

func (s *TTLStore[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	if ttl <= 0 {
		s.Set(key, value)
		return
	}

	s.mu.Lock()
	expiresAt := s.clock.Now().Add(ttl)
	s.table.put(key, value, expiresAt)
	s.sched.schedule(key, expiresAt)
	s.mu.Unlock()

	s.hooks.set(key, value)
}

func (s *TTLStore[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	value, status := s.table.getLive(key, s.clock.Now())
	s.mu.Unlock()

	switch status {
	case found:
		return value, true
	case expired:
		s.logger.WithField("key", key).Debug("expired on access")
		s.hooks.expire(key, value)
	}
	var zero V
	return zero, false
}

func (s *TTLStore[K, V]) Has(key K) bool {
	_, ok := s.Get(key)
	return ok
}

func (s *TTLStore[K, V]) Delete(key K) bool {
	s.mu.Lock()
	removed := s.table.remove(key)
	s.mu.Unlock()

	if removed {
		s.hooks.delete(key)
	}
	return removed
}

func (s *TTLStore[K, V]) Clear() {
	s.mu.Lock()
	s.sched.disarm()
	s.table.clear()
	s.queue.clear()
	s.mu.Unlock()

	s.hooks.clear()
}

func (s *TTLStore[K, V]) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sched.disarm()
}

func (s *TTLStore[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.len()
}

func (s *TTLStore[K, V]) GetAll() map[K]V {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.live(s.clock.Now())
}

// expireArmed is the timer fire transition: pop the armed item, expire its
// entry, arm the next valid item, then tell onExpire.
func (s *TTLStore[K, V]) expireArmed(item *queueItem[K]) {
	s.fireMu.Lock()
	defer s.fireMu.Unlock()

	s.mu.Lock()
	if !s.sched.take(item) {
		s.mu.Unlock()
		return
	}
	// The entry may have been deleted or expired on access since the timer was armed.
	value, ok := s.table.expire(item.key, item.expiresAt)
	s.sched.reconcile()
	s.mu.Unlock()

	if ok {
		s.logger.WithField("key", item.key).Debug("expired by timer")
		s.hooks.expire(item.key, value)
	}
}
