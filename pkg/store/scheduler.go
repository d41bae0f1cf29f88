package store

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ashpect/ttlstore/pkg/clock"
)

// scheduler keeps at most one timer armed, targeting the earliest valid item
// in the queue. It is Idle when armed is nil.
//
// All methods must be called with the owning store's mutex held.
type scheduler[K comparable, V any] struct {
	clock  clock.Clock
	table  *entryTable[K, V]
	queue  *expiryQueue[K]
	logger *logrus.Entry

	armed *queueItem[K]
	timer clock.Timer

	// fire is invoked from the timer goroutine without the store mutex.
	fire func(item *queueItem[K])
}

func (s *scheduler[K, V]) schedule(key K, expiresAt time.Time) {
	s.queue.insert(key, expiresAt)
	s.reconcile()
}

// reconcile drops stale items off the front of the queue and arms a timer for
// the first one the table still agrees with.
func (s *scheduler[K, V]) reconcile() {
	s.disarm()

	for {
		item, ok := s.queue.peekMin()
		if !ok {
			return
		}
		if !s.table.matches(item.key, item.expiresAt) {
			s.queue.popMin()
			s.logger.WithField("key", item.key).Debug("discarded stale expiry")
			continue
		}

		delay := item.expiresAt.Sub(s.clock.Now())
		if delay < 0 {
			delay = 0
		}
		s.armed = item
		s.timer = s.clock.AfterFunc(delay, func() { s.fire(item) })
		s.logger.WithFields(logrus.Fields{
			"key":   item.key,
			"delay": delay,
		}).Debug("armed expiry timer")
		return
	}
}

// take pops item if it is still the armed one and leaves the scheduler Idle.
// A timer that lost a race with disarm finds a different (or no) armed item.
func (s *scheduler[K, V]) take(item *queueItem[K]) bool {
	if s.armed != item {
		return false
	}
	s.armed = nil
	s.timer = nil
	s.queue.remove(item)
	return true
}

func (s *scheduler[K, V]) disarm() {
	if s.timer != nil {
		s.timer.Stop()
		s.logger.WithField("key", s.armed.key).Debug("disarmed expiry timer")
	}
	s.timer = nil
	s.armed = nil
}

func (s *scheduler[K, V]) isArmed() bool {
	return s.armed != nil
}
