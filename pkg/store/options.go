package store

import (
	"github.com/sirupsen/logrus"

	"github.com/ashpect/ttlstore/pkg/clock"
	"github.com/ashpect/ttlstore/pkg/utils"
)

// Option is a functional option for building a TTLStore
type Option[K comparable, V any] func(*TTLStore[K, V])

// WithOnSet registers a callback invoked at the end of every Set and SetWithTTL.
func WithOnSet[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		s.hooks.onSet = fn
	}
}

// WithOnDelete registers a callback invoked when Delete removes an existing key.
func WithOnDelete[K comparable, V any](fn func(key K)) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		s.hooks.onDelete = fn
	}
}

// WithOnExpire registers a callback invoked once per expiration,
// whether found on access or by the timer.
func WithOnExpire[K comparable, V any](fn func(key K, value V)) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		s.hooks.onExpire = fn
	}
}

// WithOnClear registers a callback invoked at the end of Clear.
func WithOnClear[K comparable, V any](fn func()) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		s.hooks.onClear = fn
	}
}

// WithErrorHandler receives errors from panicking callbacks. Defaults to logging them.
func WithErrorHandler[K comparable, V any](fn func(err error)) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		if fn != nil {
			s.hooks.onError = fn
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock[K comparable, V any](c clock.Clock) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		if c == nil {
			panic("clock must not be nil")
		}
		s.clock = c
	}
}

// WithLogger sets the logger used for scheduler debug output and callback errors.
func WithLogger[K comparable, V any](logger *logrus.Entry) Option[K, V] {
	return func(s *TTLStore[K, V]) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func defaultLogger() *logrus.Entry {
	return utils.Logger.WithField("component", "store")
}
