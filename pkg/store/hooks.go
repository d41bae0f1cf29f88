package store

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrCallbackPanic is wrapped by every error reported for a callback that panicked.
var ErrCallbackPanic = errors.New("store callback panicked")

// Hook names used in errors reported to the error handler.
const (
	HookSet    = "onSet"
	HookDelete = "onDelete"
	HookExpire = "onExpire"
	HookClear  = "onClear"
)

type hooks[K comparable, V any] struct {
	onSet    func(key K, value V)
	onDelete func(key K)
	onExpire func(key K, value V)
	onClear  func()
	onError  func(err error)
}

func (h *hooks[K, V]) set(key K, value V) {
	if h.onSet != nil {
		h.guard(HookSet, func() { h.onSet(key, value) })
	}
}

func (h *hooks[K, V]) delete(key K) {
	if h.onDelete != nil {
		h.guard(HookDelete, func() { h.onDelete(key) })
	}
}

func (h *hooks[K, V]) expire(key K, value V) {
	if h.onExpire != nil {
		h.guard(HookExpire, func() { h.onExpire(key, value) })
	}
}

func (h *hooks[K, V]) clear() {
	if h.onClear != nil {
		h.guard(HookClear, h.onClear)
	}
}

// guard runs a caller supplied callback, turning a panic into an error for onError.
func (h *hooks[K, V]) guard(name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			h.report(errors.Wrapf(ErrCallbackPanic, "%s: %v", name, r))
		}
	}()
	fn()
}

func (h *hooks[K, V]) report(err error) {
	defer func() {
		// A panicking error handler must not take the timer goroutine down with it.
		_ = recover()
	}()
	h.onError(err)
}

func logCallbackError(logger *logrus.Entry) func(error) {
	return func(err error) {
		logger.WithError(err).Error("callback failed")
	}
}
