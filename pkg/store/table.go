package store

import "time"

type lookupStatus int

const (
	missing lookupStatus = iota
	found
	expired
)

// entry is replaced wholesale on every set. A zero expiresAt means no expiry.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

func (e *entry[V]) isExpired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// entryTable is the source of truth for liveness and expiry of every key.
type entryTable[K comparable, V any] struct {
	items map[K]*entry[V]
}

func newEntryTable[K comparable, V any]() *entryTable[K, V] {
	return &entryTable[K, V]{items: make(map[K]*entry[V])}
}

func (t *entryTable[K, V]) put(key K, value V, expiresAt time.Time) {
	t.items[key] = &entry[V]{value: value, expiresAt: expiresAt}
}

// getLive removes an overdue entry before reporting it as expired,
// handing back the value it held.
func (t *entryTable[K, V]) getLive(key K, now time.Time) (V, lookupStatus) {
	e, ok := t.items[key]
	if !ok {
		var zero V
		return zero, missing
	}
	if e.isExpired(now) {
		delete(t.items, key)
		return e.value, expired
	}
	return e.value, found
}

func (t *entryTable[K, V]) remove(key K) bool {
	if _, ok := t.items[key]; !ok {
		return false
	}
	delete(t.items, key)
	return true
}

// matches reports whether key is present and its current expiry is exactly expiresAt.
func (t *entryTable[K, V]) matches(key K, expiresAt time.Time) bool {
	e, ok := t.items[key]
	return ok && !e.expiresAt.IsZero() && e.expiresAt.Equal(expiresAt)
}

// expire removes key only if it still carries expiresAt.
func (t *entryTable[K, V]) expire(key K, expiresAt time.Time) (V, bool) {
	if !t.matches(key, expiresAt) {
		var zero V
		return zero, false
	}
	e := t.items[key]
	delete(t.items, key)
	return e.value, true
}

func (t *entryTable[K, V]) len() int {
	return len(t.items)
}

// live copies every entry that is not overdue at now.
func (t *entryTable[K, V]) live(now time.Time) map[K]V {
	out := make(map[K]V, len(t.items))
	for k, e := range t.items {
		if !e.isExpired(now) {
			out[k] = e.value
		}
	}
	return out
}

func (t *entryTable[K, V]) clear() {
	clear(t.items)
}
