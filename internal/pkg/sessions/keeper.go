// Package sessions serializes event processing per chat session. Concurrent
// events for the same session must not interleave their order mutations (two
// racing page-count submissions, or a cancel racing a payment confirmation),
// while events for different sessions stay fully independent.
package sessions

import "sync"

// entry is a session lock plus the number of goroutines holding or waiting
// for it. The entry is dropped from the registry when the count reaches zero.
type entry struct {
	lock sync.Mutex
	refs int
}

// Keeper hands out one lock per session key. Locks are created lazily on
// first use and removed once no event holds or waits for them, so the
// registry tracks only sessions with in-flight events.
type Keeper struct {
	mu      sync.Mutex
	entries map[int64]*entry
}

// NewKeeper creates an empty Keeper.
func NewKeeper() *Keeper {
	return &Keeper{
		entries: make(map[int64]*entry),
	}
}

// Do runs fn while holding the lock for the given session key, guaranteeing
// at most one in-flight mutation per session. The error of fn is returned
// unchanged.
func (k *Keeper) Do(sessionKey int64, fn func() error) error {
	e := k.acquire(sessionKey)
	e.lock.Lock()

	defer func() {
		e.lock.Unlock()
		k.release(sessionKey, e)
	}()

	return fn()
}

func (k *Keeper) acquire(sessionKey int64) *entry {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[sessionKey]
	if !ok {
		e = &entry{}
		k.entries[sessionKey] = e
	}
	e.refs++
	return e
}

func (k *Keeper) release(sessionKey int64, e *entry) {
	k.mu.Lock()
	defer k.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(k.entries, sessionKey)
	}
}
