// Package lock provides RegionLocker implementations: an in-process locker
// for single instances and a redis locker shared by a cluster.
package lock

import (
	"context"
	"sync"

	"lightmap/internal/domain/service"
)

// LocalLocker holds one lock per region key inside the process. Entries are
// reference counted so the table only holds keys that are in use.
type LocalLocker struct {
	mu      sync.Mutex
	entries map[int64]*localEntry
}

type localEntry struct {
	// A buffered channel is a mutex that can be abandoned when ctx is done.
	held chan struct{}
	refs int
}

// NewLocalLocker creates an empty in-process locker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{entries: make(map[int64]*localEntry)}
}

var _ service.RegionLocker = (*LocalLocker)(nil)

// Lock acquires keys in the given order. On failure nothing stays held.
func (l *LocalLocker) Lock(ctx context.Context, keys []int64) (func(), error) {
	acquired := make([]int64, 0, len(keys))
	release := func() {
		for i := len(acquired) - 1; i >= 0; i-- {
			l.release(acquired[i])
		}
	}

	for _, key := range keys {
		if err := l.acquire(ctx, key); err != nil {
			release()

			return nil, err
		}
		acquired = append(acquired, key)
	}

	return onceFunc(release), nil
}

func (l *LocalLocker) acquire(ctx context.Context, key int64) error {
	l.mu.Lock()
	entry, ok := l.entries[key]
	if !ok {
		entry = &localEntry{held: make(chan struct{}, 1)}
		l.entries[key] = entry
	}
	entry.refs++
	l.mu.Unlock()

	select {
	case entry.held <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.unref(key)

		return ctx.Err()
	}
}

func (l *LocalLocker) release(key int64) {
	l.mu.Lock()
	entry := l.entries[key]
	l.mu.Unlock()

	<-entry.held
	l.unref(key)
}

func (l *LocalLocker) unref(key int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := l.entries[key]
	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, key)
	}
}

// size reports the number of keys currently tracked.
func (l *LocalLocker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

func onceFunc(fn func()) func() {
	var once sync.Once

	return func() { once.Do(fn) }
}
