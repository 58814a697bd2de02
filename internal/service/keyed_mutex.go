package service

import "sync"

// keyedMutex serializes work per key within this process. Quiz submissions
// for the same user must not interleave; the store-level compare-and-set
// still guards against other writers.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*userLock)}
}

// Lock acquires the mutex for key and returns its unlock function. Entries
// are dropped once the last holder releases, so the map stays bounded by the
// number of in-flight keys.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &userLock{}
		k.locks[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
