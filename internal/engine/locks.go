package engine

import "sync"

// keyedMutex serializes turns per character id. Two concurrent actions for
// the same character would otherwise race on the read-modify-write of HP
// and inventory and lose updates.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[int64]*sync.Mutex)}
}

// Lock acquires the mutex for key, creating it on first use. Entries are
// never evicted; the map is bounded by the number of distinct characters.
func (k *keyedMutex) Lock(key int64) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
}

func (k *keyedMutex) Unlock(key int64) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()
	m.Unlock()
}
