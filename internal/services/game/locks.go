package game

import (
	"sync"

	"github.com/mattrk/trickhall/internal/model"
)

// keyedMutex serializes the read-apply-write cycle per game. The reducer
// itself is a pure function; without this boundary two near-simultaneous
// actions could both read the same snapshot and one write would be lost.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[model.GameCode]*gameLock
}

type gameLock struct {
	mu   sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{
		locks: make(map[model.GameCode]*gameLock),
	}
}

// Lock acquires the mutex for the given game and returns its unlock
// function. Lock entries are reference counted so finished games do not
// leak mutexes.
func (k *keyedMutex) Lock(code model.GameCode) func() {
	k.mu.Lock()
	l, ok := k.locks[code]
	if !ok {
		l = &gameLock{}
		k.locks[code] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()

		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.locks, code)
		}
		k.mu.Unlock()
	}
}
