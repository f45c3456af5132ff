package service

import (
	"context"
	"sync"
	"time"

	"videosurvey/internal/cache"
	"videosurvey/internal/model"
)

// SessionStore loads and saves sessions and serializes actions per session,
// so every session sees its events one at a time.
type SessionStore struct {
	cache cache.SessionCache
	locks keyedMutex
	now   func() time.Time
}

// NewSessionStore creates a session store over a cache
func NewSessionStore(c cache.SessionCache) *SessionStore {
	return &SessionStore{
		cache: c,
		locks: keyedMutex{locks: make(map[string]*refLock)},
		now:   time.Now,
	}
}

// Load fetches a session or returns ErrSessionNotFound
func (st *SessionStore) Load(ctx context.Context, id string) (*model.Session, error) {
	sess, err := st.cache.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// Save stamps UpdatedAt and stores the session
func (st *SessionStore) Save(ctx context.Context, sess *model.Session) error {
	sess.UpdatedAt = st.now()
	return st.cache.Set(ctx, sess)
}

// Lock holds the per-session lock until the returned func is called
func (st *SessionStore) Lock(id string) func() {
	return st.locks.Lock(id)
}

type refLock struct {
	mu   sync.Mutex
	refs int
}

type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refLock
}

func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	l := k.locks[key]
	if l == nil {
		l = &refLock{}
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
