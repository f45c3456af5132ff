package cache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"videosurvey/internal/model"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

type memorySessionCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemorySessionCache keeps sessions in process memory. Sessions are stored
// serialized so callers never share a *model.Session.
func NewMemorySessionCache(ttl time.Duration) SessionCache {
	return &memorySessionCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *memorySessionCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[session.ID] = memoryEntry{data: data, expiresAt: c.now().Add(c.ttl)}
	c.sweepLocked()
	return nil
}

func (c *memorySessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	e, ok := c.entries[id]
	if ok && !c.now().Before(e.expiresAt) {
		delete(c.entries, id)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal(e.data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *memorySessionCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, id)
	return nil
}

func (c *memorySessionCache) sweepLocked() {
	now := c.now()
	for id, e := range c.entries {
		if !now.Before(e.expiresAt) {
			delete(c.entries, id)
		}
	}
}
