package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Record
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryRegistry builds an in-process registry. Sessions older than
// ttl are dropped lazily on Resolve; ttl <= 0 disables expiry.
func NewMemoryRegistry(ttl time.Duration) Registry {
	return &memoryRegistry{
		sessions: make(map[string]Record),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (r *memoryRegistry) Issue(_ context.Context, accountID string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	token := uuid.NewString()
	for _, exists := r.sessions[token]; exists; _, exists = r.sessions[token] {
		token = uuid.NewString()
	}

	r.sessions[token] = Record{AccountID: accountID, CreatedAt: r.now().UTC()}
	return token, nil
}

func (r *memoryRegistry) Resolve(_ context.Context, token string) (string, error) {
	r.mu.RLock()
	rec, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return "", ErrUnknownToken
	}

	if r.expired(rec) {
		r.mu.Lock()
		// re-check under the write lock, another caller may have won
		if cur, ok := r.sessions[token]; ok && r.expired(cur) {
			delete(r.sessions, token)
		}
		r.mu.Unlock()
		return "", ErrUnknownToken
	}

	return rec.AccountID, nil
}

func (r *memoryRegistry) Revoke(_ context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
	return nil
}

func (r *memoryRegistry) expired(rec Record) bool {
	if r.ttl <= 0 {
		return false
	}
	return r.now().Sub(rec.CreatedAt) > r.ttl
}

// count is a test helper.
func (r *memoryRegistry) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
