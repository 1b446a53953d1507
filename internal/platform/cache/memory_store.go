package cache

import (
	"context"
	"sync"
	"time"

	portsrepo "github.com/SscSPs/backoffice_governance/internal/core/ports/repositories"
)

const cleanupInterval = 5 * time.Minute

// MemoryStore is a single-instance IdempotencyStore backed by a map.
type MemoryStore struct {
	mu        sync.RWMutex
	expiresAt map[string]time.Time
	ttl       time.Duration
	now       func() time.Time
	stop      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryStore creates a store whose keys expire after ttl and starts the
// goroutine that evicts expired keys.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		expiresAt: make(map[string]time.Time),
		ttl:       ttl,
		now:       time.Now,
		stop:      make(chan struct{}),
	}
	s.wg.Add(1)
	go s.cleanupLoop()
	return s
}

var _ portsrepo.IdempotencyStore = (*MemoryStore)(nil)

// MarkProcessed implements portsrepo.IdempotencyStore
func (s *MemoryStore) MarkProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if exp, ok := s.expiresAt[key]; ok && now.Before(exp) {
		return false, nil
	}
	s.expiresAt[key] = now.Add(s.ttl)
	return true, nil
}

// IsProcessed implements portsrepo.IdempotencyStore
func (s *MemoryStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	exp, ok := s.expiresAt[key]
	return ok && s.now().Before(exp), nil
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		s.wg.Wait()
	})
	return nil
}

// Len returns the number of tracked keys, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.expiresAt)
}

func (s *MemoryStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *MemoryStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, exp := range s.expiresAt {
		if !now.Before(exp) {
			delete(s.expiresAt, key)
		}
	}
}
