package cache

import (
	"context"
	"sync"
	"time"

	"github.com/Domenick1991/railbooking/internal/domain"
)

// MemoryDrafts is the mock-mode draft holder. Entries expire lazily
// on read.
type MemoryDrafts struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]memoryDraft
}

type memoryDraft struct {
	draft     domain.PendingBooking
	expiresAt time.Time
}

func NewMemoryDrafts(ttl time.Duration) *MemoryDrafts {
	return &MemoryDrafts{ttl: ttl, drafts: make(map[string]memoryDraft)}
}

func (m *MemoryDrafts) PutDraft(_ context.Context, userID string, draft *domain.PendingBooking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[userID] = memoryDraft{draft: *draft, expiresAt: time.Now().Add(m.ttl)}
	return nil
}

func (m *MemoryDrafts) GetDraft(_ context.Context, userID string) (*domain.PendingBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.drafts[userID]
	if !ok {
		return nil, domain.ErrDraftNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(m.drafts, userID)
		return nil, domain.ErrDraftNotFound
	}
	draft := entry.draft
	return &draft, nil
}

func (m *MemoryDrafts) DeleteDraft(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, userID)
	return nil
}
