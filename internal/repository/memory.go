package repository

import (
	"context"
	"sync"

	"burrito-bot/internal/domain"
)

// MemoryStore keeps conversation state for the lifetime of the process.
type MemoryStore struct {
	mu    sync.RWMutex
	convs map[string]*domain.ConversationState
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{convs: map[string]*domain.ConversationState{}}
}

// Get returns the state of conversationID, registering a fresh one on first
// access. It never fails.
func (m *MemoryStore) Get(_ context.Context, conversationID string) (*domain.ConversationState, error) {
	m.mu.RLock()
	state, ok := m.convs[conversationID]
	m.mu.RUnlock()
	if ok {
		return state, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if state, ok = m.convs[conversationID]; ok {
		return state, nil
	}
	state = domain.NewConversationState(conversationID)
	m.convs[conversationID] = state
	return state, nil
}

// Save registers state under its conversation id.
func (m *MemoryStore) Save(_ context.Context, state *domain.ConversationState) error {
	if state == nil {
		return nil
	}
	m.mu.Lock()
	m.convs[state.ConversationID] = state
	m.mu.Unlock()
	return nil
}
