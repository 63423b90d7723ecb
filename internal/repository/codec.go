package repository

import (
	"encoding/json"
	"fmt"
	"sort"

	"burrito-bot/internal/domain"
)

func encodeState(state *domain.ConversationState) ([]byte, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("repository: encode state: %w", err)
	}
	return b, nil
}

// decodeState restores a persisted state and repairs the bookkeeping fields
// that older records may lack.
func decodeState(conversationID string, raw []byte) (*domain.ConversationState, error) {
	state := domain.NewConversationState(conversationID)
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("repository: decode state: %w", err)
	}
	if state.ConversationID == "" {
		state.ConversationID = conversationID
	}
	if state.Admins == nil {
		state.Admins = []string{}
	}
	if state.Awards == nil {
		state.Awards = []domain.Award{}
	}
	if state.Stats == nil {
		state.Stats = map[string]*domain.UserStats{}
	}

	known := make(map[string]bool, len(state.StatsOrder))
	order := make([]string, 0, len(state.Stats))
	for _, id := range state.StatsOrder {
		if _, ok := state.Stats[id]; ok && !known[id] {
			known[id] = true
			order = append(order, id)
		}
	}
	var missing []string
	for id := range state.Stats {
		if !known[id] {
			missing = append(missing, id)
		}
	}
	sort.Strings(missing)
	state.StatsOrder = append(order, missing...)
	return state, nil
}
