package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Award is a single recognition event. Awards are appended once and never
// mutated.
type Award struct {
	ID             string    `json:"id"`
	RecipientID    string    `json:"recipientId"`
	RecipientName  string    `json:"recipientName"`
	GiverID        string    `json:"giverId"`
	GiverName      string    `json:"giverName"`
	ConversationID string    `json:"conversationId"`
	CreatedAt      time.Time `json:"createdAt"`
	Reason         string    `json:"reason,omitempty"`
}

// UserStats aggregates the burritos a user has received and given within one
// conversation.
type UserStats struct {
	DisplayName   string    `json:"displayName"`
	TotalReceived int       `json:"totalReceived"`
	TotalGiven    int       `json:"totalGiven"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// ConversationState is the root aggregate of a conversation.
type ConversationState struct {
	ConversationID string                `json:"conversationId"`
	Admins         []string              `json:"admins"`
	Awards         []Award               `json:"awards"`
	Stats          map[string]*UserStats `json:"stats"`
	// StatsOrder keeps user ids in the order they first appeared in Stats.
	StatsOrder []string `json:"statsOrder"`
}

// NewConversationState returns an empty state for conversationID.
func NewConversationState(conversationID string) *ConversationState {
	return &ConversationState{
		ConversationID: conversationID,
		Admins:         []string{},
		Awards:         []Award{},
		Stats:          map[string]*UserStats{},
		StatsOrder:     []string{},
	}
}

// IsAdmin reports whether userID is an admin of the conversation.
func (c *ConversationState) IsAdmin(userID string) bool {
	return userID != "" && lo.Contains(c.Admins, userID)
}

// AddAdmin promotes userID. It reports false when the user already was an
// admin.
func (c *ConversationState) AddAdmin(userID string) bool {
	if userID == "" || c.IsAdmin(userID) {
		return false
	}
	c.Admins = append(c.Admins, userID)
	return true
}

// AwardBurrito records one burrito from giver to recipient and updates both
// users' stats. Callers are responsible for rejecting self-awards.
func (c *ConversationState) AwardBurrito(recipientID, recipientName, giverID, giverName, reason string, at time.Time) Award {
	award := Award{
		ID:             uuid.NewString(),
		RecipientID:    recipientID,
		RecipientName:  recipientName,
		GiverID:        giverID,
		GiverName:      giverName,
		ConversationID: c.ConversationID,
		CreatedAt:      at,
		Reason:         strings.TrimSpace(reason),
	}
	c.Awards = append(c.Awards, award)

	recipient := c.statsFor(recipientID)
	recipient.DisplayName = recipientName
	recipient.TotalReceived++
	recipient.LastUpdated = at

	giver := c.statsFor(giverID)
	giver.DisplayName = giverName
	giver.TotalGiven++
	giver.LastUpdated = at

	return award
}

// StatsFor returns the stats of userID, or nil when the user never took part
// in an award.
func (c *ConversationState) StatsFor(userID string) *UserStats {
	return c.Stats[userID]
}

// FindByName looks up a user by display name, case-insensitively. The most
// recently inserted match wins.
func (c *ConversationState) FindByName(name string) (string, *UserStats, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, false
	}
	id, _, ok := lo.FindLastIndexOf(c.StatsOrder, func(id string) bool {
		s := c.Stats[id]
		return s != nil && strings.EqualFold(s.DisplayName, name)
	})
	if !ok {
		return "", nil, false
	}
	return id, c.Stats[id], true
}

func (c *ConversationState) statsFor(userID string) *UserStats {
	if c.Stats == nil {
		c.Stats = map[string]*UserStats{}
	}
	s, ok := c.Stats[userID]
	if !ok {
		s = &UserStats{}
		c.Stats[userID] = s
		c.StatsOrder = append(c.StatsOrder, userID)
	}
	return s
}
