package domain

// Event types delivered by the chat platform.
const (
	EventMessage      = "message"
	EventMembersAdded = "membersAdded"
)

// Chat types. Anything other than ChatGroup is treated as a personal chat.
const (
	ChatPersonal = "personal"
	ChatGroup    = "group"
)

// User identifies a chat participant.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Mention is a structured mention entity attached to a message. Text is the
// literal token as it appears in the message body (e.g. "<at>Sam</at>").
type Mention struct {
	Text string `json:"text" validate:"required"`
	ID   string `json:"id" validate:"required"`
	Name string `json:"name"`
}

// Event is the provider-agnostic inbound event consumed by the dialogue
// service.
type Event struct {
	Type           string    `json:"type" validate:"required,oneof=message membersAdded"`
	ConversationID string    `json:"conversationId" validate:"required"`
	ChatType       string    `json:"chatType" validate:"omitempty,oneof=personal group"`
	From           User      `json:"from"`
	Text           string    `json:"text"`
	Mentions       []Mention `json:"mentions" validate:"dive"`
	BotID          string    `json:"botId"`
	MembersAdded   []string  `json:"membersAdded"`
}

// IsGroup reports whether the event comes from a multi-party conversation.
func (e Event) IsGroup() bool {
	return e.ChatType == ChatGroup
}
