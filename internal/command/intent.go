// Package command turns chat messages into intents. Parsing is pure: it
// never touches conversation state or sends replies.
package command

import "burrito-bot/internal/domain"

// Kind tags the outcome of parsing one message.
type Kind string

const (
	KindMakeAdmin    Kind = "make_admin"
	KindDebug        Kind = "debug"
	KindAdmin        Kind = "admin"
	KindMentionAward Kind = "mention_award"
	KindNameAward    Kind = "name_award"
	KindEmojiAward   Kind = "emoji_award"
	KindStats        Kind = "stats"
	KindLeaderboard  Kind = "leaderboard"
	KindHelp         Kind = "help"
	KindGreeting     Kind = "greeting"
	KindFallback     Kind = "fallback"
)

// AdminAction is the sub-command of an /admin message.
type AdminAction string

const (
	AdminReport      AdminAction = "report"
	AdminStats       AdminAction = "stats"
	AdminLeaderboard AdminAction = "leaderboard"
	AdminAdd         AdminAction = "add"
	AdminHelp        AdminAction = "help"
)

// EmojiReason marks awards triggered by burrito emoji alone.
const EmojiReason = "emoji-award"

// Input is one message to classify.
type Input struct {
	// Text is the raw message text, used for emoji counting and reasons.
	Text string
	// Group is true for multi-party conversations.
	Group bool
	// Mentions are the structured mentions attached to the message.
	Mentions []domain.Mention
}

// Intent is the tagged result of Parse. Only the fields relevant to Kind
// are populated.
type Intent struct {
	Kind Kind

	// Award intents.
	RecipientID   string
	RecipientName string
	// ByName is set when the recipient came from free text rather than a
	// resolved mention; the self-award guard then compares names too.
	ByName   bool
	Quantity int
	Reason   string

	// Admin intents.
	Admin   AdminAction
	Arg     string
	Mention *domain.Mention
}

// IsAward reports whether the intent records burritos.
func (i Intent) IsAward() bool {
	switch i.Kind {
	case KindMentionAward, KindNameAward, KindEmojiAward:
		return true
	default:
		return false
	}
}
