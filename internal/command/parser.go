package command

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"burrito-bot/internal/domain"
)

// BurritoEmoji is the reward glyph counted for quantities.
const BurritoEmoji = "🌯"

var (
	mentionAwardRe = regexp.MustCompile(`(?i)\b(?:give|award|grant)\s+(<at>.*?</at>)\s+(?:a\s+)?burritos?\b(?:\s+for\s+(.+))?`)
	nameAwardRe    = regexp.MustCompile(`(?i)\b(?:give|award|grant)\s+([\p{L}\p{N}_\s-]+?)\s+(?:a\s+)?burritos?\b(?:\s+for\s+(.+))?`)
	mentionTagRe   = regexp.MustCompile(`(?i)<at>(.*?)</at>`)
)

var (
	makeAdminPhrases = []string{"/makeadmin", "/makemeadmin"}
	debugPhrases     = []string{"/debug", "/info"}
	helpExact        = []string{"commands", "/help"}
)

var triggerPhrases = map[Kind][]string{
	KindStats:       {"my burritos", "burrito count"},
	KindLeaderboard: {"burrito leaderboard", "top burritos"},
	KindHelp:        {"help", "what can you do"},
	KindGreeting:    {"hello", "hi", "hey", "howdy", "hola"},
}

// NameResolver maps a typed name to a user id.
type NameResolver func(name string) string

// Parser classifies messages. A Parser is safe for concurrent use.
type Parser struct {
	resolve  NameResolver
	triggers *phraseMatcher
}

// Option configures a Parser.
type Option func(*Parser)

// WithNameResolver replaces SyntheticUserID for free-text recipients.
func WithNameResolver(r NameResolver) Option {
	return func(p *Parser) {
		if r != nil {
			p.resolve = r
		}
	}
}

// NewParser builds a Parser.
func NewParser(opts ...Option) (*Parser, error) {
	triggers, err := newPhraseMatcher(triggerPhrases, KindGreeting)
	if err != nil {
		return nil, err
	}
	p := &Parser{resolve: SyntheticUserID, triggers: triggers}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// message is the normalised view of an Input shared by the strategies.
type message struct {
	raw      string
	lower    string
	group    bool
	mentions []domain.Mention
	triggers map[Kind]bool
}

type strategy func(p *Parser, m *message) (Intent, bool)

// strategies run in order; the first match wins.
var strategies = []strategy{
	(*Parser).parseMakeAdmin,
	(*Parser).parseDebug,
	(*Parser).parseAdmin,
	(*Parser).parseMentionAward,
	(*Parser).parseNameAward,
	(*Parser).parseEmojiAward,
	triggerStrategy(KindStats),
	triggerStrategy(KindLeaderboard),
	(*Parser).parseHelp,
	triggerStrategy(KindGreeting),
}

// Parse returns exactly one intent for in.
func (p *Parser) Parse(in Input) Intent {
	raw := strings.TrimSpace(in.Text)
	lower := strings.ToLower(raw)
	m := &message{
		raw:      raw,
		lower:    lower,
		group:    in.Group,
		mentions: in.Mentions,
		triggers: p.triggers.match(lower),
	}
	for _, s := range strategies {
		if intent, ok := s(p, m); ok {
			return intent
		}
	}
	return Intent{Kind: KindFallback}
}

func (p *Parser) parseMakeAdmin(m *message) (Intent, bool) {
	return Intent{Kind: KindMakeAdmin}, lo.Contains(makeAdminPhrases, m.lower)
}

func (p *Parser) parseDebug(m *message) (Intent, bool) {
	return Intent{Kind: KindDebug}, lo.Contains(debugPhrases, m.lower)
}

func (p *Parser) parseAdmin(m *message) (Intent, bool) {
	fields := strings.Fields(m.lower)
	if len(fields) == 0 || fields[0] != "/admin" {
		return Intent{}, false
	}
	intent := Intent{Kind: KindAdmin, Admin: AdminHelp}
	if len(fields) < 2 {
		return intent, true
	}
	switch AdminAction(fields[1]) {
	case AdminReport:
		intent.Admin = AdminReport
		if len(fields) > 2 {
			intent.Arg = fields[2]
		}
	case AdminStats:
		intent.Admin = AdminStats
		if len(m.mentions) > 0 {
			intent.Mention = &m.mentions[0]
		}
		intent.Arg = adminArgument(m.raw)
	case AdminLeaderboard:
		intent.Admin = AdminLeaderboard
	case AdminAdd:
		intent.Admin = AdminAdd
	}
	return intent, true
}

func (p *Parser) parseMentionAward(m *message) (Intent, bool) {
	if !m.group {
		return Intent{}, false
	}
	match := mentionAwardRe.FindStringSubmatch(m.raw)
	if match == nil {
		return Intent{}, false
	}
	mention, ok := lo.Find(m.mentions, func(item domain.Mention) bool {
		return strings.EqualFold(strings.TrimSpace(item.Text), match[1])
	})
	if !ok || mention.ID == "" {
		return Intent{}, false
	}
	name := mention.Name
	if name == "" {
		name = stripMentionTags(mention.Text)
	}
	return Intent{
		Kind:          KindMentionAward,
		RecipientID:   mention.ID,
		RecipientName: name,
		Quantity:      max(CountEmoji(m.raw), 1),
		Reason:        cleanReason(match[2]),
	}, true
}

func (p *Parser) parseNameAward(m *message) (Intent, bool) {
	match := nameAwardRe.FindStringSubmatch(m.raw)
	if match == nil {
		return Intent{}, false
	}
	name := strings.Join(strings.Fields(match[1]), " ")
	if strings.Contains(strings.ToLower(name), "<at>") || strings.Contains(name, "@") {
		return Intent{}, false
	}
	// "give a burrito" names nobody; the article belongs to the grammar.
	if strings.EqualFold(name, "a") {
		return Intent{}, false
	}
	return Intent{
		Kind:          KindNameAward,
		RecipientID:   p.resolve(name),
		RecipientName: name,
		ByName:        true,
		Quantity:      max(CountEmoji(m.raw), 1),
		Reason:        cleanReason(match[2]),
	}, true
}

func (p *Parser) parseEmojiAward(m *message) (Intent, bool) {
	count := CountEmoji(m.raw)
	if count == 0 {
		return Intent{}, false
	}
	intent := Intent{
		Kind:     KindEmojiAward,
		Quantity: count,
		Reason:   EmojiReason,
	}

	// A structured mention in the text names the recipient outright.
	if mention, found := firstMentionIn(m.raw, m.mentions); found {
		intent.RecipientID = mention.ID
		intent.RecipientName = mentionName(mention)
		return intent, true
	}

	name, ok := extractEmojiRecipient(m.raw)
	if !ok {
		return Intent{}, false
	}
	intent.RecipientID = p.resolve(name)
	intent.RecipientName = name
	intent.ByName = true
	return intent, true
}

// firstMentionIn returns the resolvable mention whose token occurs earliest
// in text.
func firstMentionIn(text string, mentions []domain.Mention) (domain.Mention, bool) {
	lower := strings.ToLower(text)
	best, bestPos := domain.Mention{}, -1
	for _, mention := range mentions {
		token := strings.ToLower(strings.TrimSpace(mention.Text))
		if token == "" || mention.ID == "" {
			continue
		}
		pos := strings.Index(lower, token)
		if pos >= 0 && (bestPos < 0 || pos < bestPos) {
			best, bestPos = mention, pos
		}
	}
	return best, bestPos >= 0
}

func triggerStrategy(kind Kind) strategy {
	return func(_ *Parser, m *message) (Intent, bool) {
		return Intent{Kind: kind}, m.triggers[kind]
	}
}

func (p *Parser) parseHelp(m *message) (Intent, bool) {
	return Intent{Kind: KindHelp}, m.triggers[KindHelp] || lo.Contains(helpExact, m.lower)
}

// CountEmoji counts burrito glyphs in text.
func CountEmoji(text string) int {
	return strings.Count(text, BurritoEmoji)
}

// SyntheticUserID derives a stable pseudo identifier from a typed name. The
// same spelling always maps to the same id; no directory lookup happens.
func SyntheticUserID(name string) string {
	return "user-" + strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// StripMention removes the mention token of userID from text, used to drop
// the bot's own mention before parsing.
func StripMention(text string, mentions []domain.Mention, userID string) (string, []domain.Mention) {
	if userID == "" {
		return text, mentions
	}
	kept := make([]domain.Mention, 0, len(mentions))
	for _, mention := range mentions {
		if mention.ID == userID {
			text = strings.ReplaceAll(text, mention.Text, "")
			continue
		}
		kept = append(kept, mention)
	}
	return strings.Join(strings.Fields(text), " "), kept
}

func cleanReason(reason string) string {
	reason = strings.ReplaceAll(reason, BurritoEmoji, "")
	return strings.TrimSpace(reason)
}

func adminArgument(raw string) string {
	fields := strings.Fields(raw)
	if len(fields) < 3 {
		return ""
	}
	return stripMentionTags(strings.Join(fields[2:], " "))
}

func stripMentionTags(s string) string {
	return strings.TrimSpace(mentionTagRe.ReplaceAllString(s, "$1"))
}

func mentionName(m domain.Mention) string {
	if m.Name != "" {
		return m.Name
	}
	return stripMentionTags(m.Text)
}
