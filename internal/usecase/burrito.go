//go:generate go run go.uber.org/mock/mockgen -source=burrito.go -destination=../mocks/mock_burrito.go -package=mocks
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"

	"burrito-bot/internal/command"
	"burrito-bot/internal/domain"
	"burrito-bot/internal/report"
)

// ConversationStore loads and saves conversation state.
type ConversationStore interface {
	Get(ctx context.Context, conversationID string) (*domain.ConversationState, error)
	Save(ctx context.Context, state *domain.ConversationState) error
}

// ReplySink delivers one reply to the conversation the event came from.
type ReplySink interface {
	Send(ctx context.Context, text string) error
}

// Parser classifies message text.
type Parser interface {
	Parse(in command.Input) command.Intent
}

// BurritoService is the dialogue orchestrator: it parses each inbound event,
// applies the resulting action to the conversation and emits the replies.
type BurritoService struct {
	store  ConversationStore
	parser Parser
	log    *slog.Logger
	now    func() time.Time
	loc    *time.Location
	locks  *keyedMutex
}

type Option func(*BurritoService)

// WithLogger sets the service logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *BurritoService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLocation sets the time zone used for report period keys.
func WithLocation(loc *time.Location) Option {
	return func(s *BurritoService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *BurritoService) {
		if now != nil {
			s.now = now
		}
	}
}

func NewBurritoService(store ConversationStore, parser Parser, opts ...Option) (*BurritoService, error) {
	if store == nil {
		return nil, errors.New("usecase: conversation store must not be nil")
	}
	if parser == nil {
		return nil, errors.New("usecase: parser must not be nil")
	}
	s := &BurritoService{
		store:  store,
		parser: parser,
		log:    slog.Default(),
		now:    time.Now,
		loc:    time.UTC,
		locks:  newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Handle processes one inbound event to completion. Events of the same
// conversation are serialised. Faults are logged and answered with an apology
// before being returned as *Error.
func (s *BurritoService) Handle(ctx context.Context, ev domain.Event, sink ReplySink) (err error) {
	if sink == nil {
		return newError(ErrorInvalidInput, "missing_sink", nil)
	}
	convID := strings.TrimSpace(ev.ConversationID)
	if convID == "" {
		return newError(ErrorInvalidInput, "missing_conversation_id", nil)
	}
	ev.ConversationID = convID

	unlock := s.locks.Lock(convID)
	defer unlock()

	log := s.log.With("conversation_id", convID, "event_type", ev.Type)
	defer func() {
		if r := recover(); r != nil {
			err = s.fail(ctx, log, sink, "panic", fmt.Errorf("panic: %v", r))
		}
	}()

	var replies []string
	switch ev.Type {
	case domain.EventMessage:
		if strings.TrimSpace(ev.From.ID) == "" {
			return newError(ErrorInvalidInput, "missing_sender", nil)
		}
		replies, err = s.handleMessage(ctx, log, ev)
	case domain.EventMembersAdded:
		replies, err = s.handleMembersAdded(ctx, log, ev)
	default:
		return newError(ErrorInvalidInput, "unsupported_event_type", nil)
	}
	if err != nil {
		return s.fail(ctx, log, sink, "state_error", err)
	}

	for _, text := range replies {
		if err := sink.Send(ctx, text); err != nil {
			log.Error("failed to send reply", "err", err)
			return newError(ErrorInternal, "reply_error", err)
		}
	}
	return nil
}

func (s *BurritoService) fail(ctx context.Context, log *slog.Logger, sink ReplySink, reason string, cause error) error {
	log.Error("failed to handle event", "reason", reason, "err", cause)
	if err := sink.Send(ctx, replyApology); err != nil {
		log.Error("failed to send apology", "err", err)
	}
	return newError(ErrorInternal, reason, cause)
}

func (s *BurritoService) handleMessage(ctx context.Context, log *slog.Logger, ev domain.Event) ([]string, error) {
	state, err := s.store.Get(ctx, ev.ConversationID)
	if err != nil {
		return nil, err
	}

	text, mentions := command.StripMention(ev.Text, ev.Mentions, ev.BotID)
	intent := s.parser.Parse(command.Input{Text: text, Group: ev.IsGroup(), Mentions: mentions})
	log.Debug("parsed message", "intent", intent.Kind, "user_id", ev.From.ID)

	replies, changed := s.dispatch(state, ev, intent)
	if changed {
		if err := s.store.Save(ctx, state); err != nil {
			return nil, err
		}
	}
	return replies, nil
}

func (s *BurritoService) handleMembersAdded(ctx context.Context, log *slog.Logger, ev domain.Event) ([]string, error) {
	botAdded := ev.BotID == "" || lo.Contains(ev.MembersAdded, ev.BotID)
	if !botAdded {
		return nil, nil
	}
	state, err := s.store.Get(ctx, ev.ConversationID)
	if err != nil {
		return nil, err
	}

	replies := []string{welcome(ev.IsGroup())}
	if len(state.Admins) == 0 && state.AddAdmin(ev.From.ID) {
		log.Info("bootstrapped conversation admin", "user_id", ev.From.ID)
		replies = append(replies, bootstrapAdmin(ev.From.Name))
	}
	if err := s.store.Save(ctx, state); err != nil {
		return nil, err
	}
	return replies, nil
}

// dispatch applies intent to state. It reports whether state changed.
func (s *BurritoService) dispatch(state *domain.ConversationState, ev domain.Event, intent command.Intent) ([]string, bool) {
	group := ev.IsGroup()
	switch intent.Kind {
	case command.KindMakeAdmin:
		if !state.AddAdmin(ev.From.ID) {
			return []string{replyAlreadyAdmin}, false
		}
		return []string{replyNowAdmin}, true
	case command.KindDebug:
		return []string{debugInfo(ev, state)}, false
	case command.KindAdmin:
		return []string{s.admin(state, ev, intent)}, false
	case command.KindMentionAward, command.KindNameAward, command.KindEmojiAward:
		return s.award(state, ev, intent)
	case command.KindStats:
		stats := state.StatsFor(ev.From.ID)
		if stats == nil {
			return []string{replyNoPersonalStats}, false
		}
		return []string{personalStats(stats)}, false
	case command.KindLeaderboard:
		return []string{report.Leaderboard(state)}, false
	case command.KindHelp:
		return []string{helpText(group, state.IsAdmin(ev.From.ID))}, false
	case command.KindGreeting:
		return []string{greeting(group)}, false
	default:
		return []string{fallback(group)}, false
	}
}

func (s *BurritoService) award(state *domain.ConversationState, ev domain.Event, intent command.Intent) ([]string, bool) {
	if isSelfAward(ev.From, intent) {
		return []string{replySelfAward}, false
	}
	quantity := max(intent.Quantity, 1)
	at := s.now()
	for i := 0; i < quantity; i++ {
		state.AwardBurrito(intent.RecipientID, intent.RecipientName, ev.From.ID, ev.From.Name, intent.Reason, at)
	}
	total := state.StatsFor(intent.RecipientID).TotalReceived
	return []string{
		awardConfirmation(ev.From.Name, intent.RecipientName, quantity, intent.Reason),
		awardTotal(intent.RecipientName, total),
	}, true
}

func isSelfAward(from domain.User, intent command.Intent) bool {
	if intent.RecipientID == from.ID {
		return true
	}
	return intent.ByName && from.Name != "" && strings.EqualFold(strings.TrimSpace(intent.RecipientName), strings.TrimSpace(from.Name))
}

func (s *BurritoService) admin(state *domain.ConversationState, ev domain.Event, intent command.Intent) string {
	if !state.IsAdmin(ev.From.ID) {
		return replyNotAdmin
	}
	switch intent.Admin {
	case command.AdminReport:
		period, ok := domain.ParsePeriod(intent.Arg)
		if !ok {
			return replyReportUsage
		}
		return report.Generate(state, period, s.now().In(s.loc))
	case command.AdminStats:
		return s.lookupStats(state, intent)
	case command.AdminLeaderboard:
		return report.Leaderboard(state)
	case command.AdminAdd:
		return replyAdminAddNotReady
	default:
		return adminHelpText()
	}
}

func (s *BurritoService) lookupStats(state *domain.ConversationState, intent command.Intent) string {
	if m := intent.Mention; m != nil {
		name := m.Name
		if name == "" {
			name = intent.Arg
		}
		if stats := state.StatsFor(m.ID); stats != nil {
			return userStats(stats.DisplayName, stats)
		}
		return noUserStats(name)
	}
	if intent.Arg == "" {
		return replyStatsUsage
	}
	if _, stats, ok := state.FindByName(intent.Arg); ok {
		return userStats(stats.DisplayName, stats)
	}
	return noUserStats(intent.Arg)
}
