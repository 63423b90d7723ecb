package command

import (
	"testing"

	"github.com/stretchr/testify/require"

	"burrito-bot/internal/domain"
)

func mustParser(t *testing.T, opts ...Option) *Parser {
	t.Helper()
	p, err := NewParser(opts...)
	require.NoError(t, err)
	return p
}

var samMention = domain.Mention{Text: "<at>Sam</at>", ID: "29:sam", Name: "Sam"}

func TestParse_Precedence(t *testing.T) {
	p := mustParser(t)

	cases := []struct {
		name string
		in   Input
		want Kind
	}{
		{name: "make admin", in: Input{Text: "/makeadmin"}, want: KindMakeAdmin},
		{name: "make me admin mixed case", in: Input{Text: "  /MakeMeAdmin "}, want: KindMakeAdmin},
		{name: "make admin needs exact match", in: Input{Text: "/makeadmin please"}, want: KindFallback},
		{name: "debug", in: Input{Text: "/debug"}, want: KindDebug},
		{name: "info", in: Input{Text: "/info"}, want: KindDebug},
		{name: "admin before award", in: Input{Text: "/admin give Sam a burrito"}, want: KindAdmin},
		{name: "mention award in group", in: Input{Text: "give <at>Sam</at> a burrito", Group: true, Mentions: []domain.Mention{samMention}}, want: KindMentionAward},
		{name: "name award", in: Input{Text: "give Sam a burrito"}, want: KindNameAward},
		{name: "grant verb", in: Input{Text: "Grant Dana burritos"}, want: KindNameAward},
		{name: "emoji award", in: Input{Text: "Tina 🌯"}, want: KindEmojiAward},
		{name: "stats", in: Input{Text: "how many are my burritos?"}, want: KindStats},
		{name: "burrito count", in: Input{Text: "burrito count"}, want: KindStats},
		{name: "leaderboard", in: Input{Text: "show the burrito leaderboard"}, want: KindLeaderboard},
		{name: "top burritos", in: Input{Text: "top burritos"}, want: KindLeaderboard},
		{name: "stats wins over leaderboard", in: Input{Text: "my burritos and top burritos"}, want: KindStats},
		{name: "help", in: Input{Text: "I need help"}, want: KindHelp},
		{name: "what can you do", in: Input{Text: "what can you do?"}, want: KindHelp},
		{name: "commands exact", in: Input{Text: "Commands"}, want: KindHelp},
		{name: "commands needs exact match", in: Input{Text: "list commands"}, want: KindFallback},
		{name: "greeting", in: Input{Text: "Hey there"}, want: KindGreeting},
		{name: "greeting whole word only", in: Input{Text: "this is something"}, want: KindFallback},
		{name: "help beats greeting", in: Input{Text: "hi, help me"}, want: KindHelp},
		{name: "empty", in: Input{Text: "   "}, want: KindFallback},
		{name: "fallback", in: Input{Text: "what is the weather"}, want: KindFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, p.Parse(tc.in).Kind)
		})
	}
}

func TestParse_NameAwardWithReason(t *testing.T) {
	intent := mustParser(t).Parse(Input{Text: "give Sam a burrito for great debugging"})

	require.Equal(t, KindNameAward, intent.Kind)
	require.True(t, intent.IsAward())
	require.Equal(t, "Sam", intent.RecipientName)
	require.Equal(t, "user-sam", intent.RecipientID)
	require.True(t, intent.ByName)
	require.Equal(t, 1, intent.Quantity)
	require.Equal(t, "great debugging", intent.Reason)
}

func TestParse_NameAwardQuantityFromEmoji(t *testing.T) {
	intent := mustParser(t).Parse(Input{Text: "award Mary Jane a burrito for the demo 🌯🌯🌯"})

	require.Equal(t, KindNameAward, intent.Kind)
	require.Equal(t, "Mary Jane", intent.RecipientName)
	require.Equal(t, "user-mary-jane", intent.RecipientID)
	require.Equal(t, 3, intent.Quantity)
	require.Equal(t, "the demo", intent.Reason)
}

func TestParse_NameAwardRejectsMarkers(t *testing.T) {
	p := mustParser(t)

	// A mention nobody resolved must not become a synthesized name.
	intent := p.Parse(Input{Text: "give <at>Ghost</at> a burrito", Group: true})
	require.NotEqual(t, KindNameAward, intent.Kind)
	require.NotEqual(t, KindMentionAward, intent.Kind)

	intent = p.Parse(Input{Text: "give @sam a burrito"})
	require.NotEqual(t, KindNameAward, intent.Kind)
}

func TestParse_MentionAward(t *testing.T) {
	intent := mustParser(t).Parse(Input{
		Text:     "please give <at>Sam</at> a burrito for the review 🌯🌯",
		Group:    true,
		Mentions: []domain.Mention{samMention},
	})

	require.Equal(t, KindMentionAward, intent.Kind)
	require.Equal(t, "29:sam", intent.RecipientID)
	require.Equal(t, "Sam", intent.RecipientName)
	require.False(t, intent.ByName)
	require.Equal(t, 2, intent.Quantity)
	require.Equal(t, "the review", intent.Reason)
}

func TestParse_MentionAwardOnlyInGroups(t *testing.T) {
	intent := mustParser(t).Parse(Input{
		Text:     "give <at>Sam</at> a burrito",
		Mentions: []domain.Mention{samMention},
	})
	require.NotEqual(t, KindMentionAward, intent.Kind)
}

func TestParse_EmojiAward(t *testing.T) {
	p := mustParser(t)

	cases := []struct {
		name     string
		text     string
		want     string
		quantity int
	}{
		{name: "name before emoji", text: "Amazing work Tina! 🌯🌯", want: "Tina", quantity: 2},
		{name: "for name", text: "🌯 for Marco", want: "Marco", quantity: 1},
		{name: "to name", text: "sending 🌯🌯🌯 to Lee", want: "Lee", quantity: 3},
		{name: "at name", text: "🌯 @dana", want: "dana", quantity: 1},
		{name: "leading name", text: "🌯🌯 Priya", want: "Priya", quantity: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent := p.Parse(Input{Text: tc.text})
			require.Equal(t, KindEmojiAward, intent.Kind)
			require.Equal(t, tc.want, intent.RecipientName)
			require.Equal(t, SyntheticUserID(tc.want), intent.RecipientID)
			require.Equal(t, tc.quantity, intent.Quantity)
			require.Equal(t, EmojiReason, intent.Reason)
		})
	}
}

func TestParse_EmojiAwardRejectsFillerWords(t *testing.T) {
	p := mustParser(t)

	for _, text := range []string{"great job 🌯", "thanks 🌯", "🌯", "X 🌯", "🌯 nice"} {
		t.Run(text, func(t *testing.T) {
			require.NotEqual(t, KindEmojiAward, p.Parse(Input{Text: text}).Kind)
		})
	}
}

func TestParse_EmojiAwardResolvesMention(t *testing.T) {
	intent := mustParser(t).Parse(Input{
		Text:     "🌯🌯 <at>Sam</at>",
		Group:    true,
		Mentions: []domain.Mention{samMention},
	})

	require.Equal(t, KindEmojiAward, intent.Kind)
	require.Equal(t, "29:sam", intent.RecipientID)
	require.False(t, intent.ByName)
	require.Equal(t, 2, intent.Quantity)
}

func TestParse_EmojiAwardMultiWordMention(t *testing.T) {
	samSmith := domain.Mention{Text: "<at>Sam Smith</at>", ID: "29:sam-smith", Name: "Sam Smith"}

	cases := []struct {
		name string
		text string
	}{
		{name: "mention first", text: "<at>Sam Smith</at> 🌯🌯"},
		{name: "mention after emoji", text: "🌯🌯 thanks <at>Sam Smith</at>"},
		{name: "for mention", text: "🌯🌯 for <at>Sam Smith</at>"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent := mustParser(t).Parse(Input{Text: tc.text, Group: true, Mentions: []domain.Mention{samSmith}})

			require.Equal(t, KindEmojiAward, intent.Kind)
			require.Equal(t, "29:sam-smith", intent.RecipientID)
			require.Equal(t, "Sam Smith", intent.RecipientName)
			require.False(t, intent.ByName)
			require.Equal(t, 2, intent.Quantity)
		})
	}
}

func TestParse_EmojiAwardIgnoresUnresolvedMention(t *testing.T) {
	intent := mustParser(t).Parse(Input{Text: "<at>Ghost Person</at> 🌯", Group: true})
	require.NotEqual(t, KindEmojiAward, intent.Kind)
}

func TestParse_NameAwardSingleCharacter(t *testing.T) {
	p := mustParser(t)

	intent := p.Parse(Input{Text: "give X a burrito"})
	require.Equal(t, KindNameAward, intent.Kind)
	require.Equal(t, "X", intent.RecipientName)
	require.Equal(t, "user-x", intent.RecipientID)

	require.NotEqual(t, KindNameAward, p.Parse(Input{Text: "give a burrito"}).Kind)
}

func TestParse_AdminCommands(t *testing.T) {
	p := mustParser(t)

	intent := p.Parse(Input{Text: "/admin report Weekly"})
	require.Equal(t, KindAdmin, intent.Kind)
	require.Equal(t, AdminReport, intent.Admin)
	require.Equal(t, "weekly", intent.Arg)

	intent = p.Parse(Input{Text: "/admin report"})
	require.Equal(t, AdminReport, intent.Admin)
	require.Empty(t, intent.Arg)

	intent = p.Parse(Input{Text: "/admin stats <at>Sam</at>", Mentions: []domain.Mention{samMention}})
	require.Equal(t, AdminStats, intent.Admin)
	require.NotNil(t, intent.Mention)
	require.Equal(t, "29:sam", intent.Mention.ID)
	require.Equal(t, "Sam", intent.Arg)

	intent = p.Parse(Input{Text: "/admin stats Mary Jane"})
	require.Equal(t, AdminStats, intent.Admin)
	require.Nil(t, intent.Mention)
	require.Equal(t, "Mary Jane", intent.Arg)

	require.Equal(t, AdminLeaderboard, p.Parse(Input{Text: "/admin leaderboard"}).Admin)
	require.Equal(t, AdminAdd, p.Parse(Input{Text: "/admin add <at>Sam</at>"}).Admin)
	require.Equal(t, AdminHelp, p.Parse(Input{Text: "/admin dance"}).Admin)
	require.Equal(t, AdminHelp, p.Parse(Input{Text: "/admin"}).Admin)
	require.Equal(t, KindFallback, p.Parse(Input{Text: "/administrator"}).Kind)
}

func TestParse_CustomNameResolver(t *testing.T) {
	p := mustParser(t, WithNameResolver(func(name string) string { return "dir:" + name }))

	intent := p.Parse(Input{Text: "give Sam a burrito"})
	require.Equal(t, "dir:Sam", intent.RecipientID)
}

func TestSyntheticUserID(t *testing.T) {
	require.Equal(t, "user-sam", SyntheticUserID("Sam"))
	require.Equal(t, "user-mary-jane", SyntheticUserID("  Mary   Jane "))
	require.Equal(t, SyntheticUserID("TINA"), SyntheticUserID("tina"))
}

func TestStripMention(t *testing.T) {
	bot := domain.Mention{Text: "<at>Burrito Bot</at>", ID: "28:bot", Name: "Burrito Bot"}

	text, mentions := StripMention("<at>Burrito Bot</at> give <at>Sam</at> a burrito", []domain.Mention{bot, samMention}, "28:bot")
	require.Equal(t, "give <at>Sam</at> a burrito", text)
	require.Equal(t, []domain.Mention{samMention}, mentions)

	text, mentions = StripMention("hello", nil, "")
	require.Equal(t, "hello", text)
	require.Nil(t, mentions)
}

func TestCountEmoji(t *testing.T) {
	require.Equal(t, 0, CountEmoji("no burritos here"))
	require.Equal(t, 3, CountEmoji("🌯x🌯🌯"))
}
