package usecase

import (
	"fmt"
	"strings"

	"burrito-bot/internal/command"
	"burrito-bot/internal/domain"
)

const (
	replyApology          = "😕 Sorry, something went wrong while handling your message. Please try again."
	replySelfAward        = "🙅 Nice try! You can't give burritos to yourself. Recognise a teammate instead."
	replyNotAdmin         = "⛔ Sorry, only admins can use /admin commands. Ask an admin for help, or run /makeadmin if you are setting up this bot."
	replyAlreadyAdmin     = "ℹ️ You are already an admin of this conversation."
	replyNowAdmin         = "👑 You are now an admin of this conversation. Try /admin report weekly."
	replyAdminAddNotReady = "🚧 Adding other admins needs additional setup and isn't available yet. Each admin can run /makeadmin themselves for now."
	replyReportUsage      = "Please choose a period: /admin report <daily|weekly|monthly|yearly>"
	replyStatsUsage       = "Please mention the user to look up: /admin stats @user"
	replyNoPersonalStats  = "🌯 You haven't given or received any burritos yet. Try \"give @teammate a burrito for <reason>\"."
)

func pluralize(n int) string {
	if n == 1 {
		return "1 burrito"
	}
	return fmt.Sprintf("%d burritos", n)
}

func awardConfirmation(giver, recipient string, quantity int, reason string) string {
	msg := fmt.Sprintf("🌯 %s gave %s to %s!", giver, pluralize(quantity), recipient)
	if reason != "" && reason != command.EmojiReason {
		msg += fmt.Sprintf(" Reason: %s", reason)
	}
	return msg
}

func awardTotal(recipient string, total int) string {
	return fmt.Sprintf("%s now has %s in total.", recipient, pluralize(total))
}

func personalStats(s *domain.UserStats) string {
	return fmt.Sprintf("📊 Your burrito stats\nReceived: %d\nGiven: %d", s.TotalReceived, s.TotalGiven)
}

func userStats(name string, s *domain.UserStats) string {
	return fmt.Sprintf("📊 Burrito stats for %s\nReceived: %d\nGiven: %d\nLast activity: %s",
		name, s.TotalReceived, s.TotalGiven, s.LastUpdated.UTC().Format("2006-01-02 15:04 MST"))
}

func noUserStats(name string) string {
	return fmt.Sprintf("📊 %s has no burrito activity yet.", name)
}

func debugInfo(ev domain.Event, state *domain.ConversationState) string {
	chatType := ev.ChatType
	if chatType == "" {
		chatType = domain.ChatPersonal
	}
	return strings.Join([]string{
		"🔧 Debug info",
		"User ID: " + ev.From.ID,
		"Chat type: " + chatType,
		fmt.Sprintf("Is admin: %t", state.IsAdmin(ev.From.ID)),
		fmt.Sprintf("Admin count: %d", len(state.Admins)),
	}, "\n")
}

func helpText(group, admin bool) string {
	lines := []string{"🌯 Burrito Bot commands"}
	if group {
		lines = append(lines,
			"• give @user a burrito for <reason> - recognise a teammate",
			"• @user 🌯🌯 - give one burrito per emoji",
		)
	} else {
		lines = append(lines,
			"• give <name> a burrito for <reason> - recognise a teammate",
			"• <name> 🌯🌯 - give one burrito per emoji",
		)
	}
	lines = append(lines,
		"• my burritos - see your totals",
		"• burrito leaderboard - see the top recipients",
		"• help - show this message",
	)
	if admin {
		lines = append(lines, "", "👑 You are an admin: /admin report <daily|weekly|monthly|yearly>, /admin stats @user, /admin leaderboard")
	}
	return strings.Join(lines, "\n")
}

func adminHelpText() string {
	return strings.Join([]string{
		"👑 Admin commands",
		"• /admin report <daily|weekly|monthly|yearly>",
		"• /admin stats @user",
		"• /admin leaderboard",
		"• /admin add @user (not available yet)",
	}, "\n")
}

func greeting(group bool) string {
	if group {
		return "👋 Hi everyone! Give a teammate a burrito with \"give @user a burrito for <reason>\"."
	}
	return "👋 Hi! I track burritos, the team's thank-you tokens. Say \"help\" to see what I can do."
}

func fallback(group bool) string {
	if group {
		return "🤔 I didn't catch that. Try \"give @user a burrito for <reason>\" or say \"help\"."
	}
	return "🤔 I didn't catch that. Try \"give <name> a burrito for <reason>\", \"my burritos\" or \"help\"."
}

func welcome(group bool) string {
	if group {
		return "🌯 Hello team! I'm Burrito Bot. Recognise each other with \"give @user a burrito for <reason>\" or a few 🌯 after a name."
	}
	return "🌯 Hi! I'm Burrito Bot. Say \"help\" to see how to give and track burritos."
}

func bootstrapAdmin(name string) string {
	if name == "" {
		name = "The person who added me"
	}
	return fmt.Sprintf("👑 %s is now the admin of this conversation.", name)
}
