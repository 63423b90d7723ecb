package command

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var (
	forToNameRe     = regexp.MustCompile(`(?i)(?:\b(?:for|to)\s+|@)(\p{L}[\p{L}\p{N}_-]*)`)
	beforeEmojiRe   = regexp.MustCompile(`(\p{L}[\p{L}\p{N}_-]*)[\s\p{P}]*` + BurritoEmoji)
	leadingNameRe   = regexp.MustCompile(`^\s*(\p{L}[\p{L}\p{N}_-]*)`)
	leadingVerbRe   = regexp.MustCompile(`(?i)^\s*(?:give|award|grant)\b`)
	emojiStopwords  = []string{"great", "good", "nice", "awesome", "amazing", "excellent", "well", "done", "work", "job", "thanks", "thank", "you"}
	reservedTargets = []string{"burrito", "burritos"}
)

// extractEmojiRecipient finds the recipient of an emoji-only award. It tries
// "for/to/@ name", then the word right before the emoji run, then the
// leading word of the message.
func extractEmojiRecipient(text string) (string, bool) {
	candidate := ""
	switch {
	case forToNameRe.MatchString(text):
		candidate = forToNameRe.FindStringSubmatch(text)[1]
	case beforeEmojiRe.MatchString(text):
		candidate = beforeEmojiRe.FindStringSubmatch(text)[1]
	default:
		stripped := strings.ReplaceAll(text, BurritoEmoji, " ")
		if leadingVerbRe.MatchString(stripped) {
			return "", false
		}
		if match := leadingNameRe.FindStringSubmatch(stripped); match != nil {
			candidate = match[1]
		}
	}
	return candidate, acceptableName(candidate)
}

func acceptableName(name string) bool {
	if len([]rune(name)) <= 1 {
		return false
	}
	lower := strings.ToLower(name)
	return !lo.Contains(emojiStopwords, lower) && !lo.Contains(reservedTargets, lower)
}
