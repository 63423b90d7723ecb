// Package report renders period reports and leaderboards from a
// conversation's ledger.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"burrito-bot/internal/domain"
)

const (
	reportTopN      = 5
	leaderboardTopN = 10
)

var medals = []string{"🥇", "🥈", "🥉"}

// Entry is one ranked line of a report or leaderboard.
type Entry struct {
	Name  string
	Count int
}

// Summary is the aggregated content of a period report.
type Summary struct {
	Period     domain.Period
	Key        string
	Total      int
	Recipients []Entry
	Givers     []Entry
}

// Summarize aggregates the awards of state that fall in the same period
// bucket as reference. Awards are bucketed in reference's location.
func Summarize(state *domain.ConversationState, period domain.Period, reference time.Time) Summary {
	key := period.Key(reference)
	awards := lo.Filter(state.Awards, func(a domain.Award, _ int) bool {
		return period.Key(a.CreatedAt.In(reference.Location())) == key
	})
	return Summary{
		Period:     period,
		Key:        key,
		Total:      len(awards),
		Recipients: top(tally(awards, func(a domain.Award) string { return a.RecipientName }), reportTopN),
		Givers:     top(tally(awards, func(a domain.Award) string { return a.GiverName }), reportTopN),
	}
}

// Generate renders the period report for reference.
func Generate(state *domain.ConversationState, period domain.Period, reference time.Time) string {
	s := Summarize(state, period, reference)
	if s.Total == 0 {
		return fmt.Sprintf("📊 No burritos were awarded in this %s period (%s).", period, s.Key)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 %s Burrito Report (%s)\n", period.Label(), s.Key)
	fmt.Fprintf(&b, "Total burritos awarded: %d\n\n", s.Total)
	b.WriteString("🏆 Top recipients:\n")
	writeRanking(&b, s.Recipients)
	b.WriteString("\n🎁 Top givers:\n")
	writeRanking(&b, s.Givers)
	return strings.TrimRight(b.String(), "\n")
}

// Standings ranks every user by burritos received. Ties keep the order in
// which users first appeared.
func Standings(state *domain.ConversationState) []Entry {
	order := state.StatsOrder
	if len(order) != len(state.Stats) {
		order = lo.Keys(state.Stats)
		sort.Strings(order)
	}
	entries := make([]Entry, 0, len(order))
	for _, id := range order {
		s, ok := state.Stats[id]
		if !ok {
			continue
		}
		entries = append(entries, Entry{Name: s.DisplayName, Count: s.TotalReceived})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// Leaderboard renders the top recipients of all time.
func Leaderboard(state *domain.ConversationState) string {
	if len(state.Stats) == 0 {
		return "🌯 No burritos have been awarded yet. Be the first to give one!"
	}
	var b strings.Builder
	b.WriteString("🏆 Burrito Leaderboard\n")
	writeRanking(&b, top(Standings(state), leaderboardTopN))
	return strings.TrimRight(b.String(), "\n")
}

// Rank returns the medal or numeric label of a zero-based position.
func Rank(i int) string {
	if i < len(medals) {
		return medals[i]
	}
	return fmt.Sprintf("%d.", i+1)
}

func writeRanking(b *strings.Builder, entries []Entry) {
	for i, e := range entries {
		fmt.Fprintf(b, "%s %s: %d\n", Rank(i), e.Name, e.Count)
	}
}

// tally counts awards per name, keeping first-seen order for ties.
func tally(awards []domain.Award, name func(domain.Award) string) []Entry {
	index := map[string]int{}
	var entries []Entry
	for _, a := range awards {
		n := name(a)
		i, ok := index[n]
		if !ok {
			i = len(entries)
			index[n] = i
			entries = append(entries, Entry{Name: n})
		}
		entries[i].Count++
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

func top(entries []Entry, n int) []Entry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}
