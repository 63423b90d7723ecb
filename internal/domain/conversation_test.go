package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAwardBurrito_UpdatesLedgerAndStats(t *testing.T) {
	state := NewConversationState("conv-1")
	at := time.Date(2026, time.October, 16, 9, 30, 0, 0, time.UTC)

	award := state.AwardBurrito("u-sam", "Sam", "u-alex", "Alex", "  great debugging ", at)

	require.NotEmpty(t, award.ID)
	require.Equal(t, "conv-1", award.ConversationID)
	require.Equal(t, "great debugging", award.Reason)
	require.Equal(t, at, award.CreatedAt)
	require.Len(t, state.Awards, 1)

	sam := state.StatsFor("u-sam")
	require.NotNil(t, sam)
	require.Equal(t, 1, sam.TotalReceived)
	require.Equal(t, 0, sam.TotalGiven)
	require.Equal(t, at, sam.LastUpdated)

	alex := state.StatsFor("u-alex")
	require.NotNil(t, alex)
	require.Equal(t, 0, alex.TotalReceived)
	require.Equal(t, 1, alex.TotalGiven)
	require.Equal(t, []string{"u-sam", "u-alex"}, state.StatsOrder)
}

func TestAwardBurrito_DisplayNameLastWriteWins(t *testing.T) {
	state := NewConversationState("conv-1")
	now := time.Now()

	state.AwardBurrito("u-sam", "Sam", "u-alex", "Alex", "", now)
	state.AwardBurrito("u-sam", "Samantha", "u-alex", "Alex B.", "", now)

	require.Equal(t, "Samantha", state.StatsFor("u-sam").DisplayName)
	require.Equal(t, "Alex B.", state.StatsFor("u-alex").DisplayName)
}

func TestAwardBurrito_UniqueIDs(t *testing.T) {
	state := NewConversationState("conv-1")
	a := state.AwardBurrito("u-1", "One", "u-2", "Two", "", time.Now())
	b := state.AwardBurrito("u-1", "One", "u-2", "Two", "", time.Now())
	require.NotEqual(t, a.ID, b.ID)
}

func TestAwardBurrito_CountersMatchLedger(t *testing.T) {
	users := []string{"u-1", "u-2", "u-3", "u-4", "u-5"}
	rng := rand.New(rand.NewSource(42))
	state := NewConversationState("conv-1")

	for i := 0; i < 500; i++ {
		recipient := users[rng.Intn(len(users))]
		giver := users[rng.Intn(len(users))]
		state.AwardBurrito(recipient, recipient, giver, giver, "", time.Now())
	}

	received := map[string]int{}
	given := map[string]int{}
	for _, a := range state.Awards {
		received[a.RecipientID]++
		given[a.GiverID]++
	}
	for id, s := range state.Stats {
		require.Equal(t, received[id], s.TotalReceived, "received for %s", id)
		require.Equal(t, given[id], s.TotalGiven, "given for %s", id)
	}
	require.Len(t, state.StatsOrder, len(state.Stats))
}

func TestAddAdmin_Idempotent(t *testing.T) {
	state := NewConversationState("conv-1")

	require.True(t, state.AddAdmin("u-1"))
	require.False(t, state.AddAdmin("u-1"))
	require.False(t, state.AddAdmin(""))

	require.Equal(t, []string{"u-1"}, state.Admins)
	require.True(t, state.IsAdmin("u-1"))
	require.False(t, state.IsAdmin("u-2"))
	require.False(t, state.IsAdmin(""))
}

func TestFindByName(t *testing.T) {
	state := NewConversationState("conv-1")
	state.AwardBurrito("u-sam", "Sam", "u-alex", "Alex", "", time.Now())

	id, stats, ok := state.FindByName("SAM")
	require.True(t, ok)
	require.Equal(t, "u-sam", id)
	require.Equal(t, 1, stats.TotalReceived)

	_, _, ok = state.FindByName("Tina")
	require.False(t, ok)

	_, _, ok = state.FindByName("  ")
	require.False(t, ok)
}

func TestEventIsGroup(t *testing.T) {
	require.True(t, Event{ChatType: ChatGroup}.IsGroup())
	require.False(t, Event{ChatType: ChatPersonal}.IsGroup())
	require.False(t, Event{}.IsGroup())
}
