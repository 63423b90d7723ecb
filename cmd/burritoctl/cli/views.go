package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"burrito-bot/internal/domain"
	"burrito-bot/internal/report"
)

var timeNow = time.Now

func newLeaderboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "leaderboard",
		Short: "Print every participant's burrito totals as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := a.store.Get(cmd.Context(), a.conversation)
			if err != nil {
				return err
			}
			renderStandings(cmd.OutOrStdout(), state)
			return nil
		},
	}
}

func renderStandings(w io.Writer, state *domain.ConversationState) {
	standings := report.Standings(state)
	if len(standings) == 0 {
		fmt.Fprintln(w, report.Leaderboard(state))
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rank", "Name", "Received"})
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	for i, e := range standings {
		table.Append([]string{report.Rank(i), e.Name, strconv.Itoa(e.Count)})
	}
	table.Render()
}

func newReportCmd(a *app) *cobra.Command {
	valid := make([]string, 0, len(domain.Periods))
	for _, p := range domain.Periods {
		valid = append(valid, string(p))
	}
	return &cobra.Command{
		Use:       "report <" + strings.Join(valid, "|") + ">",
		Short:     "Print the burrito report for the current period",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: valid,
		RunE: func(cmd *cobra.Command, args []string) error {
			period, ok := domain.ParsePeriod(args[0])
			if !ok {
				return fmt.Errorf("unknown period %q, want one of %s", args[0], strings.Join(valid, ", "))
			}
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}
			state, err := a.store.Get(cmd.Context(), a.conversation)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), report.Generate(state, period, timeNow().In(loc)))
			return nil
		},
	}
}

func newConversationsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "conversations",
		Short: "List conversations stored in the Badger database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.badger == nil {
				return fmt.Errorf("conversations needs a Badger database, pass --db")
			}
			ids, err := a.badger.Conversations(cmd.Context())
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
