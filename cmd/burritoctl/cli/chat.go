package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"burrito-bot/internal/domain"
)

type chatOptions struct {
	userID string
	name   string
	group  bool
}

func newChatCmd(a *app) *cobra.Command {
	opts := &chatOptions{}
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Send stdin lines to the bot as chat messages",
		Long: "Each line read from stdin is delivered as one message event from the given user.\n" +
			"The first line of a new conversation also adds the bot, making that user its admin.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd.Context(), a, opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&opts.userID, "user-id", "local-user", "sender id")
	cmd.Flags().StringVar(&opts.name, "name", "You", "sender display name")
	cmd.Flags().BoolVar(&opts.group, "group", false, "treat the conversation as a group chat")
	return cmd
}

// consoleSink prints replies in color.
type consoleSink struct {
	out io.Writer
}

func (s consoleSink) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(s.out, color.New(color.FgGreen).Render("bot> ")+text)
	return err
}

func runChat(ctx context.Context, a *app, opts *chatOptions, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	svc, err := a.service()
	if err != nil {
		return err
	}

	chatType := domain.ChatPersonal
	if opts.group {
		chatType = domain.ChatGroup
	}
	from := domain.User{ID: opts.userID, Name: opts.name}
	sink := consoleSink{out: out}

	state, err := a.store.Get(ctx, a.conversation)
	if err != nil {
		return err
	}
	if len(state.Awards) == 0 && len(state.Admins) == 0 {
		err := svc.Handle(ctx, domain.Event{
			Type:           domain.EventMembersAdded,
			ConversationID: a.conversation,
			ChatType:       chatType,
			From:           from,
		}, sink)
		if err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fmt.Fprintln(out, color.New(color.FgCyan).Render(opts.name+"> ")+line)
		err := svc.Handle(ctx, domain.Event{
			Type:           domain.EventMessage,
			ConversationID: a.conversation,
			ChatType:       chatType,
			From:           from,
			Text:           line,
		}, sink)
		if err != nil {
			a.log.Error("message failed", "err", err)
		}
	}
	return scanner.Err()
}
