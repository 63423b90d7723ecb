package cli

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"burrito-bot/internal/command"
	"burrito-bot/internal/config"
	"burrito-bot/internal/repository"
	"burrito-bot/internal/usecase"
)

// app holds the state shared by every subcommand for one invocation.
type app struct {
	dbPath       string
	conversation string
	noColor      bool

	cfg    config.Config
	log    *slog.Logger
	db     *badger.DB
	badger *repository.BadgerStore
	store  usecase.ConversationStore
}

// NewRootCmd builds the burritoctl command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "burritoctl",
		Short:        "burritoctl: talk to the burrito bot from a terminal",
		Long:         "Send messages to the burrito bot and inspect leaderboards and reports stored in a local Badger database.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.open(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "Badger directory (defaults to BADGER_PATH; in-memory when empty)")
	root.PersistentFlags().StringVarP(&a.conversation, "conversation", "c", "local", "conversation id")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newChatCmd(a))
	root.AddCommand(newLeaderboardCmd(a))
	root.AddCommand(newReportCmd(a))
	root.AddCommand(newConversationsCmd(a))
	return root
}

func (a *app) open(cmd *cobra.Command) error {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = cfg.TextLogger(cmd.ErrOrStderr())
	if a.noColor {
		color.Enable = false
	}

	path := a.dbPath
	if path == "" && cfg.StoreBackend == config.BackendBadger {
		path = cfg.BadgerPath
	}
	if path == "" {
		a.store = repository.NewMemoryStore()
		return nil
	}

	db, err := repository.OpenBadger(path)
	if err != nil {
		return err
	}
	a.db = db
	a.badger, err = repository.NewBadgerStore(db, a.log)
	if err != nil {
		return err
	}
	a.store = a.badger
	return nil
}

func (a *app) close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	if err != nil {
		return fmt.Errorf("burritoctl: close badger: %w", err)
	}
	return nil
}

func (a *app) service() (*usecase.BurritoService, error) {
	parser, err := command.NewParser()
	if err != nil {
		return nil, err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return nil, err
	}
	return usecase.NewBurritoService(a.store, parser,
		usecase.WithLogger(a.log),
		usecase.WithLocation(loc),
	)
}
