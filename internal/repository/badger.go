package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"burrito-bot/internal/domain"
)

const badgerPrefix = "conv:"

// BadgerStore persists conversation state in a local BadgerDB, one key per
// conversation.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

// OpenBadger opens (or creates) the BadgerDB at path with quiet logging.
func OpenBadger(path string) (*badger.DB, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("repository: open badger %q: %w", path, err)
	}
	return db, nil
}

// NewBadgerStore wraps an opened BadgerDB.
func NewBadgerStore(db *badger.DB, log *slog.Logger) (*BadgerStore, error) {
	if db == nil {
		return nil, errors.New("repository: badger db must not be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &BadgerStore{db: db, log: log}, nil
}

func badgerKey(conversationID string) []byte {
	return []byte(badgerPrefix + conversationID)
}

// Get loads the state of conversationID, or a fresh one when none is stored.
func (b *BadgerStore) Get(_ context.Context, conversationID string) (*domain.ConversationState, error) {
	var raw []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(badgerKey(conversationID))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		b.log.Debug("new conversation", "conversation_id", conversationID)
		return domain.NewConversationState(conversationID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("repository: badger get %q: %w", conversationID, err)
	}
	return decodeState(conversationID, raw)
}

// Save writes state under its conversation key.
func (b *BadgerStore) Save(_ context.Context, state *domain.ConversationState) error {
	if state == nil || state.ConversationID == "" {
		return errors.New("repository: Save: conversation id is required")
	}
	raw, err := encodeState(state)
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(badgerKey(state.ConversationID), raw)
	})
}

// Conversations lists the ids of every stored conversation.
func (b *BadgerStore) Conversations(_ context.Context) ([]string, error) {
	var ids []string
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(badgerPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			ids = append(ids, string(it.Item().Key()[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repository: badger list: %w", err)
	}
	return ids, nil
}
