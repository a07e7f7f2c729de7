package batch

import (
	"fmt"
	"log/slog"

	"codeberg.org/snonux/flashcards/internal/deck"
)

// Load creates one set per entry in store and appends every valid card.
// Invalid sets and cards are skipped with a warning. It returns the sets
// that were created.
func Load(store *deck.Store, entries []SetEntry, logger *slog.Logger) ([]*deck.Set, error) {
	if store == nil {
		return nil, fmt.Errorf("load: nil store")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var created []*deck.Set
	for _, entry := range entries {
		set, err := store.Create(entry.Name)
		if err != nil {
			logger.Warn("skipping set", "name", entry.Name, "err", err)
			continue
		}

		for _, c := range entry.Cards {
			card, err := deck.NewFlashcard(c.Term, c.Definition)
			if err != nil {
				logger.Warn("skipping card", "set", entry.Name, "line", c.Line, "term", c.Term, "err", err)
				continue
			}
			set.AppendCard(card)
		}

		logger.Info("imported set", "name", set.Name(), "cards", set.Len())
		created = append(created, set)
	}

	return created, nil
}

// LoadFile reads filename and loads its sets into store.
func LoadFile(store *deck.Store, filename, name string, logger *slog.Logger) ([]*deck.Set, error) {
	entries, err := ReadBatchFile(filename, name)
	if err != nil {
		return nil, err
	}
	return Load(store, entries, logger)
}
