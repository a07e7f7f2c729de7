package deck

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyTerm       = errors.New("term must not be empty")
	ErrEmptyDefinition = errors.New("definition must not be empty")
)

// Flashcard is a single term/definition pair. Cards are values and are never
// changed after creation.
type Flashcard struct {
	ID         string
	Term       string
	Definition string
}

// NewFlashcard creates a card with a fresh random ID. Both strings must be
// non-empty; they are stored exactly as given.
func NewFlashcard(term, definition string) (Flashcard, error) {
	if term == "" {
		return Flashcard{}, ErrEmptyTerm
	}
	if definition == "" {
		return Flashcard{}, ErrEmptyDefinition
	}

	return Flashcard{
		ID:         newID(),
		Term:       term,
		Definition: definition,
	}, nil
}

func newID() string {
	return uuid.NewString()
}
