package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFlashcard(t *testing.T) {
	card, err := NewFlashcard("Mitochondria", "Powerhouse of the cell")
	require.NoError(t, err)

	assert.Equal(t, "Mitochondria", card.Term)
	assert.Equal(t, "Powerhouse of the cell", card.Definition)
	assert.NotEmpty(t, card.ID)
}

func TestNewFlashcardKeepsWhitespace(t *testing.T) {
	card, err := NewFlashcard("  term ", "def\n")
	require.NoError(t, err)

	assert.Equal(t, "  term ", card.Term)
	assert.Equal(t, "def\n", card.Definition)
}

func TestNewFlashcardRejectsEmpty(t *testing.T) {
	tests := []struct {
		name       string
		term       string
		definition string
		want       error
	}{
		{"empty term", "", "definition", ErrEmptyTerm},
		{"empty definition", "term", "", ErrEmptyDefinition},
		{"both empty", "", "", ErrEmptyTerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card, err := NewFlashcard(tt.term, tt.definition)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, Flashcard{}, card)
		})
	}
}

func TestFlashcardIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		card, err := NewFlashcard("term", "definition")
		require.NoError(t, err)
		require.False(t, seen[card.ID], "duplicate id %s", card.ID)
		seen[card.ID] = true
	}
}
