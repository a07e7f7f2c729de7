package deck

import "errors"

var ErrEmptyName = errors.New("set name must not be empty")

// Set is a named, ordered collection of flashcards. Insertion order is the
// browse order; cards can only be appended.
type Set struct {
	id    string
	name  string
	cards []Flashcard
}

// NewSet creates an empty set with a fresh random ID.
func NewSet(name string) (*Set, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Set{
		id:    newID(),
		name:  name,
		cards: make([]Flashcard, 0),
	}, nil
}

func (s *Set) ID() string {
	return s.id
}

func (s *Set) Name() string {
	return s.name
}

// AppendCard adds card at the end of the set.
func (s *Set) AppendCard(card Flashcard) {
	s.cards = append(s.cards, card)
}

// Cards returns a copy of the cards in insertion order.
func (s *Set) Cards() []Flashcard {
	out := make([]Flashcard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Card returns the card at index i, or false if i is out of range.
func (s *Set) Card(i int) (Flashcard, bool) {
	if i < 0 || i >= len(s.cards) {
		return Flashcard{}, false
	}
	return s.cards[i], true
}

// Len returns the number of cards in the set.
func (s *Set) Len() int {
	return len(s.cards)
}

// IsEmpty reports whether the set has no cards yet.
func (s *Set) IsEmpty() bool {
	return len(s.cards) == 0
}
