package nav

import (
	"errors"
	"fmt"
	"log/slog"

	"codeberg.org/snonux/flashcards/internal/deck"
)

var (
	ErrNoForm     = errors.New("form is not open")
	ErrUnknownSet = errors.New("unknown set")
)

// Machine owns the navigation state and the store. It is driven from UI
// event handlers on a single goroutine.
type Machine struct {
	store     *deck.Store
	state     State
	listeners []func(State)
	logger    *slog.Logger
}

// New returns a machine on the set list screen.
func New(store *deck.Store, logger *slog.Logger) *Machine {
	if store == nil {
		store = deck.NewStore()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Machine{
		store:  store,
		state:  State{Screen: ScreenSetList},
		logger: logger,
	}
}

// Store returns the store the machine mutates.
func (m *Machine) Store() *deck.Store {
	return m.store
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	return m.state
}

// Screen is shorthand for State().Screen.
func (m *Machine) Screen() Screen {
	return m.state.Screen
}

// Subscribe registers fn to be called with the new state after every
// transition that changed it.
func (m *Machine) Subscribe(fn func(State)) {
	m.listeners = append(m.listeners, fn)
}

func (m *Machine) set(next State, action string) {
	if next == m.state {
		return
	}
	prev := m.state
	m.state = next
	m.logger.Debug("transition",
		"action", action,
		"from", prev.Screen.String(),
		"to", next.Screen.String(),
		"set", next.SetID,
		"index", next.CardIndex,
		"flipped", next.Flipped)
	for _, fn := range m.listeners {
		fn(next)
	}
}

// SelectSet opens the detail surface for the set with the given ID on its
// first card, unflipped.
func (m *Machine) SelectSet(id string) error {
	if m.state.Screen != ScreenSetList {
		return nil
	}
	if _, ok := m.store.Get(id); !ok {
		return fmt.Errorf("select set %q: %w", id, ErrUnknownSet)
	}
	m.set(State{Screen: ScreenSetDetail, SetID: id}, "select")
	return nil
}

// OpenAddSet presents the add-set form over the set list.
func (m *Machine) OpenAddSet() bool {
	if m.state.Screen != ScreenSetList {
		return false
	}
	m.set(State{Screen: ScreenAddSet}, "open-add-set")
	return true
}

// SetNameInput updates the add-set form's name field.
func (m *Machine) SetNameInput(name string) {
	if m.state.Screen != ScreenAddSet {
		return
	}
	next := m.state
	next.NameInput = name
	m.set(next, "input-name")
}

// CanSubmitSet reports whether the add-set form may be submitted.
func (m *Machine) CanSubmitSet() bool {
	return m.state.Screen == ScreenAddSet && m.state.NameInput != ""
}

// SubmitSet creates a set from the form and returns to the set list. With an
// empty name nothing is created and the form stays open.
func (m *Machine) SubmitSet() (*deck.Set, error) {
	if m.state.Screen != ScreenAddSet {
		return nil, fmt.Errorf("submit set: %w", ErrNoForm)
	}
	set, err := m.store.Create(m.state.NameInput)
	if err != nil {
		return nil, err
	}
	m.logger.Info("set created", "id", set.ID(), "name", set.Name(), "sets", m.store.Len())
	m.set(State{Screen: ScreenSetList}, "submit-set")
	return set, nil
}

// OpenAddCard presents the add-card form over the set detail surface.
func (m *Machine) OpenAddCard() bool {
	if m.state.Screen != ScreenSetDetail {
		return false
	}
	next := m.state
	next.Screen = ScreenAddCard
	m.set(next, "open-add-card")
	return true
}

// SetTermInput updates the add-card form's term field.
func (m *Machine) SetTermInput(term string) {
	if m.state.Screen != ScreenAddCard {
		return
	}
	next := m.state
	next.TermInput = term
	m.set(next, "input-term")
}

// SetDefinitionInput updates the add-card form's definition field.
func (m *Machine) SetDefinitionInput(definition string) {
	if m.state.Screen != ScreenAddCard {
		return
	}
	next := m.state
	next.DefinitionInput = definition
	m.set(next, "input-definition")
}

// CanSubmitCard reports whether the add-card form may be submitted.
func (m *Machine) CanSubmitCard() bool {
	return m.state.Screen == ScreenAddCard &&
		m.state.TermInput != "" && m.state.DefinitionInput != ""
}

// SubmitCard appends a card built from the form to the current set and
// returns to the detail surface. Card index and flip state are unchanged.
func (m *Machine) SubmitCard() (deck.Flashcard, error) {
	if m.state.Screen != ScreenAddCard {
		return deck.Flashcard{}, fmt.Errorf("submit card: %w", ErrNoForm)
	}
	set, ok := m.store.Get(m.state.SetID)
	if !ok {
		return deck.Flashcard{}, fmt.Errorf("submit card to %q: %w", m.state.SetID, ErrUnknownSet)
	}
	card, err := deck.NewFlashcard(m.state.TermInput, m.state.DefinitionInput)
	if err != nil {
		return deck.Flashcard{}, err
	}
	set.AppendCard(card)
	m.logger.Info("card added", "set", set.Name(), "id", card.ID, "cards", set.Len())

	m.set(m.detail(), "submit-card")
	return card, nil
}

// Cancel dismisses an open form without touching the store.
func (m *Machine) Cancel() bool {
	switch m.state.Screen {
	case ScreenAddSet:
		m.set(State{Screen: ScreenSetList}, "cancel")
	case ScreenAddCard:
		m.set(m.detail(), "cancel")
	default:
		return false
	}
	return true
}

// detail is the current state with the form closed and its inputs dropped.
func (m *Machine) detail() State {
	return State{
		Screen:    ScreenSetDetail,
		SetID:     m.state.SetID,
		CardIndex: m.state.CardIndex,
		Flipped:   m.state.Flipped,
	}
}

// Back leaves the detail surface for the set list.
func (m *Machine) Back() bool {
	if m.state.Screen != ScreenSetDetail {
		return false
	}
	m.set(State{Screen: ScreenSetList}, "back")
	return true
}

// Flip toggles the shown face of the current card. It does nothing when the
// set has no cards.
func (m *Machine) Flip() bool {
	if m.state.Screen != ScreenSetDetail {
		return false
	}
	if _, ok := m.CurrentCard(); !ok {
		return false
	}
	next := m.state
	next.Flipped = !next.Flipped
	m.set(next, "flip")
	return true
}

// CanNext reports whether there is a card after the current one.
func (m *Machine) CanNext() bool {
	set, ok := m.CurrentSet()
	return ok && m.state.Screen == ScreenSetDetail && m.state.CardIndex < set.Len()-1
}

// CanPrev reports whether there is a card before the current one.
func (m *Machine) CanPrev() bool {
	_, ok := m.CurrentSet()
	return ok && m.state.Screen == ScreenSetDetail && m.state.CardIndex > 0
}

// Next moves to the following card, showing its term. At the last card it
// does nothing.
func (m *Machine) Next() bool {
	if !m.CanNext() {
		return false
	}
	next := m.state
	next.CardIndex++
	next.Flipped = false
	m.set(next, "next")
	return true
}

// Prev moves to the preceding card, showing its term. At the first card it
// does nothing.
func (m *Machine) Prev() bool {
	if !m.CanPrev() {
		return false
	}
	next := m.state
	next.CardIndex--
	next.Flipped = false
	m.set(next, "prev")
	return true
}

// CurrentSet returns the set shown by the detail surface or its form.
func (m *Machine) CurrentSet() (*deck.Set, bool) {
	if m.state.SetID == "" {
		return nil, false
	}
	return m.store.Get(m.state.SetID)
}

// CurrentCard returns the card under the cursor.
func (m *Machine) CurrentCard() (deck.Flashcard, bool) {
	set, ok := m.CurrentSet()
	if !ok {
		return deck.Flashcard{}, false
	}
	return set.Card(m.state.CardIndex)
}

// Face returns which side of the current card is up and its text.
func (m *Machine) Face() (Face, string, bool) {
	card, ok := m.CurrentCard()
	if !ok {
		return FaceTerm, "", false
	}
	if m.state.Flipped {
		return FaceDefinition, card.Definition, true
	}
	return FaceTerm, card.Term, true
}

// Position returns the 1-based position of the current card and the number
// of cards in the set. Both are zero when no card is shown.
func (m *Machine) Position() (int, int) {
	set, ok := m.CurrentSet()
	if !ok || set.IsEmpty() {
		return 0, 0
	}
	return m.state.CardIndex + 1, set.Len()
}
