package deck

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateSet = errors.New("set already in store")
	ErrNilSet       = errors.New("nil set")
)

// Store is the ordered collection of every set known to the application.
// It is owned by a single controller and is not safe for concurrent use.
// The zero value is an empty store ready to use.
type Store struct {
	sets []*Set
	byID map[string]*Set
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		sets: make([]*Set, 0),
		byID: make(map[string]*Set),
	}
}

// Add appends an existing set. Adding the same set twice is an error.
func (st *Store) Add(set *Set) error {
	if set == nil {
		return ErrNilSet
	}
	if _, ok := st.byID[set.id]; ok {
		return fmt.Errorf("add set %q: %w", set.name, ErrDuplicateSet)
	}
	if st.byID == nil {
		st.byID = make(map[string]*Set)
	}

	st.sets = append(st.sets, set)
	st.byID[set.id] = set
	return nil
}

// Create builds a new empty set named name and appends it. On error the store
// is left unchanged.
func (st *Store) Create(name string) (*Set, error) {
	set, err := NewSet(name)
	if err != nil {
		return nil, err
	}
	if err := st.Add(set); err != nil {
		return nil, err
	}
	return set, nil
}

// Get looks a set up by ID.
func (st *Store) Get(id string) (*Set, bool) {
	set, ok := st.byID[id]
	return set, ok
}

// Sets returns the sets in insertion order. The slice is a copy, the sets are
// shared.
func (st *Store) Sets() []*Set {
	out := make([]*Set, len(st.sets))
	copy(out, st.sets)
	return out
}

// At returns the set at display position i.
func (st *Store) At(i int) (*Set, bool) {
	if i < 0 || i >= len(st.sets) {
		return nil, false
	}
	return st.sets[i], true
}

// Len returns the number of sets.
func (st *Store) Len() int {
	return len(st.sets)
}
