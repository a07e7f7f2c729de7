package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateKeepsInsertionOrder(t *testing.T) {
	st := NewStore()

	names := []string{"Biology", "Chemistry", "Biology"}
	for _, name := range names {
		_, err := st.Create(name)
		require.NoError(t, err)
	}

	require.Equal(t, len(names), st.Len())
	for i, set := range st.Sets() {
		assert.Equal(t, names[i], set.Name())
	}
}

func TestStoreCreateEmptyNameLeavesStoreUnchanged(t *testing.T) {
	st := NewStore()
	_, err := st.Create("History")
	require.NoError(t, err)

	set, err := st.Create("")
	assert.ErrorIs(t, err, ErrEmptyName)
	assert.Nil(t, set)
	assert.Equal(t, 1, st.Len())
	assert.Equal(t, "History", st.Sets()[0].Name())
}

func TestStoreAddDuplicate(t *testing.T) {
	st := NewStore()
	set, err := NewSet("Math")
	require.NoError(t, err)

	require.NoError(t, st.Add(set))
	assert.ErrorIs(t, st.Add(set), ErrDuplicateSet)
	assert.ErrorIs(t, st.Add(nil), ErrNilSet)
	assert.Equal(t, 1, st.Len())
}

func TestStoreGetSharesSet(t *testing.T) {
	st := NewStore()
	set, err := st.Create("Physics")
	require.NoError(t, err)

	got, ok := st.Get(set.ID())
	require.True(t, ok)
	got.AppendCard(mustCard(t, "F", "ma"))

	assert.Equal(t, 1, set.Len())

	_, ok = st.Get("missing")
	assert.False(t, ok)
}

func TestStoreAt(t *testing.T) {
	st := NewStore()
	first, err := st.Create("first")
	require.NoError(t, err)

	got, ok := st.At(0)
	require.True(t, ok)
	assert.Same(t, first, got)

	_, ok = st.At(1)
	assert.False(t, ok)
	_, ok = st.At(-1)
	assert.False(t, ok)
}

func TestZeroValueStore(t *testing.T) {
	var st Store

	assert.Equal(t, 0, st.Len())
	_, ok := st.Get("missing")
	assert.False(t, ok)

	set, err := st.Create("Geology")
	require.NoError(t, err)

	got, ok := st.Get(set.ID())
	require.True(t, ok)
	assert.Same(t, set, got)
	assert.Equal(t, 1, st.Len())
}
