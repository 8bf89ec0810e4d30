package session

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/lockbox-server/internal/lockbox"
)

func newTestStore() *Store {
	return NewStore(rand.New(rand.NewPCG(1, 2)))
}

func TestStoreReadEmpty(t *testing.T) {
	st := newTestStore()
	_, err := st.Get("no such session")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreCreateAndGet(t *testing.T) {
	st := newTestStore()
	box, err := lockbox.FromState([][]bool{{true, false}, {false, false}})
	require.NoError(t, err)

	created := st.Create("owner-1", box)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)

	got, err := st.Get(created.ID)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestStoreDelete(t *testing.T) {
	st := newTestStore()
	box, err := lockbox.FromState([][]bool{{true}})
	require.NoError(t, err)

	created := st.Create("owner-1", box)
	st.Delete(created.ID)

	_, err = st.Get(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDistinctIDs(t *testing.T) {
	st := newTestStore()
	seen := make(map[string]bool)
	for range 100 {
		box, err := lockbox.FromState([][]bool{{true}})
		require.NoError(t, err)
		s := st.Create("owner-1", box)
		assert.False(t, seen[s.ID], "duplicate session id %s", s.ID)
		seen[s.ID] = true
	}
}

func TestSessionDo(t *testing.T) {
	st := newTestStore()
	box, err := lockbox.FromState([][]bool{{true}})
	require.NoError(t, err)
	s := st.Create("owner-1", box)

	err = s.Do(func(box *lockbox.Box) error {
		locked, err := lockbox.Open(box)
		require.NoError(t, err)
		assert.False(t, locked)
		return nil
	})
	assert.NoError(t, err)
}
